// Package format renders amounts and timestamps for display (en-US, USD).
package format

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// DateLayout renders timestamps like "Dec 25, 2023, 03:30 PM".
const DateLayout = "Jan 2, 2006, 03:04 PM"

// Currency formats an amount as US dollars with thousands separators and
// two decimal places, e.g. 1234.56 -> "$1,234.56". Negative amounts get a
// leading minus sign: "-$5.00".
func Currency(amount float64) string {
	s := humanize.FormatFloat("#,###.##", amount)
	if strings.HasPrefix(s, "-") {
		return "-$" + s[1:]
	}
	return "$" + s
}

// Date formats a timestamp in its own location.
func Date(t time.Time) string {
	return t.Format(DateLayout)
}
