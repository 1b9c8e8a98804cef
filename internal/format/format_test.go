package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		want   string
		amount float64
	}{
		{amount: 1234.56, want: "$1,234.56"},
		{amount: 0, want: "$0.00"},
		{amount: 100, want: "$100.00"},
		{amount: 0.99, want: "$0.99"},
		{amount: 1_000_000, want: "$1,000,000.00"},
		{amount: 999_999.99, want: "$999,999.99"},
		{amount: 45.5, want: "$45.50"},
		{amount: -5, want: "-$5.00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Currency(tt.amount))
		})
	}
}

func TestDate(t *testing.T) {
	tests := []struct {
		in   time.Time
		want string
	}{
		{in: time.Date(2023, 12, 25, 15, 30, 0, 0, time.UTC), want: "Dec 25, 2023, 03:30 PM"},
		{in: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), want: "Jan 1, 2023, 12:00 AM"},
		{in: time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC), want: "Dec 31, 2023, 11:59 PM"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Date(tt.in))
		})
	}
}
