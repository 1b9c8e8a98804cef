package model

// RiskLevel is an ordered risk tag: low < medium < high.
type RiskLevel string

// Risk level constants.
const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

func (r RiskLevel) rank() int {
	switch r {
	case RiskLow:
		return 1
	case RiskMedium:
		return 2
	case RiskHigh:
		return 3
	}
	return 0
}

// Compare returns -1, 0 or 1 depending on whether r is lower than, equal to
// or higher than other. Unknown levels sort below RiskLow.
func (r RiskLevel) Compare(other RiskLevel) int {
	a, b := r.rank(), other.rank()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (r RiskLevel) String() string {
	return string(r)
}

// Thresholds are the inclusive upper bounds of the low and medium tiers.
// High is kept for completeness; anything above Medium is already high.
type Thresholds struct {
	Low    float64 `yaml:"low"`
	Medium float64 `yaml:"medium"`
	High   float64 `yaml:"high"`
}

// Ordered reports whether Low <= Medium <= High.
func (t Thresholds) Ordered() bool {
	return t.Low <= t.Medium && t.Medium <= t.High
}

// Level resolves amount against the thresholds. Each boundary belongs to the
// lower tier. NaN never compares true and therefore lands in RiskHigh.
func (t Thresholds) Level(amount float64) RiskLevel {
	if amount <= t.Low {
		return RiskLow
	}
	if amount <= t.Medium {
		return RiskMedium
	}
	return RiskHigh
}
