package llm

import "time"

var testTime = time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)

func float64Ptr(v float64) *float64 { return &v }
