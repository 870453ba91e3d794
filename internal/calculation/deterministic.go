package calculation

import "time"

// nowFunc returns the current time (override in tests for determinism).
var nowFunc = time.Now

// SetNowFunc overrides the time provider used for report timestamps (use only in tests).
func SetNowFunc(f func() time.Time) { nowFunc = f }
