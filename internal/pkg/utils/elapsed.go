package utils

import "time"

// ElapsedSeconds returns the number of whole seconds between now and the
// given unix timestamp, truncated toward zero. The timestamp may be any
// numeric type a YAML or JSON decoder produces. It returns nil when the
// value is nil or not convertible to a point in time.
func ElapsedSeconds(timestamp any) *int {
	var seconds float64

	switch value := timestamp.(type) {
	case float64:
		seconds = value
	case float32:
		seconds = float64(value)
	case int:
		seconds = float64(value)
	case int32:
		seconds = float64(value)
	case int64:
		seconds = float64(value)
	case uint64:
		seconds = float64(value)
	default:
		return nil
	}

	origin := time.UnixMilli(int64(seconds * 1000))
	elapsed := int(time.Since(origin).Seconds())

	return &elapsed
}

// Percentage returns the share of part in whole as a percentage.
// The caller is responsible for passing a non-zero whole.
func Percentage(part, whole float64) float64 {
	return 100.0 * part / whole
}
