package utils

import (
	"encoding/json"
	"fmt"
	"time"
)

// Duration is a new type based on time.Duration that marshals to a
// human-readable string (e.g. "1h30m0s") in JSON payloads such as the
// agent status report.
type Duration time.Duration

// DurationOfSeconds builds a Duration from a whole-second count, the
// unit every probe in this library reports in.
func DurationOfSeconds(seconds int) Duration {
	return Duration(time.Duration(seconds) * time.Second)
}

// Seconds returns the duration truncated to whole seconds.
func (d Duration) Seconds() int {
	return int(time.Duration(d).Seconds())
}

// MarshalJSON implements the json.Marshaler interface.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// UnmarshalJSON implements the json.Unmarshaler interface. It accepts
// both the numeric (nanoseconds) and the string formats.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case nil:
		*d = 0
		return nil
	case float64:
		*d = Duration(value)
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(parsed)
		return nil
	default:
		return fmt.Errorf("invalid duration: unsupported type %T", value)
	}
}
