package glue

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// UnixTime is a timestamp that travels on the wire as fractional Unix epoch
// seconds, the way the AWS JSON protocols encode it.
type UnixTime struct {
	time.Time
}

// UnmarshalJSON accepts a numeric epoch timestamp or an RFC3339 string.
func (t *UnixTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}

	var timestamp float64
	if err := json.Unmarshal(data, &timestamp); err == nil {
		// AWS timestamps carry millisecond precision
		millis := int64(math.Round(timestamp * 1000))
		t.Time = time.UnixMilli(millis)
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("cannot unmarshal %s into UnixTime", data)
	}

	parsed, err := time.Parse(time.RFC3339Nano, str)
	if err != nil {
		return fmt.Errorf("cannot parse %s as RFC3339: %w", str, err)
	}
	t.Time = parsed
	return nil
}

// MarshalJSON writes the time as epoch seconds rounded to milliseconds.
func (t UnixTime) MarshalJSON() ([]byte, error) {
	if t.Time.IsZero() {
		return []byte("null"), nil
	}
	timestamp := float64(t.Time.UnixMilli()) / 1000
	return json.Marshal(timestamp)
}

// String renders the time as RFC3339 in UTC.
func (t UnixTime) String() string {
	return t.Time.UTC().Format(time.RFC3339Nano)
}

// NewUnixTime wraps t.
func NewUnixTime(t time.Time) *UnixTime {
	return &UnixTime{Time: t}
}

// ToTime converts a UnixTime pointer to a time.Time pointer.
func (t *UnixTime) ToTime() *time.Time {
	if t == nil {
		return nil
	}
	return &t.Time
}

// FromTime converts a time.Time pointer to a UnixTime pointer.
func FromTime(t *time.Time) *UnixTime {
	if t == nil {
		return nil
	}
	return &UnixTime{Time: *t}
}
