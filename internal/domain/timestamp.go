package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// EpochMillis is a point in time transported as milliseconds since the Unix
// epoch. RFC 3339 strings are accepted on decode as well.
type EpochMillis int64

func FromTime(t time.Time) EpochMillis {
	return EpochMillis(t.UnixMilli())
}

func (m EpochMillis) Time() time.Time {
	return time.UnixMilli(int64(m))
}

func (m EpochMillis) IsZero() bool {
	return m == 0
}

func (m *EpochMillis) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*m = 0
		return nil
	}

	if data[0] != '"' {
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("decode epoch millis: %w", err)
		}
		f, err := strconv.ParseFloat(n.String(), 64)
		if err != nil {
			return fmt.Errorf("decode epoch millis: %w", err)
		}
		*m = EpochMillis(int64(f))
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode epoch millis: %w", err)
	}
	if raw == "" {
		*m = 0
		return nil
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		*m = EpochMillis(n)
		return nil
	}

	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return fmt.Errorf("decode epoch millis %q: %w", raw, err)
	}
	*m = FromTime(parsed)

	return nil
}

// Millis is a span transported as a number of milliseconds.
type Millis int64

func (m Millis) Duration() time.Duration {
	return time.Duration(m) * time.Millisecond
}

func (m *Millis) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*m = 0
		return nil
	}

	data = bytes.Trim(data, `"`)
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("decode millis: %w", err)
	}
	*m = Millis(int64(f))

	return nil
}
