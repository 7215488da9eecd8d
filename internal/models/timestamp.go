package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// timestampLayouts are tried in order when decoding. Doable endpoints write
// Python isoformat() values, which carry no zone; the allocation view is
// rendered by Flask as HTTP dates ("Tue, 02 Jan 2024 15:04:05 GMT").
var timestampLayouts = []struct {
	layout string
	zoned  bool
}{
	{time.RFC3339Nano, true},
	{"2006-01-02T15:04:05.999999999", false},
	{"2006-01-02T15:04:05", false},
	{"2006-01-02 15:04:05", false},
	{http.TimeFormat, true},
	{time.RFC1123, true},
	{time.RFC1123Z, true},
}

// Timestamp is a time.Time that decodes the backend's ISO-8601 and HTTP-date
// variants.
// Zone-less values are read as local time.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// ParseTimestamp parses s using the accepted layouts.
func ParseTimestamp(s string) (Timestamp, error) {
	for _, l := range timestampLayouts {
		var t time.Time
		var err error
		if l.zoned {
			t, err = time.Parse(l.layout, s)
		} else {
			t, err = time.ParseInLocation(l.layout, s, time.Local)
		}
		if err == nil {
			return Timestamp{Time: t}, nil
		}
	}
	return Timestamp{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// UnmarshalJSON implements json.Unmarshaler. null and "" decode to the zero time.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*ts = Timestamp{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	if s == "" {
		*ts = Timestamp{}
		return nil
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}

// MarshalJSON implements json.Marshaler.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(ts.Format(time.RFC3339Nano))
}

// Display formats the timestamp the way cards show it, e.g. "02 Jan 2024 15:04".
func (ts Timestamp) Display() string {
	if ts.IsZero() {
		return "-"
	}
	return ts.Format("02 Jan 2006 15:04")
}
