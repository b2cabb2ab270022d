package models

import (
	"fmt"
	"strings"
	"time"

	"podash/pkg/utils"
)

// Layouts accepted when decoding timestamps sent by the backend.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Timestamp is a time.Time that tolerates the date formats the backend emits
type Timestamp struct {
	time.Time
}

// NewTimestamp returns a pointer to a Timestamp wrapping t
func NewTimestamp(t time.Time) *Timestamp {
	return &Timestamp{Time: t}
}

// ParseTimestamp parses s with the first matching layout
func ParseTimestamp(s string) (Timestamp, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Timestamp{}, nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Timestamp{Time: t}, nil
		}
	}
	return Timestamp{}, fmt.Errorf("unrecognised timestamp %q", s)
}

// UnmarshalJSON implements the json.Unmarshaler interface for Timestamp.
// Unrecognised values decode to the zero time so one bad record does not
// fail the whole response.
func (ts *Timestamp) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" {
		ts.Time = time.Time{}
		return nil
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		utils.Logger.Warnw("ignoring timestamp", "value", s, "error", err)
		ts.Time = time.Time{}
		return nil
	}
	ts.Time = parsed.Time
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Timestamp.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.Time.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + ts.Time.UTC().Format(time.RFC3339Nano) + `"`), nil
}

// FormatDate renders an ISO date string as dd/mm/yyyy, or N/A when it
// cannot be parsed
func FormatDate(s string) string {
	ts, err := ParseTimestamp(s)
	if err != nil || ts.IsZero() {
		return "N/A"
	}
	return ts.Format("02/01/2006")
}

// DateOnly trims an ISO timestamp to its YYYY-MM-DD part for date inputs
func DateOnly(s string) string {
	if i := strings.Index(s, "T"); i >= 0 {
		return s[:i]
	}
	return s
}
