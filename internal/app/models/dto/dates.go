package dto

import (
	"fmt"
	"strings"
	"time"
)

// Date is a calendar date carried as "2006-01-02" in JSON. RFC3339 timestamps
// are accepted on input for client compatibility.
type Date struct {
	time.Time
}

// UnmarshalJSON parses a date from its JSON representation
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}

	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}

	return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
}

// MarshalJSON renders the date as "2006-01-02"
func (d Date) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Time.Format("2006-01-02") + `"`), nil
}

// TimePtr returns the wrapped time as a pointer, nil for a nil or zero Date
func (d *Date) TimePtr() *time.Time {
	if d == nil || d.Time.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}
