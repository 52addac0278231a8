package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// dateLayout is the wire format for all date fields ("YYYY-MM-DD").
const dateLayout = "2006-01-02"

// Date is a day-precision timestamp that marshals to and from the
// "YYYY-MM-DD" JSON format and maps to the SQL DATE type.
type Date struct {
	time.Time
}

// NewDate builds a Date from a year, month and day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current date in UTC, truncated to day precision.
func Today() Date {
	now := time.Now().UTC()
	return NewDate(now.Year(), now.Month(), now.Day())
}

// MarshalJSON renders the date as a quoted "YYYY-MM-DD" string.
// The zero value renders as JSON null.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON parses a quoted "YYYY-MM-DD" string. JSON null and the
// empty string leave the date at its zero value so that validation can
// report a missing field instead of a format error.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "null" || value == "" {
		*d = Date{}
		return nil
	}

	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", value, err)
	}

	*d = Date{parsed}
	return nil
}

// Scan implements sql.Scanner so a DATE column can be read directly
// into a Date field.
func (d *Date) Scan(src any) error {
	switch value := src.(type) {
	case time.Time:
		*d = Date{value}
		return nil
	case string:
		parsed, err := time.Parse(dateLayout, value)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", value, err)
		}
		*d = Date{parsed}
		return nil
	case nil:
		*d = Date{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

// Value implements driver.Valuer so a Date can be passed as a query
// argument for a DATE column.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time, nil
}
