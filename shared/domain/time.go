package domain

import (
	"bytes"
	"database/sql/driver"
	"fmt"
	"time"
)

// DateTimeLayout is the wire format of all timestamps: a zone-less local date-time.
const DateTimeLayout = "2006-01-02T15:04:05"

// accepted on input, in order
var dateTimeInputLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	time.RFC3339Nano,
}

// DateTime is a UTC timestamp serialised without zone information.
type DateTime struct {
	time.Time
}

func NewDateTime(t time.Time) DateTime {
	return DateTime{t.UTC().Truncate(time.Microsecond)}
}

func ParseDateTime(s string) (DateTime, error) {
	for _, layout := range dateTimeInputLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return NewDateTime(t), nil
		}
	}
	return DateTime{}, fmt.Errorf("invalid date-time %q, expected %s", s, DateTimeLayout)
}

func (d DateTime) String() string {
	return d.UTC().Format(DateTimeLayout)
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*d = DateTime{}
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("date-time must be a string, got %s", data)
	}
	parsed, err := ParseDateTime(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scan implements sql.Scanner for TIMESTAMP columns.
func (d *DateTime) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		// TIMESTAMP WITHOUT TIME ZONE comes back with the wall clock in UTC
		*d = NewDateTime(v)
		return nil
	case nil:
		*d = DateTime{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into DateTime", src)
	}
}

// Value implements driver.Valuer.
func (d DateTime) Value() (driver.Value, error) {
	return d.UTC(), nil
}
