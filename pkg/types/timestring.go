package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// TimeString represents a time of day as "HH:MM" or "HH:MM:SS".
// The zero value is the empty string.
type TimeString string

// NewTimeString creates a TimeString from a time.Time, truncated to minutes.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString parses and validates a time-of-day string.
// Accepts "HH:MM" and "HH:MM:SS".
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// String returns the underlying string representation.
func (t TimeString) String() string {
	return string(t)
}

// IsZero reports whether the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks that the value is a well-formed time of day.
func (t TimeString) Validate() error {
	_, _, _, err := t.parse()
	return err
}

// Label returns the human-readable form truncated to "HH:MM".
func (t TimeString) Label() string {
	h, m, _, err := t.parse()
	if err != nil {
		return string(t)
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}

// Truncate returns the value truncated to minute precision.
func (t TimeString) Truncate() TimeString {
	return TimeString(t.Label())
}

// IsBefore reports whether t is strictly earlier than other.
func (t TimeString) IsBefore(other TimeString) bool {
	return t.seconds() < other.seconds()
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return t.seconds() > other.seconds()
}

// Equal reports whether two values denote the same time of day
// (seconds included, "09:30" equals "09:30:00").
func (t TimeString) Equal(other TimeString) bool {
	return t.seconds() == other.seconds()
}

// AddMinutes returns the time shifted forward by the given number of minutes.
// Returns an error if the result crosses the day boundary.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	h, m, s, err := t.parse()
	if err != nil {
		return "", err
	}

	total := h*60 + m + minutes
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("types.TimeString: %q + %d minutes is outside the day", t, minutes)
	}

	if s != 0 {
		return TimeString(fmt.Sprintf("%02d:%02d:%02d", total/60, total%60, s)), nil
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// Scan implements sql.Scanner. Postgres TIME columns arrive as
// []byte, string or time.Time depending on the driver.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case []byte:
		*t = TimeString(v)
	case string:
		*t = TimeString(v)
	case time.Time:
		*t = TimeString(v.Format("15:04:05"))
	default:
		return fmt.Errorf("types.TimeString: cannot scan %T", src)
	}
	return t.Validate()
}

// Value implements driver.Valuer.
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// seconds returns the value as seconds since midnight; malformed values sort first.
func (t TimeString) seconds() int {
	h, m, s, err := t.parse()
	if err != nil {
		return -1
	}
	return h*3600 + m*60 + s
}

func (t TimeString) parse() (hour, minute, second int, err error) {
	s := string(t)
	switch len(s) {
	case 5: // HH:MM
		_, err = fmt.Sscanf(s, "%02d:%02d", &hour, &minute)
	case 8: // HH:MM:SS
		_, err = fmt.Sscanf(s, "%02d:%02d:%02d", &hour, &minute, &second)
	default:
		return 0, 0, 0, fmt.Errorf("types.TimeString: invalid format %q, want HH:MM or HH:MM:SS", s)
	}
	if err != nil {
		return 0, 0, 0, fmt.Errorf("types.TimeString: invalid value %q: %v", s, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return 0, 0, 0, fmt.Errorf("types.TimeString: value %q out of range", s)
	}
	return hour, minute, second, nil
}
