package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

const (
	// MinutesPerDay is the number of minutes in a calendar day
	MinutesPerDay = 24 * 60

	// MaxMinuteOfDay is the last valid minute of a day (11:59 PM)
	MaxMinuteOfDay = MinutesPerDay - 1
)

// MinuteOfDay is a time of day normalized to minutes since midnight.
// Its display form is a 12-hour clock with an uppercase meridiem ("2:30 PM").
type MinuteOfDay int

// NewMinuteOfDay builds a MinuteOfDay from a 24-hour clock hour and minute
func NewMinuteOfDay(hour, minute int) (MinuteOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %02d:%02d", ErrOutOfRange, hour, minute)
	}
	return MinuteOfDay(hour*60 + minute), nil
}

// ParseDisplayTime converts a human time into a MinuteOfDay.
//
// Accepted forms: "2:30 PM", "2:30pm", "2 PM", "12:00 AM", "14:05", "9".
// The meridiem is case-insensitive and may be glued to the digits. Without a meridiem the
// hour is read as a 24-hour clock. With a meridiem the hour must be 1-12, 12 AM is midnight
// and 12 PM is noon. Missing minutes default to zero.
func ParseDisplayTime(text string) (MinuteOfDay, error) {
	s := strings.ToUpper(strings.TrimSpace(text))
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", ErrInvalidFormat)
	}

	meridiem := ""
	switch {
	case strings.HasSuffix(s, "AM"):
		meridiem = "AM"
	case strings.HasSuffix(s, "PM"):
		meridiem = "PM"
	}
	if meridiem != "" {
		s = strings.TrimSpace(strings.TrimSuffix(s, meridiem))
	}

	hourPart, minutePart, hasMinutes := strings.Cut(s, ":")
	hour, err := parseDigits(hourPart)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: hour: %v", ErrInvalidFormat, text, err)
	}

	minute := 0
	if hasMinutes {
		minute, err = parseDigits(minutePart)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: minute: %v", ErrInvalidFormat, text, err)
		}
	}
	if minute > 59 {
		return 0, fmt.Errorf("%w: %q: minute %d", ErrInvalidFormat, text, minute)
	}

	switch meridiem {
	case "":
		if hour > 23 {
			return 0, fmt.Errorf("%w: %q: hour %d", ErrInvalidFormat, text, hour)
		}
	default:
		if hour < 1 || hour > 12 {
			return 0, fmt.Errorf("%w: %q: hour %d with %s", ErrInvalidFormat, text, hour, meridiem)
		}
		hour %= 12
		if meridiem == "PM" {
			hour += 12
		}
	}

	return MinuteOfDay(hour*60 + minute), nil
}

// parseDigits accepts one or two ASCII digits
func parseDigits(s string) (int, error) {
	if len(s) == 0 || len(s) > 2 {
		return 0, fmt.Errorf("expected 1-2 digits, got %q", s)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("non-digit %q", r)
		}
	}
	return strconv.Atoi(s)
}

// Normalize wraps the value into [0, 1439]
func (m MinuteOfDay) Normalize() MinuteOfDay {
	n := int(m) % MinutesPerDay
	if n < 0 {
		n += MinutesPerDay
	}
	return MinuteOfDay(n)
}

// Hour returns the 24-hour clock hour
func (m MinuteOfDay) Hour() int {
	return int(m.Normalize()) / 60
}

// Minute returns the minute within the hour
func (m MinuteOfDay) Minute() int {
	return int(m.Normalize()) % 60
}

// String renders the 12-hour display form, e.g. 0 -> "12:00 AM", 720 -> "12:00 PM"
func (m MinuteOfDay) String() string {
	h := m.Hour()
	period := "AM"
	if h >= 12 {
		period = "PM"
	}
	displayHour := h % 12
	if displayHour == 0 {
		displayHour = 12
	}
	return fmt.Sprintf("%d:%02d %s", displayHour, m.Minute(), period)
}

// Clock renders the 24-hour "15:04" form
func (m MinuteOfDay) Clock() string {
	return fmt.Sprintf("%02d:%02d", m.Hour(), m.Minute())
}

// Validate checks that the value is inside a single day
func (m MinuteOfDay) Validate() error {
	if m < 0 || m > MaxMinuteOfDay {
		return fmt.Errorf("%w: %d", ErrOutOfRange, int(m))
	}
	return nil
}

// Add returns the value shifted by n minutes, without wrapping
func (m MinuteOfDay) Add(n int) MinuteOfDay {
	return m + MinuteOfDay(n)
}

// MarshalJSON writes the display form
func (m MinuteOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON accepts either a display string or a plain minute number
func (m *MinuteOfDay) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		parsed, err := ParseDisplayTime(text)
		if err != nil {
			return err
		}
		*m = parsed
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidFormat, string(data))
	}
	v := MinuteOfDay(n)
	if err := v.Validate(); err != nil {
		return err
	}
	*m = v
	return nil
}

// Value implements driver.Valuer, minutes are stored as integers
func (m MinuteOfDay) Value() (driver.Value, error) {
	return int64(m), nil
}

// Scan implements sql.Scanner
func (m *MinuteOfDay) Scan(src interface{}) error {
	switch v := src.(type) {
	case int64:
		*m = MinuteOfDay(v)
	case int32:
		*m = MinuteOfDay(v)
	case int:
		*m = MinuteOfDay(v)
	case []byte:
		n, err := strconv.Atoi(string(v))
		if err != nil {
			return fmt.Errorf("%w: scan %q", ErrInvalidFormat, string(v))
		}
		*m = MinuteOfDay(n)
	case nil:
		*m = 0
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidFormat, src)
	}
	return nil
}
