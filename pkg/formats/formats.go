// Package formats carries the default date/time format lists used when a
// time-family field declares no input formats of its own. The lists are plain
// Go layout strings. Callers pass a Config to the serializer explicitly; there
// is no ambient process-wide state.
package formats

import (
	"fmt"
	"time"
)

// Config holds the fallback format lists, one per temporal kind. The first
// entry of each list is the one used to render initial values.
type Config struct {
	DateInputFormats     []string `json:"dateInputFormats" yaml:"dateInputFormats"`
	TimeInputFormats     []string `json:"timeInputFormats" yaml:"timeInputFormats"`
	DateTimeInputFormats []string `json:"datetimeInputFormats" yaml:"datetimeInputFormats"`
}

// Default returns the stock format lists.
func Default() Config {
	return Config{
		DateInputFormats: []string{
			"2006-01-02",
			"01/02/2006",
			"01/02/06",
		},
		TimeInputFormats: []string{
			"15:04:05",
			"15:04",
		},
		DateTimeInputFormats: []string{
			"2006-01-02 15:04:05",
			"2006-01-02 15:04",
			"01/02/2006 15:04:05",
			"01/02/2006 15:04",
		},
	}
}

// Date is a calendar date without a time component.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf truncates t to its calendar date.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Year: year, Month: month, Day: day}
}

// Time returns the date at midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Format renders the date using a Go layout string.
func (d Date) Format(layout string) string {
	return d.Time().Format(layout)
}

// Clock is a wall-clock time without a date component.
type Clock struct {
	Hour   int
	Minute int
	Second int
}

// ClockOf truncates t to its wall-clock time.
func ClockOf(t time.Time) Clock {
	return Clock{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}
}

// Time returns the clock reading on the zero date.
func (c Clock) Time() time.Time {
	return time.Date(1, time.January, 1, c.Hour, c.Minute, c.Second, 0, time.UTC)
}

// Format renders the clock reading using a Go layout string.
func (c Clock) Format(layout string) string {
	return c.Time().Format(layout)
}

// Render formats a temporal value as text. When explicit is non-empty it is
// used as-is; otherwise the config list matching the value's kind substitutes
// for it (Date → DateInputFormats, Clock → TimeInputFormats, time.Time →
// DateTimeInputFormats). The first entry of the effective list renders the
// value. ok is false when the value is not a temporal kind, in which case the
// explicit list is returned unchanged.
func (c Config) Render(value any, explicit []string) (formatted string, effective []string, ok bool) {
	effective = explicit

	switch v := value.(type) {
	case Date:
		if len(effective) == 0 {
			effective = c.DateInputFormats
		}
		if len(effective) == 0 {
			return "", effective, false
		}
		return v.Format(effective[0]), effective, true
	case Clock:
		if len(effective) == 0 {
			effective = c.TimeInputFormats
		}
		if len(effective) == 0 {
			return "", effective, false
		}
		return v.Format(effective[0]), effective, true
	case time.Time:
		if len(effective) == 0 {
			effective = c.DateTimeInputFormats
		}
		if len(effective) == 0 {
			return "", effective, false
		}
		return v.Format(effective[0]), effective, true
	default:
		return "", explicit, false
	}
}

func (c Config) validate() error {
	if len(c.DateInputFormats) == 0 {
		return fmt.Errorf("formats: date input formats are required")
	}
	if len(c.TimeInputFormats) == 0 {
		return fmt.Errorf("formats: time input formats are required")
	}
	if len(c.DateTimeInputFormats) == 0 {
		return fmt.Errorf("formats: datetime input formats are required")
	}
	return nil
}
