package calendar

import (
	"time"

	"github.com/pkg/errors"
)

const DateLayout = "2006-01-02"

// Day truncates t to its calendar date in t's own location and returns it as UTC midnight.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "parse date %q", s)
	}
	return d, nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Clock reports the current calendar date in a fixed zone.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

func NewClock(loc *time.Location) *Clock {
	return &Clock{loc: loc, now: time.Now}
}

// Fixed always reports the same day.
func Fixed(day time.Time) *Clock {
	return &Clock{loc: time.UTC, now: func() time.Time { return day }}
}

func (c *Clock) Today() time.Time {
	return Day(c.now().In(c.loc))
}

func (c *Clock) Now() time.Time {
	return c.now()
}
