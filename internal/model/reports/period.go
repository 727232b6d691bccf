package reports

import (
	"time"

	"github.com/jinzhu/now"
)

type Period string

const (
	Daily   Period = "daily"
	Weekly  Period = "weekly"
	Monthly Period = "monthly"
	// Other covers any unrecognised period: a year of totals with no time series.
	Other Period = "other"
)

const (
	dailyLookbackDays  = 30
	weeklyLookbackWeek = 12
	yearLookbackDays   = 365

	dayLabelLayout   = "02/01/06"
	monthLabelLayout = "Jan 06"
)

var mondayWeeks = &now.Config{WeekStartDay: time.Monday, TimeLocation: time.UTC}

// ParsePeriod maps a query value to a period. Empty means monthly.
func ParsePeriod(s string) Period {
	switch p := Period(s); p {
	case Daily, Weekly, Monthly:
		return p
	case "":
		return Monthly
	}
	return Other
}

// CachedPeriods lists every period a dashboard can be cached under.
func CachedPeriods() []string {
	return []string{string(Daily), string(Weekly), string(Monthly), string(Other)}
}

func weekStart(d time.Time) time.Time {
	return mondayWeeks.With(d).BeginningOfWeek()
}

func monthStart(d time.Time) time.Time {
	return mondayWeeks.With(d).BeginningOfMonth()
}

// windowStart is the first day whose transactions are fetched.
func (p Period) windowStart(today time.Time) time.Time {
	switch p {
	case Daily:
		return today.AddDate(0, 0, -dailyLookbackDays)
	case Weekly:
		return weekStart(today.AddDate(0, 0, -7*weeklyLookbackWeek))
	case Monthly:
		return monthStart(monthStart(today).AddDate(0, 0, -yearLookbackDays))
	}
	return today.AddDate(0, 0, -yearLookbackDays)
}

func (p Period) bucketed() bool {
	return p != Other
}

// bucketKey is the start of the bucket that holds d.
func (p Period) bucketKey(d time.Time) time.Time {
	switch p {
	case Weekly:
		return weekStart(d)
	case Monthly:
		return monthStart(d)
	}
	return d
}

// next steps from one bucket start to the following one.
func (p Period) next(start time.Time) time.Time {
	switch p {
	case Weekly:
		return start.AddDate(0, 0, 7)
	case Monthly:
		return start.AddDate(0, 1, 0)
	}
	return start.AddDate(0, 0, 1)
}

func (p Period) label(start time.Time) string {
	switch p {
	case Weekly:
		return start.Format(dayLabelLayout) + " - " + start.AddDate(0, 0, 6).Format(dayLabelLayout)
	case Monthly:
		return start.Format(monthLabelLayout)
	}
	return start.Format(dayLabelLayout)
}
