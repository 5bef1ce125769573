package employee_dashboard

import (
	"fmt"
	"time"

	empDashboard "github.com/cmlabs-hris/employee-dashboard-go/internal/domain/employee_dashboard"
)

const dateLayout = "2006-01-02"

// DateRange holds calendar dates as midnight UTC values. They double as the
// UTC instants bounding attendance and leave queries.
type DateRange struct {
	Start      time.Time
	End        time.Time // inclusive
	FilterDate time.Time
}

// Period renders the range as "YYYY-MM-DD to YYYY-MM-DD"
func (d DateRange) Period() string {
	return d.Start.Format(dateLayout) + " to " + d.End.Format(dateLayout)
}

// ResolveDateRange fills in the defaults: start is the first day of today's
// month, end is one month after start minus a day, filter date is today.
func ResolveDateRange(filter empDashboard.TilesFilter, today time.Time) (DateRange, error) {
	today = civilDate(today)

	start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	if filter.StartDate != "" {
		parsed, err := time.Parse(dateLayout, filter.StartDate)
		if err != nil {
			return DateRange{}, fmt.Errorf("invalid start_date: %w", err)
		}
		start = parsed
	}

	end := addMonth(start).AddDate(0, 0, -1)
	if filter.EndDate != "" {
		parsed, err := time.Parse(dateLayout, filter.EndDate)
		if err != nil {
			return DateRange{}, fmt.Errorf("invalid end_date: %w", err)
		}
		end = parsed
	}

	filterDate := today
	if filter.FilterDate != "" {
		parsed, err := time.Parse(dateLayout, filter.FilterDate)
		if err != nil {
			return DateRange{}, fmt.Errorf("invalid filter_date: %w", err)
		}
		filterDate = parsed
	}

	return DateRange{Start: start, End: end, FilterDate: filterDate}, nil
}

// addMonth moves t one calendar month ahead, clamping to the last day of
// the target month (Jan 31 -> Feb 28).
func addMonth(t time.Time) time.Time {
	firstOfNext := time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, t.Location())
	lastDay := firstOfNext.AddDate(0, 1, -1).Day()
	day := t.Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfNext.Year(), firstOfNext.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// civilDate drops the clock and zone, keeping the calendar date of t.
func civilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func parseOptionalDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil
	}
	return &parsed
}
