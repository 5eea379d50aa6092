package period

import (
	"math"
	"time"
)

// DaysPerMonth is the fixed month length used for linear pricing.
// Contract months are not calendar months on purpose: a 30-day month
// keeps the per-seat amount proportional to the booked duration.
const DaysPerMonth = 30

// Period is the billable duration derived from a service window.
type Period struct {
	TotalDays    int `json:"total_days"`
	Months       int `json:"months"`
	LeftoverDays int `json:"leftover_days"`
}

// Calculate derives the billing period from a service window using the
// day-count model. The difference is taken as an absolute value and
// rounded up to whole days, so a reversed window or a time-of-day
// remainder never under-counts. It is total over any pair of valid
// dates; start == end yields the zero period.
func Calculate(start, end time.Time) Period {
	diff := end.Sub(start)
	if diff < 0 {
		diff = -diff
	}
	totalDays := int(math.Ceil(diff.Hours() / 24))

	return Period{
		TotalDays:    totalDays,
		Months:       totalDays / DaysPerMonth,
		LeftoverDays: totalDays % DaysPerMonth,
	}
}

// CalendarMonths counts the service window in calendar months, first and
// last month inclusive. It is the alternative billing model kept for
// quotations issued before the day-count model was adopted: a window
// touching three calendar months bills three months regardless of the
// day of month it starts or ends on.
func CalendarMonths(start, end time.Time) int {
	return (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month()) + 1
}
