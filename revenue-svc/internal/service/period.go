package service

import (
	"strings"
	"time"

	"food-marketplace/revenue-svc/internal/domain"
)

const trailingWindowDays = 30

// ResolvePeriod turns a period symbol into an inclusive UTC range. Unknown symbols give the
// trailing window from midnight 30 days ago until now.
func ResolvePeriod(period string, now time.Time) domain.Period {
	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	name := strings.ToLower(strings.TrimSpace(period))

	var start, end time.Time
	switch name {
	case domain.PeriodDay:
		start = today
		end = start.AddDate(0, 0, 1).Add(-time.Second)
	case domain.PeriodWeek:
		start = today.AddDate(0, 0, -int(today.Weekday()))
		end = start.AddDate(0, 0, 7).Add(-time.Second)
	case domain.PeriodMonth:
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		end = start.AddDate(0, 1, 0).Add(-time.Second)
	case domain.PeriodYear:
		start = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		end = start.AddDate(1, 0, 0).Add(-time.Second)
	default:
		name = "trailing"
		start = today.AddDate(0, 0, -trailingWindowDays)
		end = now
	}
	return domain.Period{Name: name, Start: start, End: end}
}
