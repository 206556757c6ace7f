// Package cron handles the refresh schedule.
package cron

import "time"

// Schedule tells the next time a scheduled event should happen.
type Schedule = interface {
	Next(now time.Time) time.Time
	Describe() string
}

// Next gets the next scheduled time after now. It returns the zero value for nil.
func Next(s Schedule, now time.Time) time.Time {
	if s == nil {
		return time.Time{}
	}

	return s.Next(now)
}

// DescribeSchedule gives back the original cron string.
func DescribeSchedule(s Schedule) string {
	if s == nil {
		return "@once"
	}

	return s.Describe()
}
