package cron

import (
	"fmt"
	"time"
)

// describeOffset writes a UTC offset like "+05:30" or "−04", using a true minus sign.
func describeOffset(offset int) string {
	sign := '+'
	if offset < 0 {
		sign = '−'
		offset = -offset
	}

	hours, minutes, seconds := offset/3600, offset/60%60, offset%60
	switch {
	case seconds != 0:
		return fmt.Sprintf("%c%02d:%02d:%02d", sign, hours, minutes, seconds)
	case minutes != 0:
		return fmt.Sprintf("%c%02d:%02d", sign, hours, minutes)
	default:
		return fmt.Sprintf("%c%02d", sign, hours)
	}
}

// DescribeLocation names a time zone together with its current offset.
func DescribeLocation(loc *time.Location) string {
	_, offset := time.Now().In(loc).Zone()
	return fmt.Sprintf("%s (currently UTC%s)", loc.String(), describeOffset(offset))
}
