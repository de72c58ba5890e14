// utils/dates.go
package utils

import (
	"log"
	"os"
	"time"
)

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}

// ClinicLocation resolves the clinic's timezone from CLINIC_TIMEZONE (an IANA
// name like "America/New_York"). Falls back to the process-local zone so that
// "today"/"upcoming" never silently compare across mismatched zones.
func ClinicLocation() *time.Location {
	tz := os.Getenv("CLINIC_TIMEZONE")
	if tz == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("Invalid CLINIC_TIMEZONE %q, using local time: %v", tz, err)
		return time.Local
	}
	return loc
}
