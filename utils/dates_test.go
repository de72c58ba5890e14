package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysBetween(t *testing.T) {
	start := time.Date(2024, 1, 15, 23, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 17, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, 2, DaysBetween(start, end))
	assert.Equal(t, 0, DaysBetween(start, start))
}

func TestClinicLocation(t *testing.T) {
	t.Setenv("CLINIC_TIMEZONE", "Asia/Tokyo")
	assert.Equal(t, "Asia/Tokyo", ClinicLocation().String())

	t.Setenv("CLINIC_TIMEZONE", "Not/AZone")
	assert.Equal(t, time.Local, ClinicLocation())

	t.Setenv("CLINIC_TIMEZONE", "")
	assert.Equal(t, time.Local, ClinicLocation())
}
