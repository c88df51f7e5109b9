package drs

import (
	"time"
	// Embedded zoneinfo so the lookup works in images without a system
	// tz database.
	_ "time/tzdata"
)

// DRS stores and expects wall-clock times in the UK reference timezone.
var drsLocation = mustLoadLocation("Europe/London")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// ConvertToDrsTimeZone renders t as the equivalent wall-clock time in the
// DRS reference timezone. The conversion is pure; daylight saving is handled
// only to the extent the reference zone defines it.
func ConvertToDrsTimeZone(t time.Time) time.Time {
	return t.In(drsLocation)
}
