package domain

import (
	"time"

	"github.com/jpereira-dev/VWS-SchedulerService/pkg/types"
)

// Slot is a named, fixed time window within a day during which appointments
// may be booked.
//
// DurationMinutes is configured independently of the Start/End window: the
// duration feeds the stored appointment length, the window feeds the
// occupancy query. The two are not required to agree.
type Slot struct {
	Key             string
	Label           string
	Start           types.TimeString
	End             types.TimeString
	DurationMinutes int
}

// WindowFor returns the slot's absolute [start, end) window for the given
// calendar date. The date's clock part is ignored; windows are built in UTC.
func (s Slot) WindowFor(date time.Time) (time.Time, time.Time, error) {
	startHour, startMinute, err := s.Start.Clock()
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	endHour, endMinute, err := s.End.Clock()
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	y, m, d := date.Date()
	start := time.Date(y, m, d, startHour, startMinute, 0, 0, time.UTC)
	end := time.Date(y, m, d, endHour, endMinute, 0, 0, time.UTC)
	return start, end, nil
}
