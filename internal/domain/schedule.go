package domain

import "time"

// WeekdaySlots is the fixed daytime schedule applied Monday through Friday.
// Slot windows within a day type do not overlap (the schedule is authored
// that way; nothing enforces it).
var WeekdaySlots = []Slot{
	{Key: "08-10", Label: "08:00 - 10:00", Start: "08:00", End: "10:00", DurationMinutes: 120},
	{Key: "10-30_12", Label: "10:30 - 12:00", Start: "10:30", End: "12:00", DurationMinutes: 90},
	{Key: "12-30_14", Label: "12:30 - 14:00", Start: "12:30", End: "14:00", DurationMinutes: 90},
	{Key: "14-16", Label: "14:00 - 16:00", Start: "14:00", End: "16:00", DurationMinutes: 120},
	{Key: "16-30_18", Label: "16:30 - 18:00", Start: "16:30", End: "18:00", DurationMinutes: 90},
}

// NightSlots is the evening schedule, appended to any day's candidate set
// only while the night shift setting is enabled.
//
// The 18-30_20 duration intentionally exceeds its window: the service runs
// into closing time and the stored appointment length reflects that.
var NightSlots = []Slot{
	{Key: "18-30_20", Label: "18:30 - 20:00", Start: "18:30", End: "20:00", DurationMinutes: 120},
	{Key: "20-30_22", Label: "20:30 - 22:00", Start: "20:30", End: "22:00", DurationMinutes: 90},
}

// IsWorkday returns true for Monday through Friday
func IsWorkday(date time.Time) bool {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	default:
		return true
	}
}

// SlotsForDate returns the candidate slot set for a calendar date:
// weekday slots Monday-Friday, night slots appended only when nightEnabled.
// Weekend days have night slots only (when enabled) and may be empty;
// an empty candidate set is valid, not an error.
func SlotsForDate(date time.Time, nightEnabled bool) []Slot {
	slots := make([]Slot, 0, len(WeekdaySlots)+len(NightSlots))
	if IsWorkday(date) {
		slots = append(slots, WeekdaySlots...)
	}
	if nightEnabled {
		slots = append(slots, NightSlots...)
	}
	return slots
}

// FindSlot looks up a slot by key within a candidate set
func FindSlot(slots []Slot, key string) (Slot, bool) {
	for _, s := range slots {
		if s.Key == key {
			return s, true
		}
	}
	return Slot{}, false
}
