package get_availability

import (
	"time"

	"github.com/jpereira-dev/VWS-SchedulerService/internal/domain"
)

// countBookedInWindow подсчитывает записи, занимающие окно [start, end).
// Запись занимает слот, если её начало попадает в окно и статус не cancelled.
// Начало, совпадающее с end, в окно не входит.
func countBookedInWindow(appointments []*domain.Appointment, start, end time.Time) int {
	count := 0
	for _, appt := range appointments {
		if !appt.OccupiesSlot() {
			continue
		}
		if !appt.ScheduledAt.Before(start) && appt.ScheduledAt.Before(end) {
			count++
		}
	}
	return count
}

// buildSlots вычисляет занятость каждого слота-кандидата на дату
func buildSlots(date time.Time, candidates []domain.Slot, appointments []*domain.Appointment) ([]Slot, error) {
	result := make([]Slot, 0, len(candidates))

	for _, slot := range candidates {
		start, end, err := slot.WindowFor(date)
		if err != nil {
			return nil, err
		}

		booked := countBookedInWindow(appointments, start, end)
		available := domain.SlotCapacity - booked
		if available < 0 {
			available = 0
		}

		result = append(result, Slot{
			Key:             slot.Key,
			Label:           slot.Label,
			DurationMinutes: slot.DurationMinutes,
			Booked:          booked,
			Capacity:        domain.SlotCapacity,
			Available:       available,
			Start:           start,
		})
	}

	return result, nil
}

// dayBounds возвращает границы суток [полночь, полночь+24ч) в UTC
func dayBounds(date time.Time) (time.Time, time.Time) {
	y, m, d := date.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}
