package get_availability

import (
	"time"

	"github.com/jpereira-dev/VWS-SchedulerService/internal/domain"
	getAvailability "github.com/jpereira-dev/VWS-SchedulerService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date     string `json:"date"`
	Night    bool   `json:"night"`
	Capacity int    `json:"capacity"`
	Slots    []Slot `json:"slots"`
}

// Slot модель слота с занятостью
type Slot struct {
	Key       string `json:"key"`
	Label     string `json:"label"`
	Duration  int    `json:"duration"`
	Booked    int    `json:"booked"`
	Capacity  int    `json:"capacity"`
	Available int    `json:"available"`
	Start     string `json:"start"`
}

// ToUseCaseRequest создает запрос use case из query параметра даты.
// Параметр обрезается до 10 символов и парсится строго как YYYY-MM-DD.
func ToUseCaseRequest(dateStr string) (*getAvailability.Request, error) {
	if len(dateStr) > domain.DateParamLength {
		dateStr = dateStr[:domain.DateParamLength]
	}

	date, err := time.ParseInLocation(domain.DateFormat, dateStr, time.UTC)
	if err != nil {
		return nil, err
	}

	return &getAvailability.Request{Date: date}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = Slot{
			Key:       slot.Key,
			Label:     slot.Label,
			Duration:  slot.DurationMinutes,
			Booked:    slot.Booked,
			Capacity:  slot.Capacity,
			Available: slot.Available,
			Start:     slot.Start.UTC().Format(time.RFC3339),
		}
	}

	return &AvailabilityResponse{
		Date:     resp.Date.Format(domain.DateFormat),
		Night:    resp.Night,
		Capacity: resp.Capacity,
		Slots:    slots,
	}
}
