package create_appointment

import (
	"fmt"
	"strings"

	"github.com/jpereira-dev/VWS-SchedulerService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Телефон проверяется после нормализации отдельно (ErrInvalidPhone).
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.FullName) == "" {
		return fmt.Errorf("%w: client_full_name is required", ErrInvalidInput)
	}

	if len(req.FullName) > domain.MaxFullNameLength {
		return fmt.Errorf("%w: client_full_name exceeds %d characters", ErrInvalidInput, domain.MaxFullNameLength)
	}

	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: client_phone is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.SlotKey) == "" {
		return fmt.Errorf("%w: slot_key is required", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// normalizePhone нормализует телефон и проверяет длину
func normalizePhone(raw string) (string, error) {
	normalized := domain.NormalizePhone(raw)
	if !domain.ValidPhone(normalized) {
		return "", fmt.Errorf("%w: expected %d digits, got %d", ErrInvalidPhone, domain.PhoneLength, len(normalized))
	}
	return normalized, nil
}
