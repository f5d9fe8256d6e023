package create_appointment

import (
	"time"

	"github.com/jpereira-dev/VWS-SchedulerService/internal/domain"
)

// Request модель запроса на создание записи
type Request struct {
	FullName  string    // Имя клиента (обязательно)
	Phone     string    // Телефон клиента в произвольном формате (обязательно)
	ServiceID *int64    // ID услуги (опционально)
	Date      time.Time // Календарная дата (без времени, UTC)
	SlotKey   string    // Ключ слота из расписания
	Notes     *string   // Заметки (опционально)
}

// Response модель ответа с созданной записью и клиентом
type Response struct {
	Appointment *domain.Appointment
	Customer    *domain.Customer
}
