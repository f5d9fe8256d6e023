package create_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInvalidPhone возвращается, когда телефон после нормализации
	// не состоит ровно из 11 цифр
	ErrInvalidPhone = errors.New("create_appointment: invalid phone number")

	// ErrInvalidSlot возвращается, когда ключ слота не входит в набор
	// кандидатов на дату (например, ночной слот при выключенной ночной смене)
	ErrInvalidSlot = errors.New("create_appointment: slot is not available on this date")

	// ErrNoCapacity возвращается, когда все места слота заняты.
	// Это конфликт, а не ошибка валидации: повтор с другим слотом уместен,
	// с этим же - нет.
	ErrNoCapacity = errors.New("create_appointment: slot is at full capacity")

	// ErrCustomerPersistence возвращается, когда создание клиента
	// не вернуло пригодную запись
	ErrCustomerPersistence = errors.New("create_appointment: failed to persist customer")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
