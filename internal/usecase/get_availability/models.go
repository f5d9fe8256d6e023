package get_availability

import "time"

// Request модель запроса доступности слотов
type Request struct {
	Date time.Time // Календарная дата (без времени, UTC)
}

// Response модель ответа с доступностью слотов на дату
type Response struct {
	Date     time.Time // Дата, на которую запрашивались слоты
	Night    bool      // Включена ли ночная смена на момент запроса
	Capacity int       // Вместимость каждого слота (общая константа)
	Slots    []Slot    // Слоты-кандидаты с занятостью; может быть пуст
}

// Slot модель одного слота с вычисленной занятостью
type Slot struct {
	Key             string    // Стабильный ключ слота
	Label           string    // Отображаемое название
	DurationMinutes int       // Длительность создаваемой записи
	Booked          int       // Занято (неотменённые записи в окне слота)
	Capacity        int       // Вместимость слота
	Available       int       // Свободно: max(Capacity - Booked, 0)
	Start           time.Time // Абсолютное начало слота (UTC)
}
