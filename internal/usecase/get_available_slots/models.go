package get_available_slots

import (
	"time"

	"github.com/m04kA/termine-direkt/internal/domain"
)

// Settings параметры генерации слотов из конфигурации сервиса
type Settings struct {
	SlotIntervalMinutes int            // Шаг между слотами
	LeadTimeMinutes     int            // Минимальное время до слота на сегодня
	AdvanceBookingDays  int            // На сколько дней вперёд можно бронировать (0 - без ограничений)
	Location            *time.Location // Часовой пояс бизнеса, в нём считается "сегодня"
}

// Request модель запроса на получение доступных слотов
type Request struct {
	BusinessID int64     // ID бизнеса
	Date       time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком слотов
type Response struct {
	Date         time.Time              // Дата, на которую запрашивались слоты
	BusinessID   int64                  // ID бизнеса
	Capacity     int                    // Вместимость слота после применения политики
	UsesFallback bool                   // Часы работы не распознаны, используются 12:00-20:00
	Slots        []domain.AvailableSlot // Слоты в порядке открытых интервалов
}
