package create_reservation

import (
	"time"

	"github.com/m04kA/termine-direkt/pkg/types"
)

// Outcome исход бронирования для метрик
const (
	OutcomeCommitted = "committed"
	OutcomeSlotFull  = "slot_full"
	OutcomeRejected  = "rejected"
)

// Settings параметры бронирования из конфигурации сервиса
type Settings struct {
	SlotIntervalMinutes int            // Шаг между слотами
	LeadTimeMinutes     int            // Минимальное время до слота на сегодня
	EnforceLeadTime     bool           // Проверять lead time при создании бронирования
	AdvanceBookingDays  int            // На сколько дней вперёд можно бронировать (0 - без ограничений)
	Location            *time.Location // Часовой пояс бизнеса
}

// Request модель запроса на создание бронирования
// Теги json задают имена полей в ошибках валидации
type Request struct {
	BusinessID int64            `json:"businessId" validate:"gt=0"`
	Date       time.Time        `json:"date"`
	Time       types.TimeString `json:"time" validate:"required"`
	GuestName  string           `json:"guestName" validate:"required,max=200"`
	GuestEmail *string          `json:"guestEmail" validate:"omitempty,email,max=255"`
	Phone      *string          `json:"phone" validate:"omitempty,max=50"`
	PartySize  *int             `json:"partySize" validate:"omitempty,min=1,max=50"`
	Service    *string          `json:"service" validate:"omitempty,max=200"`
	Note       *string          `json:"note" validate:"omitempty,max=500"`

	// EnteredByOwner бронирование внесено бизнесом из дашборда (звонок, гость у двери).
	// Lead time не проверяется, контакты гостя и услуга не обязательны, уведомление не отправляется
	EnteredByOwner bool `json:"-"`
}

// Response созданное бронирование. Только поля, которые прислал гость, и служебные данные слота
type Response struct {
	ID         int64
	BusinessID int64
	Date       time.Time
	Time       types.TimeString
	GuestName  string
	GuestEmail *string
	Phone      *string
	PartySize  *int
	Service    *string
	Note       *string
	CreatedAt  time.Time
}
