package reservation

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrSlotTaken возвращается при нарушении уникальности (business, date, time, slot_ordinal)
	ErrSlotTaken = errors.New("reservation.repository: slot ordinal already taken")

	// ErrSerialization возвращается, когда PostgreSQL отменил транзакцию из-за конкурентной записи
	ErrSerialization = errors.New("reservation.repository: serialization failure")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)

// Коды ошибок PostgreSQL
const (
	codeUniqueViolation      = pq.ErrorCode("23505")
	codeSerializationFailure = pq.ErrorCode("40001")
)

// classify переводит ошибку драйвера в ошибку конкурентной записи, либо возвращает nil
func classify(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return nil
	}
	switch pqErr.Code {
	case codeUniqueViolation:
		return ErrSlotTaken
	case codeSerializationFailure:
		return ErrSerialization
	}
	return nil
}

// IsConflict возвращает true, если запись проиграла гонку за слот:
// нарушение уникальности порядкового номера либо ошибка сериализации.
// Работает и для ошибок commit, которые приходят из txmanager
func IsConflict(err error) bool {
	if errors.Is(err, ErrSlotTaken) || errors.Is(err, ErrSerialization) {
		return true
	}
	return classify(err) != nil
}
