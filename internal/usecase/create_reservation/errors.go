package create_reservation

import (
	"errors"
	"strings"
)

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = errors.New("create_reservation: business not found")

	// ErrInvalidDate возвращается, когда дата бронирования в прошлом
	ErrInvalidDate = errors.New("create_reservation: invalid booking date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение advanceBookingDays
	ErrDateTooFarInFuture = errors.New("create_reservation: date is too far in the future")

	// ErrInvalidTimeSlot возвращается, когда время не является слотом бизнеса на эту дату
	ErrInvalidTimeSlot = errors.New("create_reservation: invalid time slot")

	// ErrTooLateToBook возвращается, когда слот на сегодня начинается раньше now + lead time
	ErrTooLateToBook = errors.New("create_reservation: too late to book this slot")

	// ErrSlotFull возвращается, когда в слоте не осталось мест
	ErrSlotFull = errors.New("create_reservation: slot is full")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")

	// errConcurrentBooking конкурентный запрос занял выбранное место раньше (23505 или 40001).
	// Строка не записана, попытку можно повторить в новой транзакции
	errConcurrentBooking = errors.New("create_reservation: concurrent booking on the same slot")
)

// FieldError ошибка конкретного поля запроса
type FieldError struct {
	Field   string
	Message string
}

// FieldErrors ошибки валидации полей. errors.Is(err, ErrInvalidInput) == true
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return ErrInvalidInput.Error() + ": " + strings.Join(parts, "; ")
}

func (e FieldErrors) Unwrap() error {
	return ErrInvalidInput
}
