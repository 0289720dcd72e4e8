package create_reservation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/termine-direkt/internal/domain"
	"github.com/m04kA/termine-direkt/internal/schedule"
)

// newValidator создает валидатор, который называет поля по json тегам
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// normalizeRequest обрезает пробелы и превращает пустые строки в nil
func normalizeRequest(req *Request) {
	req.GuestName = strings.TrimSpace(req.GuestName)
	req.GuestEmail = trimOptional(req.GuestEmail)
	req.Phone = trimOptional(req.Phone)
	req.Service = trimOptional(req.Service)
	req.Note = trimOptional(req.Note)
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// validateRequest проверяет обязательные поля и форматы
func validateRequest(v *validator.Validate, req *Request) error {
	var fields FieldErrors

	if err := v.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		for _, fe := range validationErrors {
			fields = append(fields, FieldError{Field: fe.Field(), Message: describe(fe)})
		}
	}

	if req.Date.IsZero() {
		fields = append(fields, FieldError{Field: "date", Message: "is required"})
	}

	if !req.Time.IsZero() {
		if err := req.Time.Validate(); err != nil {
			fields = append(fields, FieldError{Field: "time", Message: "must be HH:MM"})
		}
	}

	if len(fields) > 0 {
		return fields
	}
	return nil
}

// validateForBusiness проверяет поля, обязательные для типа бизнеса
// Для салона количество гостей всегда 1. Бизнесу из дашборда достаточно имени гостя
func validateForBusiness(business *domain.Business, req *Request) error {
	var fields FieldErrors

	if req.EnteredByOwner {
		if business.IsSalon() {
			one := 1
			req.PartySize = &one
		}
		return nil
	}

	if business.IsSalon() {
		if req.Service == nil {
			fields = append(fields, FieldError{Field: "service", Message: "is required"})
		}
		if req.GuestEmail == nil && req.Phone == nil {
			fields = append(fields, FieldError{Field: "guestEmail", Message: "email or phone is required"})
		}
		one := 1
		req.PartySize = &one
	} else {
		if req.GuestEmail == nil {
			fields = append(fields, FieldError{Field: "guestEmail", Message: "is required"})
		}
		if req.Phone == nil {
			fields = append(fields, FieldError{Field: "phone", Message: "is required"})
		}
		if req.PartySize == nil {
			fields = append(fields, FieldError{Field: "partySize", Message: "is required"})
		}
	}

	if len(fields) > 0 {
		return fields
	}
	return nil
}

// validateDate проверяет, что дата подходит для бронирования
func validateDate(bookingDate time.Time, now time.Time, advanceBookingDays int) error {
	if schedule.IsDateInPast(bookingDate, now) {
		return ErrInvalidDate
	}

	// Если advanceBookingDays = 0, нет ограничений на дату
	if advanceBookingDays == 0 {
		return nil
	}

	maxDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, advanceBookingDays)
	bookingDateOnly := time.Date(bookingDate.Year(), bookingDate.Month(), bookingDate.Day(), 0, 0, 0, 0, time.UTC)

	if bookingDateOnly.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, advanceBookingDays)
	}

	return nil
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "gt":
		return "must be greater than " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	}
	return "is invalid"
}
