package business

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = errors.New("business: business not found")

	// ErrAccessDenied возвращается, когда бизнес пытается изменить чужие настройки
	ErrAccessDenied = errors.New("business: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("business: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("business: internal error")
)
