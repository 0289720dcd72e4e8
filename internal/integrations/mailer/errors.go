package mailer

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("mailer client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от почтового API
	ErrInvalidResponse = errors.New("mailer client: invalid response")

	// ErrUnauthorized возвращается, если почтовый API отклонил ключ
	ErrUnauthorized = errors.New("mailer client: unauthorized")
)
