package mailer

// Email письмо в формате почтового API (resend-совместимый)
type Email struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

// SendResponse ответ почтового API
type SendResponse struct {
	ID string `json:"id"`
}

// ErrorResponse модель ошибки от почтового API
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Name       string `json:"name"`
	Message    string `json:"message"`
}
