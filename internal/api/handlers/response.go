package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const (
	maxBodyBytes       = 1 << 20
	msgInternalError   = "внутренняя ошибка сервера"
	msgValidationError = "ошибка валидации"
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error  string       `json:"error"`
	Fields []FieldIssue `json:"fields,omitempty"`
}

// FieldIssue ошибка одного поля запроса
type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// DecodeJSON читает тело запроса в dst. Неизвестные поля и лишние данные после объекта отклоняются
func DecodeJSON(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	if decoder.More() {
		return errors.New("decode body: unexpected data after JSON object")
	}
	return nil
}

// RespondJSON пишет payload в JSON с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// RespondError пишет ошибку с сообщением
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

// RespondValidation 400 со списком ошибок по полям
func RespondValidation(w http.ResponseWriter, fields []FieldIssue) {
	RespondJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgValidationError, Fields: fields})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

// RespondInternalError 500 без подробностей. Детали только в логах
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}
