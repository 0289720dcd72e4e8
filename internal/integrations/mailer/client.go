package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/termine-direkt/internal/domain"
)

// Client клиент почтового HTTP API
// Клиент без baseURL (и nil клиент) ничего не отправляет
type Client struct {
	baseURL    string
	apiKey     string
	from       string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр почтового клиента
func NewClient(baseURL, apiKey, from string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		from:    from,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Enabled возвращает true, если отправка настроена
func (c *Client) Enabled() bool {
	return c != nil && c.baseURL != ""
}

// Send отправляет одно письмо
func (c *Client) Send(ctx context.Context, email Email) (*SendResponse, error) {
	payload, err := json.Marshal(email)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode email: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
		// Продолжаем обработку
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var sent SendResponse
	if err := json.NewDecoder(resp.Body).Decode(&sent); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &sent, nil
}

// NotifyReservation сообщает о новом бронировании бизнесу и, если указан email, гостю
// Ошибка отправки не отменяет бронирование, вызывающий её только логирует
func (c *Client) NotifyReservation(ctx context.Context, business *domain.Business, reservation *domain.Reservation) error {
	if !c.Enabled() || business == nil || reservation == nil {
		return nil
	}

	var errs []string

	if business.Email != "" {
		if _, err := c.Send(ctx, businessEmail(c.from, business, reservation)); err != nil {
			c.log.Error("NotifyReservation: failed to notify business=%d about reservation=%d: %v", business.ID, reservation.ID, err)
			errs = append(errs, err.Error())
		}
	} else {
		c.log.Warn("NotifyReservation: business=%d has no email, skipping owner notification", business.ID)
	}

	if reservation.GuestEmail != nil && *reservation.GuestEmail != "" {
		if _, err := c.Send(ctx, guestEmail(c.from, business, reservation)); err != nil {
			c.log.Error("NotifyReservation: failed to notify guest of reservation=%d: %v", reservation.ID, err)
			errs = append(errs, err.Error())
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInternal, strings.Join(errs, "; "))
	}

	c.log.Info("NotifyReservation: notifications sent for reservation=%d", reservation.ID)
	return nil
}

func businessEmail(from string, b *domain.Business, r *domain.Reservation) Email {
	date := r.Date.Format(domain.DateFormat)

	lines := []string{
		"Betrieb: " + b.Name,
		"Datum: " + date,
		"Uhrzeit: " + r.Time.String(),
		"Name: " + r.GuestName,
	}
	if r.GuestEmail != nil {
		lines = append(lines, "E-Mail: "+*r.GuestEmail)
	}
	if r.Phone != nil {
		lines = append(lines, "Telefon: "+*r.Phone)
	}
	if r.PartySize != nil {
		lines = append(lines, "Personen: "+strconv.Itoa(*r.PartySize))
	}
	if r.Service != nil {
		lines = append(lines, "Leistung: "+*r.Service)
	}
	if r.Note != nil {
		lines = append(lines, "Notiz: "+*r.Note)
	}

	return Email{
		From:    from,
		To:      []string{b.Email},
		Subject: fmt.Sprintf("Neue Reservierung: %s %s", date, r.Time),
		Text:    strings.Join(lines, "\n"),
	}
}

func guestEmail(from string, b *domain.Business, r *domain.Reservation) Email {
	lines := []string{
		"Danke für Ihre Reservierung!",
		"Datum: " + r.Date.Format(domain.DateFormat),
		"Uhrzeit: " + r.Time.String(),
	}
	if r.PartySize != nil {
		lines = append(lines, "Personen: "+strconv.Itoa(*r.PartySize))
	}
	if r.Service != nil {
		lines = append(lines, "Leistung: "+*r.Service)
	}

	return Email{
		From:    from,
		To:      []string{*r.GuestEmail},
		Subject: "Ihre Reservierung bei " + b.Name,
		Text:    strings.Join(lines, "\n"),
	}
}
