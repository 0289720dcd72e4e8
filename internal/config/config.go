package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/termine-direkt/internal/domain"
)

// ErrInvalidConfig возвращается, если конфигурация не прошла валидацию
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Booking   BookingConfig   `toml:"booking"`
	Cache     CacheConfig     `toml:"cache"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	Mailer    MailerConfig    `toml:"mailer"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования. Пустой File означает stdout
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingConfig правила генерации слотов и приёма бронирований
type BookingConfig struct {
	SlotIntervalMinutes int    `toml:"slot_interval_minutes"`
	LeadTimeMinutes     int    `toml:"lead_time_minutes"`
	EnforceLeadTime     bool   `toml:"enforce_lead_time"`
	AdvanceBookingDays  int    `toml:"advance_booking_days"` // 0 = без ограничения
	Timezone            string `toml:"timezone"`
}

// Location часовой пояс бизнесов
func (b BookingConfig) Location() (*time.Location, error) {
	return time.LoadLocation(b.Timezone)
}

// CacheConfig размер кэша разобранных расписаний
type CacheConfig struct {
	ScheduleEntries int `toml:"schedule_entries"`
}

// RateLimitConfig ограничение публичной отправки бронирований по IP
type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerMinute float64 `toml:"requests_per_minute"`
	Burst             int     `toml:"burst"`
}

// MailerConfig HTTP API для писем о бронировании. Пустой URL отключает отправку
type MailerConfig struct {
	URL     string `toml:"url"`
	APIKey  string `toml:"api_key"`
	From    string `toml:"from"`
	Timeout int    `toml:"timeout"` // секунды
}

// Load читает конфигурацию из TOML файла
// Секреты DB_PASSWORD и MAILER_API_KEY берутся из окружения (и .env, если он есть) и перекрывают файл
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "termine-direkt",
		},
		Booking: BookingConfig{
			SlotIntervalMinutes: domain.DefaultSlotIntervalMinutes,
			LeadTimeMinutes:     domain.DefaultLeadTimeMinutes,
			EnforceLeadTime:     true,
			AdvanceBookingDays:  domain.DefaultAdvanceBookingDays,
			Timezone:            "Europe/Berlin",
		},
		Cache: CacheConfig{
			ScheduleEntries: 1024,
		},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerMinute: 10,
			Burst:             5,
		},
		Mailer: MailerConfig{
			Timeout: 5,
		},
	}
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("DB_PASSWORD")); v != "" {
		cfg.Database.Password = v
	}
	if v := strings.TrimSpace(os.Getenv("MAILER_API_KEY")); v != "" {
		cfg.Mailer.APIKey = v
	}
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	var problems []string

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		problems = append(problems, "server.http_port must be in 1..65535")
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		problems = append(problems, "database.host and database.dbname are required")
	}
	if c.Booking.SlotIntervalMinutes <= 0 {
		problems = append(problems, "booking.slot_interval_minutes must be positive")
	}
	if c.Booking.LeadTimeMinutes < 0 {
		problems = append(problems, "booking.lead_time_minutes must not be negative")
	}
	if c.Booking.AdvanceBookingDays < 0 {
		problems = append(problems, "booking.advance_booking_days must not be negative")
	}
	if _, err := c.Booking.Location(); err != nil {
		problems = append(problems, fmt.Sprintf("booking.timezone: %v", err))
	}
	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerMinute <= 0 || c.RateLimit.Burst <= 0) {
		problems = append(problems, "rate_limit.requests_per_minute and rate_limit.burst must be positive")
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		problems = append(problems, "metrics.path must start with /")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
