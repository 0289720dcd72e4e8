package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createReservationHandler "github.com/m04kA/termine-direkt/internal/api/handlers/create_reservation"
	deleteReservationHandler "github.com/m04kA/termine-direkt/internal/api/handlers/delete_reservation"
	getAvailableSlotsHandler "github.com/m04kA/termine-direkt/internal/api/handlers/get_available_slots"
	getBusinessHoursHandler "github.com/m04kA/termine-direkt/internal/api/handlers/get_business_hours"
	getReservationHandler "github.com/m04kA/termine-direkt/internal/api/handlers/get_reservation"
	listReservationsHandler "github.com/m04kA/termine-direkt/internal/api/handlers/list_reservations"
	updateBusinessHoursHandler "github.com/m04kA/termine-direkt/internal/api/handlers/update_business_hours"
	"github.com/m04kA/termine-direkt/internal/api/middleware"
	"github.com/m04kA/termine-direkt/internal/config"
	businessRepo "github.com/m04kA/termine-direkt/internal/infra/storage/business"
	reservationRepo "github.com/m04kA/termine-direkt/internal/infra/storage/reservation"
	"github.com/m04kA/termine-direkt/internal/integrations/mailer"
	"github.com/m04kA/termine-direkt/internal/schedule"
	businessService "github.com/m04kA/termine-direkt/internal/service/business"
	"github.com/m04kA/termine-direkt/internal/service/capacity"
	reservationsService "github.com/m04kA/termine-direkt/internal/service/reservations"
	createReservationUC "github.com/m04kA/termine-direkt/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/m04kA/termine-direkt/internal/usecase/get_available_slots"
	"github.com/m04kA/termine-direkt/pkg/dbmetrics"
	"github.com/m04kA/termine-direkt/pkg/logger"
	"github.com/m04kA/termine-direkt/pkg/metrics"
	"github.com/m04kA/termine-direkt/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	configPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting termine-direkt...")
	log.Info("Configuration loaded from %s", configPath)

	location, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %s: %v", cfg.Booking.Timezone, err)
	}

	// Инициализируем метрики (если включены). nil *Metrics безопасен во всех потребителях
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Репозитории
	businessRepository := businessRepo.NewRepository(wrappedDB)
	reservationRepository := reservationRepo.NewRepository(wrappedDB)

	// Кэш разобранных часов работы
	scheduleCache, err := schedule.NewCache(cfg.Cache.ScheduleEntries, metricsCollector)
	if err != nil {
		log.Fatal("Failed to create schedule cache: %v", err)
	}

	// Почтовые уведомления
	mailClient := mailer.NewClient(
		cfg.Mailer.URL,
		cfg.Mailer.APIKey,
		cfg.Mailer.From,
		time.Duration(cfg.Mailer.Timeout)*time.Second,
		log,
	)
	if !mailClient.Enabled() {
		log.Warn("Mailer URL is not configured, reservation notifications are disabled")
	}

	// Сервисы
	ledger := capacity.NewLedger(reservationRepository)
	reservationsSvc := reservationsService.NewService(reservationRepository, log)
	businessSvc := businessService.NewService(businessRepository, scheduleCache, log)

	// Use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		businessRepository,
		ledger,
		scheduleCache,
		getAvailableSlotsUC.Settings{
			SlotIntervalMinutes: cfg.Booking.SlotIntervalMinutes,
			LeadTimeMinutes:     cfg.Booking.LeadTimeMinutes,
			AdvanceBookingDays:  cfg.Booking.AdvanceBookingDays,
			Location:            location,
		},
		log,
	)

	createReservationUseCase := createReservationUC.NewUseCase(
		businessRepository,
		reservationRepository,
		ledger,
		scheduleCache,
		txMgr,
		mailClient,
		metricsCollector,
		createReservationUC.Settings{
			SlotIntervalMinutes: cfg.Booking.SlotIntervalMinutes,
			LeadTimeMinutes:     cfg.Booking.LeadTimeMinutes,
			EnforceLeadTime:     cfg.Booking.EnforceLeadTime,
			AdvanceBookingDays:  cfg.Booking.AdvanceBookingDays,
			Location:            location,
		},
		log,
	)

	// Handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, location, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationsSvc, log)
	getBusinessHours := getBusinessHoursHandler.NewHandler(businessSvc, log)
	updateBusinessHours := updateBusinessHoursHandler.NewHandler(businessSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// by-slug раньше маршрутов с {businessId}, иначе slug "hours" уйдёт в них
	api.HandleFunc("/businesses/by-slug/{slug}", getBusinessHours.HandleBySlug).Methods(http.MethodGet)
	api.HandleFunc("/businesses/{businessId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/businesses/{businessId}/hours", getBusinessHours.Handle).Methods(http.MethodGet)

	// Бронирование из дашборда: тот же путь, выбирается по наличию заголовка X-Business-ID
	// и регистрируется раньше гостевого, без ограничения частоты
	owner := api.Headers(middleware.BusinessIDHeader, "").Subrouter()
	owner.Use(middleware.Auth)
	owner.HandleFunc("/businesses/{businessId}/reservations", createReservation.HandleOwner).Methods(http.MethodPost)

	// Отправка бронирования гостем, с ограничением частоты по IP
	booking := api.PathPrefix("").Subrouter()
	if cfg.RateLimit.Enabled {
		limiter, err := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, log)
		if err != nil {
			log.Fatal("Failed to create rate limiter: %v", err)
		}
		booking.Use(limiter.Middleware)
		log.Info("Rate limit for reservations: %.1f/min, burst=%d", cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	}
	booking.HandleFunc("/businesses/{businessId}/reservations", createReservation.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Business-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/businesses/{businessId}/reservations", listReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/businesses/{businessId}/hours", updateBusinessHours.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}", deleteReservation.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
