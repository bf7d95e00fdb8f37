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

	advanceStepHandler "github.com/Isazzy/SBS-ReservationService/internal/api/handlers/advance_step"
	backStepHandler "github.com/Isazzy/SBS-ReservationService/internal/api/handlers/back_step"
	chooseSlotHandler "github.com/Isazzy/SBS-ReservationService/internal/api/handlers/choose_slot"
	confirmReservationHandler "github.com/Isazzy/SBS-ReservationService/internal/api/handlers/confirm_reservation"
	getEligibleDaysHandler "github.com/Isazzy/SBS-ReservationService/internal/api/handlers/get_eligible_days"
	getUserReservationsHandler "github.com/Isazzy/SBS-ReservationService/internal/api/handlers/get_user_reservations"
	getWizardHandler "github.com/Isazzy/SBS-ReservationService/internal/api/handlers/get_wizard"
	requestCancellationHandler "github.com/Isazzy/SBS-ReservationService/internal/api/handlers/request_cancellation"
	resetWizardHandler "github.com/Isazzy/SBS-ReservationService/internal/api/handlers/reset_wizard"
	searchSlotsHandler "github.com/Isazzy/SBS-ReservationService/internal/api/handlers/search_slots"
	selectDateHandler "github.com/Isazzy/SBS-ReservationService/internal/api/handlers/select_date"
	startWizardHandler "github.com/Isazzy/SBS-ReservationService/internal/api/handlers/start_wizard"
	toggleServiceHandler "github.com/Isazzy/SBS-ReservationService/internal/api/handlers/toggle_service"
	updateReservationStatusHandler "github.com/Isazzy/SBS-ReservationService/internal/api/handlers/update_reservation_status"
	"github.com/Isazzy/SBS-ReservationService/internal/api/middleware"
	"github.com/Isazzy/SBS-ReservationService/internal/config"
	reservationRepo "github.com/Isazzy/SBS-ReservationService/internal/infra/storage/reservation"
	salonServiceClient "github.com/Isazzy/SBS-ReservationService/internal/integrations/salonservice"
	schedulingServiceClient "github.com/Isazzy/SBS-ReservationService/internal/integrations/schedulingservice"
	reservationsService "github.com/Isazzy/SBS-ReservationService/internal/service/reservations"
	wizardflowService "github.com/Isazzy/SBS-ReservationService/internal/service/wizardflow"
	confirmReservationUC "github.com/Isazzy/SBS-ReservationService/internal/usecase/confirm_reservation"
	getAvailableSlotsUC "github.com/Isazzy/SBS-ReservationService/internal/usecase/get_available_slots"
	startWizardUC "github.com/Isazzy/SBS-ReservationService/internal/usecase/start_wizard"
	"github.com/Isazzy/SBS-ReservationService/internal/wizard"
	"github.com/Isazzy/SBS-ReservationService/pkg/dbmetrics"
	"github.com/Isazzy/SBS-ReservationService/pkg/logger"
	"github.com/Isazzy/SBS-ReservationService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting SBS-ReservationService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
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

	// Инициализируем интеграционных клиентов
	salonClient := salonServiceClient.NewClient(
		cfg.SalonService.URL,
		time.Duration(cfg.SalonService.Timeout)*time.Second,
		log,
	)
	schedClient := schedulingServiceClient.NewClient(
		cfg.SchedulingService.URL,
		time.Duration(cfg.SchedulingService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (SalonService=%s timeout=%ds, SchedulingService=%s timeout=%ds)",
		cfg.SalonService.URL, cfg.SalonService.Timeout, cfg.SchedulingService.URL, cfg.SchedulingService.Timeout)

	// Инициализируем репозиторий (с метриками или без)
	var repository *reservationRepo.Repository
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
		repository = reservationRepo.NewRepository(wrappedDB)
	} else {
		repository = reservationRepo.NewRepository(db)
	}

	// Менеджер сессий визарда: одна сессия на пользователя
	var sessionGauge wizard.Gauge
	if cfg.Metrics.Enabled {
		sessionGauge = metricsCollector.WizardSessionsActive.WithLabelValues()
	}
	sessionManager := wizard.NewManager(sessionGauge)

	// Инициализируем сервисы
	wizardflowSvc := wizardflowService.NewService(sessionManager, log)
	reservationsSvc := reservationsService.NewService(repository, schedClient, log)

	// Инициализируем use cases
	startWizardUseCase := startWizardUC.NewUseCase(salonClient, sessionManager, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		schedClient,
		sessionManager,
		getAvailableSlotsUC.RealTimeProvider{},
		log,
	)
	confirmReservationUseCase := confirmReservationUC.NewUseCase(
		schedClient,
		sessionManager,
		repository,
		log,
	)

	// Инициализируем handlers
	startWizard := startWizardHandler.NewHandler(startWizardUseCase, log)
	getWizard := getWizardHandler.NewHandler(wizardflowSvc, log)
	resetWizard := resetWizardHandler.NewHandler(wizardflowSvc, log)
	toggleService := toggleServiceHandler.NewHandler(wizardflowSvc, log)
	advanceStep := advanceStepHandler.NewHandler(wizardflowSvc, log)
	backStep := backStepHandler.NewHandler(wizardflowSvc, log)
	selectDate := selectDateHandler.NewHandler(wizardflowSvc, log)
	getEligibleDays := getEligibleDaysHandler.NewHandler(wizardflowSvc, log)
	searchSlots := searchSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	chooseSlot := chooseSlotHandler.NewHandler(wizardflowSvc, log)
	confirmReservation := confirmReservationHandler.NewHandler(confirmReservationUseCase, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationsSvc, log)
	requestCancellation := requestCancellationHandler.NewHandler(reservationsSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// INTERNAL ROUTES (для операторов и синхронизации статусов)
	// ============================================================

	api.HandleFunc("/reservations/{reservationId}/status",
		updateReservationStatus.Handle).Methods(http.MethodPatch)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Мастер записи ---
	// Старт, состояние и сброс визарда
	protected.HandleFunc("/wizard", startWizard.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/wizard", getWizard.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/wizard", resetWizard.Handle).Methods(http.MethodDelete)

	// Корзина услуг
	protected.HandleFunc("/wizard/services/toggle", toggleService.Handle).Methods(http.MethodPost)

	// Навигация по шагам
	protected.HandleFunc("/wizard/advance", advanceStep.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/wizard/back", backStep.Handle).Methods(http.MethodPost)

	// Выбор даты и календарь доступных дней
	protected.HandleFunc("/wizard/date", selectDate.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/wizard/eligible-days", getEligibleDays.Handle).Methods(http.MethodGet)

	// Поиск и выбор слота
	protected.HandleFunc("/wizard/slots/search", searchSlots.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/wizard/slot", chooseSlot.Handle).Methods(http.MethodPost)

	// Подтверждение записи
	protected.HandleFunc("/wizard/confirm", confirmReservation.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/reservations", getUserReservations.Handle).Methods(http.MethodGet)

	// Запрос отмены бронирования
	protected.HandleFunc("/reservations/{reservationId}/cancellation-request",
		requestCancellation.Handle).Methods(http.MethodPatch)

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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
