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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	cancelAppointmentHandler "github.com/agendly/appointment-service/internal/api/handlers/cancel_appointment"
	confirmVerificationHandler "github.com/agendly/appointment-service/internal/api/handlers/confirm_verification"
	createAppointmentHandler "github.com/agendly/appointment-service/internal/api/handlers/create_appointment"
	createProfessionalHandler "github.com/agendly/appointment-service/internal/api/handlers/create_professional"
	getAppointmentHandler "github.com/agendly/appointment-service/internal/api/handlers/get_appointment"
	getAvailabilityHandler "github.com/agendly/appointment-service/internal/api/handlers/get_availability"
	getClientAppointmentsHandler "github.com/agendly/appointment-service/internal/api/handlers/get_client_appointments"
	getProfessionalAppointmentsHandler "github.com/agendly/appointment-service/internal/api/handlers/get_professional_appointments"
	getWorkingWindowHandler "github.com/agendly/appointment-service/internal/api/handlers/get_working_window"
	listProfessionalsHandler "github.com/agendly/appointment-service/internal/api/handlers/list_professionals"
	requestVerificationHandler "github.com/agendly/appointment-service/internal/api/handlers/request_verification"
	updateWorkingWindowHandler "github.com/agendly/appointment-service/internal/api/handlers/update_working_window"
	"github.com/agendly/appointment-service/internal/api/middleware"
	"github.com/agendly/appointment-service/internal/config"
	appointmentRepo "github.com/agendly/appointment-service/internal/infra/storage/appointment"
	professionalRepo "github.com/agendly/appointment-service/internal/infra/storage/professional"
	"github.com/agendly/appointment-service/internal/infra/verification"
	appointmentsService "github.com/agendly/appointment-service/internal/service/appointments"
	professionalsService "github.com/agendly/appointment-service/internal/service/professionals"
	bookAppointmentUC "github.com/agendly/appointment-service/internal/usecase/book_appointment"
	getAvailabilityUC "github.com/agendly/appointment-service/internal/usecase/get_availability"
	"github.com/agendly/appointment-service/pkg/dbmetrics"
	"github.com/agendly/appointment-service/pkg/logger"
	"github.com/agendly/appointment-service/pkg/metrics"
	"github.com/agendly/appointment-service/pkg/simpletxmanager"
	"github.com/agendly/appointment-service/pkg/txmanager"
)

func main() {
	// Локальные переменные окружения (секреты БД и Redis)
	_ = godotenv.Load()

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

	log.Info("Starting appointment-service...")
	log.Info("Configuration loaded from config.toml")

	// Референсная таймзона: все вычисления дня недели выполняются в ней
	location, err := cfg.Schedule.Location()
	if err != nil {
		log.Fatal("Failed to load schedule timezone %q: %v", cfg.Schedule.Timezone, err)
	}
	log.Info("Schedule timezone: %s", cfg.Schedule.Timezone)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Подключаемся к Redis (хранилище кодов подтверждения)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to ping redis: %v", err)
	}
	log.Info("Successfully connected to redis (addr=%s)", cfg.Redis.Addr)

	verificationStore := verification.NewStore(redisClient, cfg.Redis.VerificationTTL(), log)

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository  *appointmentRepo.Repository
		professionalRepository *professionalRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		professionalRepository = professionalRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		professionalRepository = professionalRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(
		appointmentRepository,
		professionalRepository,
		log,
	)
	professionalSvc := professionalsService.NewService(
		professionalRepository,
		log,
	)

	// Инициализируем use cases
	bookAppointmentUseCase := bookAppointmentUC.NewUseCase(
		appointmentRepository,
		professionalRepository,
		txMgr,
		location,
		log,
	)

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		professionalRepository,
		appointmentRepository,
		location,
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	requestVerification := requestVerificationHandler.NewHandler(verificationStore, log)
	confirmVerification := confirmVerificationHandler.NewHandler(verificationStore, log)
	createAppointment := createAppointmentHandler.NewHandler(bookAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	getClientAppointments := getClientAppointmentsHandler.NewHandler(appointmentSvc, log)
	getProfessionalAppointments := getProfessionalAppointmentsHandler.NewHandler(appointmentSvc, log)
	createProfessional := createProfessionalHandler.NewHandler(professionalSvc, log)
	listProfessionals := listProfessionalsHandler.NewHandler(professionalSvc, log)
	getWorkingWindow := getWorkingWindowHandler.NewHandler(professionalSvc, log)
	updateWorkingWindow := updateWorkingWindowHandler.NewHandler(professionalSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Сквозной идентификатор запроса
	r.Use(middleware.RequestID)

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
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступные слоты профессионала на дату
	api.HandleFunc("/professionals/{professionalId}/availability",
		getAvailability.Handle).Methods(http.MethodGet)

	// Подтверждение контакта клиента
	api.HandleFunc("/verification/request", requestVerification.Handle).Methods(http.MethodPost)
	api.HandleFunc("/verification/confirm", confirmVerification.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	// Создание записи
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Отмена записи
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// История записей клиента
	protected.HandleFunc("/clients/{clientId}/appointments", getClientAppointments.Handle).Methods(http.MethodGet)

	// --- Кабинет предприятия ---
	// Расписание профессионала
	protected.HandleFunc("/professionals/{professionalId}/appointments",
		getProfessionalAppointments.Handle).Methods(http.MethodGet)

	// Регистрация профессионала
	protected.HandleFunc("/professionals", createProfessional.Handle).Methods(http.MethodPost)

	// Список профессионалов предприятия
	protected.HandleFunc("/enterprises/{enterpriseId}/professionals",
		listProfessionals.Handle).Methods(http.MethodGet)

	// Рабочее окно профессионала
	protected.HandleFunc("/professionals/{professionalId}/working-window",
		getWorkingWindow.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/professionals/{professionalId}/working-window",
		updateWorkingWindow.Handle).Methods(http.MethodPut)

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
