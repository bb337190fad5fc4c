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

	cancelAppointmentHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/create_appointment"
	createClientHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/create_client"
	deleteClientHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/delete_client"
	getAppointmentsReportHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/get_appointments_report"
	getAvailableSlotsHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/get_available_slots"
	getCurrentProfessionalHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/get_current_professional"
	getSpecialtyHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/get_specialty"
	getWeekHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/get_week"
	listClientsHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/list_clients"
	listProfessionalsHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/list_professionals"
	listSpecialtiesHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/list_specialties"
	navigateWeekHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/navigate_week"
	updateAppointmentHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/update_appointment"
	updateClientHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/update_client"
	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
	"github.com/m04kA/SMC-AgendaService/internal/config"
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/appointment"
	clientRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/client"
	professionalRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/professional"
	reportRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/report"
	"github.com/m04kA/SMC-AgendaService/internal/integrations/events"
	agendaService "github.com/m04kA/SMC-AgendaService/internal/service/agenda"
	clientsService "github.com/m04kA/SMC-AgendaService/internal/service/clients"
	professionalsService "github.com/m04kA/SMC-AgendaService/internal/service/professionals"
	reportsService "github.com/m04kA/SMC-AgendaService/internal/service/reports"
	"github.com/m04kA/SMC-AgendaService/internal/service/sessions"
	"github.com/m04kA/SMC-AgendaService/internal/service/weekcache"
	createAppointmentUC "github.com/m04kA/SMC-AgendaService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/m04kA/SMC-AgendaService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AgendaService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
	"github.com/m04kA/SMC-AgendaService/pkg/metrics"
	"github.com/m04kA/SMC-AgendaService/pkg/txmanager"
)

type eventPublisher interface {
	Publish(ctx context.Context, eventType events.Type, userID string, appointment *domain.Appointment) error
	Close() error
}

func main() {
	configPath := "config.toml"
	if v := os.Getenv("SMC_CONFIG"); v != "" {
		configPath = v
	}

	// Загружаем конфигурацию
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

	log.Info("Starting SMC-AgendaService...")
	log.Info("Configuration loaded from %s", configPath)

	loc, err := cfg.Agenda.Location()
	if err != nil {
		log.Fatal("Invalid agenda timezone: %v", err)
	}

	// Инициализируем метрики (если включены)
	// при выключенных метриках получатели остаются nil-интерфейсами
	var (
		metricsCollector *metrics.Metrics
		dbRecorder       dbmetrics.Recorder
		cacheRecorder    weekcache.Recorder
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		dbRecorder = metricsCollector
		cacheRecorder = metricsCollector
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

	wrappedDB := dbmetrics.WrapWithDefault(db, dbRecorder, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Публикация событий
	var publisher eventPublisher = events.NoopPublisher{}
	if cfg.Events.Enabled {
		publisher = events.NewKafkaPublisher(cfg.Events.BrokerList(), cfg.Events.Topic, log)
		log.Info("Appointment events enabled (brokers=%s, topic=%s)", cfg.Events.Brokers, cfg.Events.Topic)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Error("Failed to close event publisher: %v", err)
		}
	}()

	// Инициализируем репозитории
	appointmentRepository := appointmentRepo.NewGuardedRepository(
		appointmentRepo.NewRepository(wrappedDB),
		txMgr,
		log,
	)
	clientRepository := clientRepo.NewRepository(wrappedDB)
	professionalRepository := professionalRepo.NewRepository(wrappedDB)
	reportRepository := reportRepo.NewRepository(wrappedDB)

	// Сессии пользователей и их недельные кэши
	registry := sessions.NewRegistry(
		professionalRepository,
		appointmentRepository,
		&weekcache.RealTimeProvider{},
		loc,
		cacheRecorder,
		time.Duration(cfg.Agenda.SessionIdleMinutes)*time.Minute,
		log,
	)
	stopSessionsCh := make(chan struct{})
	go registry.RunEviction(time.Minute, stopSessionsCh)

	// Инициализируем сервисы
	agendaSvc := agendaService.NewService(registry, publisher, &weekcache.RealTimeProvider{}, log)
	clientsSvc := clientsService.NewService(clientRepository, log)
	professionalsSvc := professionalsService.NewService(professionalRepository, registry, log)
	reportsSvc := reportsService.NewService(reportRepository, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(registry, publisher, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(registry, getAvailableSlotsUC.Settings{
		DayStartHour:           cfg.Agenda.DayStartHour,
		DayEndHour:             cfg.Agenda.DayEndHour,
		DefaultDurationMinutes: cfg.Agenda.SlotDurationMinutes,
	}, log)

	// Инициализируем handlers
	getWeek := getWeekHandler.NewHandler(agendaSvc, log)
	navigateWeek := navigateWeekHandler.NewHandler(agendaSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	updateAppointment := updateAppointmentHandler.NewHandler(agendaSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(agendaSvc, log)
	listClients := listClientsHandler.NewHandler(clientsSvc, log)
	createClient := createClientHandler.NewHandler(clientsSvc, log)
	updateClient := updateClientHandler.NewHandler(clientsSvc, log)
	deleteClient := deleteClientHandler.NewHandler(clientsSvc, log)
	listSpecialties := listSpecialtiesHandler.NewHandler(professionalsSvc, log)
	getSpecialty := getSpecialtyHandler.NewHandler(professionalsSvc, log)
	listProfessionals := listProfessionalsHandler.NewHandler(professionalsSvc, log)
	getCurrentProfessional := getCurrentProfessionalHandler.NewHandler(professionalsSvc, log)
	getAppointmentsReport := getAppointmentsReportHandler.NewHandler(reportsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth)

	// --- Агенда ---
	api.HandleFunc("/agenda/week", getWeek.Handle).Methods(http.MethodGet)
	api.HandleFunc("/agenda/week/navigate", navigateWeek.Handle).Methods(http.MethodPost)
	api.HandleFunc("/agenda/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/agenda/appointments", createAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/agenda/appointments/{appointmentId}", updateAppointment.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/agenda/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// --- Клиенты ---
	api.HandleFunc("/clients", listClients.Handle).Methods(http.MethodGet)
	api.HandleFunc("/clients", createClient.Handle).Methods(http.MethodPost)
	api.HandleFunc("/clients/{clientId}", updateClient.Handle).Methods(http.MethodPut)
	api.HandleFunc("/clients/{clientId}", deleteClient.Handle).Methods(http.MethodDelete)

	// --- Специальности и профессионалы ---
	api.HandleFunc("/specialties", listSpecialties.Handle).Methods(http.MethodGet)
	api.HandleFunc("/specialties/{specialtyId}", getSpecialty.Handle).Methods(http.MethodGet)
	api.HandleFunc("/professionals", listProfessionals.Handle).Methods(http.MethodGet)
	api.HandleFunc("/professionals/me", getCurrentProfessional.Handle).Methods(http.MethodGet)

	// --- Отчёты ---
	api.HandleFunc("/reports/appointments", getAppointmentsReport.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      middleware.RequestID(middleware.CORS(cfg.Server.AllowedOrigins)(r)),
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

	// Останавливаем сбор метрик connection pool и вытеснение сессий
	close(stopMetricsCh)
	close(stopSessionsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully (active sessions: %d)", registry.Len())
}
