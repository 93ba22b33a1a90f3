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

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	activitiesHandler "github.com/m04kA/TourOps-BookingService/internal/api/handlers/activities"
	addAttendeesHandler "github.com/m04kA/TourOps-BookingService/internal/api/handlers/add_attendees"
	autoAssignHandler "github.com/m04kA/TourOps-BookingService/internal/api/handlers/auto_assign"
	bulkCreateSchedulesHandler "github.com/m04kA/TourOps-BookingService/internal/api/handlers/bulk_create_schedules"
	cancelBookingHandler "github.com/m04kA/TourOps-BookingService/internal/api/handlers/cancel_booking"
	commissionReportHandler "github.com/m04kA/TourOps-BookingService/internal/api/handlers/commission_report"
	companiesHandler "github.com/m04kA/TourOps-BookingService/internal/api/handlers/companies"
	createBookingHandler "github.com/m04kA/TourOps-BookingService/internal/api/handlers/create_booking"
	createScheduleHandler "github.com/m04kA/TourOps-BookingService/internal/api/handlers/create_schedule"
	getAvailabilityHandler "github.com/m04kA/TourOps-BookingService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/TourOps-BookingService/internal/api/handlers/get_booking"
	guidesHandler "github.com/m04kA/TourOps-BookingService/internal/api/handlers/guides"
	listAvailabilityHandler "github.com/m04kA/TourOps-BookingService/internal/api/handlers/list_availability"
	listBookingsHandler "github.com/m04kA/TourOps-BookingService/internal/api/handlers/list_bookings"
	quoteHandler "github.com/m04kA/TourOps-BookingService/internal/api/handlers/quote"
	replaceAssignmentsHandler "github.com/m04kA/TourOps-BookingService/internal/api/handlers/replace_assignments"
	schedulesHandler "github.com/m04kA/TourOps-BookingService/internal/api/handlers/schedules"
	settingsHandler "github.com/m04kA/TourOps-BookingService/internal/api/handlers/settings"
	updateBookingHandler "github.com/m04kA/TourOps-BookingService/internal/api/handlers/update_booking"
	"github.com/m04kA/TourOps-BookingService/internal/api/middleware"
	"github.com/m04kA/TourOps-BookingService/internal/config"
	activityRepo "github.com/m04kA/TourOps-BookingService/internal/infra/storage/activity"
	bookingRepo "github.com/m04kA/TourOps-BookingService/internal/infra/storage/booking"
	companyRepo "github.com/m04kA/TourOps-BookingService/internal/infra/storage/company"
	guideRepo "github.com/m04kA/TourOps-BookingService/internal/infra/storage/guide"
	scheduleRepo "github.com/m04kA/TourOps-BookingService/internal/infra/storage/schedule"
	settingRepo "github.com/m04kA/TourOps-BookingService/internal/infra/storage/setting"
	guideSelectorClient "github.com/m04kA/TourOps-BookingService/internal/integrations/guideselector"
	activitiesService "github.com/m04kA/TourOps-BookingService/internal/service/activities"
	bookingsService "github.com/m04kA/TourOps-BookingService/internal/service/bookings"
	companiesService "github.com/m04kA/TourOps-BookingService/internal/service/companies"
	guidesService "github.com/m04kA/TourOps-BookingService/internal/service/guides"
	"github.com/m04kA/TourOps-BookingService/internal/service/guideselection"
	schedulesService "github.com/m04kA/TourOps-BookingService/internal/service/schedules"
	settingsService "github.com/m04kA/TourOps-BookingService/internal/service/settings"
	addAttendeesUC "github.com/m04kA/TourOps-BookingService/internal/usecase/add_attendees"
	assignGuidesUC "github.com/m04kA/TourOps-BookingService/internal/usecase/assign_guides"
	bulkCreateSchedulesUC "github.com/m04kA/TourOps-BookingService/internal/usecase/bulk_create_schedules"
	createBookingUC "github.com/m04kA/TourOps-BookingService/internal/usecase/create_booking"
	createScheduleUC "github.com/m04kA/TourOps-BookingService/internal/usecase/create_schedule"
	getAvailabilityUC "github.com/m04kA/TourOps-BookingService/internal/usecase/get_availability"
	updateBookingUC "github.com/m04kA/TourOps-BookingService/internal/usecase/update_booking"
	"github.com/m04kA/TourOps-BookingService/pkg/dbmetrics"
	"github.com/m04kA/TourOps-BookingService/pkg/logger"
	"github.com/m04kA/TourOps-BookingService/pkg/metrics"
	"github.com/m04kA/TourOps-BookingService/pkg/txmanager"
)

const defaultConfigPath = "config.toml"

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
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

	log.Info("Starting TourOps-BookingService...")
	log.Info("Configuration loaded from %s", configPath)

	location, err := cfg.Schedules.Location()
	if err != nil {
		log.Fatal("Failed to load schedules timezone %q: %v", cfg.Schedules.Timezone, err)
	}

	// Инициализируем метрики (если включены)
	// При выключенных метриках передается nil, все получатели это допускают
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

	// Инициализируем репозитории
	activityRepository := activityRepo.NewRepository(wrappedDB)
	scheduleRepository := scheduleRepo.NewRepository(wrappedDB)
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	companyRepository := companyRepo.NewRepository(wrappedDB)
	guideRepository := guideRepo.NewRepository(wrappedDB)
	settingRepository := settingRepo.NewRepository(wrappedDB)

	// Выбираем стратегию подбора гидов
	var selector assignGuidesUC.GuideSelector
	switch cfg.GuideSelector.Mode {
	case config.GuideSelectorRemote:
		selector = guideSelectorClient.NewClient(
			cfg.GuideSelector.URL,
			time.Duration(cfg.GuideSelector.Timeout)*time.Second,
			guideSelectorClient.Options{
				MaxFailures: cfg.GuideSelector.BreakerMaxFailures,
				OpenTimeout: time.Duration(cfg.GuideSelector.BreakerOpenTimeout) * time.Second,
			},
			log,
		)
		log.Info("Guide selector: remote (url=%s, timeout=%ds)", cfg.GuideSelector.URL, cfg.GuideSelector.Timeout)
	default:
		selector = guideselection.NewSelector(scheduleRepository, guideRepository, log)
		log.Info("Guide selector: local")
	}

	// Инициализируем сервисы
	activitySvc := activitiesService.NewService(activityRepository, scheduleRepository, bookingRepository, txMgr, log)
	scheduleSvc := schedulesService.NewService(scheduleRepository, activityRepository, bookingRepository, guideRepository, txMgr, log)
	bookingSvc := bookingsService.NewService(bookingRepository, scheduleRepository, txMgr, metricsCollector, location, log)
	companySvc := companiesService.NewService(companyRepository, log)
	guideSvc := guidesService.NewService(guideRepository, txMgr, location, log)
	settingSvc := settingsService.NewService(settingRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		activityRepository,
		companyRepository,
		txMgr,
		metricsCollector,
		log,
	)
	updateBookingUseCase := updateBookingUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		activityRepository,
		companyRepository,
		txMgr,
		metricsCollector,
		log,
	)
	assignGuidesUseCase := assignGuidesUC.NewUseCase(
		scheduleRepository,
		guideRepository,
		selector,
		txMgr,
		log,
	)
	createScheduleUseCase := createScheduleUC.NewUseCase(
		activityRepository,
		scheduleRepository,
		assignGuidesUseCase,
		txMgr,
		metricsCollector,
		log,
	)
	bulkCreateSchedulesUseCase := bulkCreateSchedulesUC.NewUseCase(
		activityRepository,
		scheduleRepository,
		settingRepository,
		txMgr,
		metricsCollector,
		location,
		log,
	)
	addAttendeesUseCase := addAttendeesUC.NewUseCase(scheduleRepository, txMgr, metricsCollector, log)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		scheduleRepository,
		activityRepository,
		txMgr,
		location,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	commissionReport := commissionReportHandler.NewHandler(bookingSvc, log)
	createSchedule := createScheduleHandler.NewHandler(createScheduleUseCase, log)
	bulkCreateSchedules := bulkCreateSchedulesHandler.NewHandler(bulkCreateSchedulesUseCase, log)
	addAttendees := addAttendeesHandler.NewHandler(addAttendeesUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	listAvailability := listAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	quote := quoteHandler.NewHandler(getAvailabilityUseCase, log)
	replaceAssignments := replaceAssignmentsHandler.NewHandler(assignGuidesUseCase, log)
	autoAssign := autoAssignHandler.NewHandler(assignGuidesUseCase, log)
	schedules := schedulesHandler.NewHandler(scheduleSvc, log)
	activities := activitiesHandler.NewHandler(activitySvc, log)
	companies := companiesHandler.NewHandler(companySvc, log)
	guides := guidesHandler.NewHandler(guideSvc, log)
	settings := settingsHandler.NewHandler(settingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(log))

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

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (каталог и доступность, без аутентификации)
	// ============================================================

	// --- Доступность ---
	api.HandleFunc("/availability", listAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/activities/{activityId}/availability", listAvailability.HandleByActivity).Methods(http.MethodGet)
	api.HandleFunc("/schedules/{scheduleId}/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedules/{scheduleId}/quote", quote.Handle).Methods(http.MethodGet)

	// --- Каталог ---
	api.HandleFunc("/activity-types", activities.ListTypes).Methods(http.MethodGet)
	api.HandleFunc("/activity-types/{typeId}", activities.GetType).Methods(http.MethodGet)
	api.HandleFunc("/activities", activities.List).Methods(http.MethodGet)
	api.HandleFunc("/activities/{activityId}", activities.Get).Methods(http.MethodGet)
	api.HandleFunc("/activities/{activityId}/schedules", schedules.ListByActivity).Methods(http.MethodGet)
	api.HandleFunc("/schedules/{scheduleId}", schedules.Get).Methods(http.MethodGet)
	api.HandleFunc("/languages", guides.ListLanguages).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/reports/commissions", commissionReport.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/companies/{companyId}/bookings", listBookings.HandleByCompany).Methods(http.MethodGet)

	// --- Проведения ---
	protected.HandleFunc("/schedules", createSchedule.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/activities/{activityId}/schedules/bulk", bulkCreateSchedules.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/schedules/{scheduleId}", schedules.Update).Methods(http.MethodPut)
	protected.HandleFunc("/schedules/{scheduleId}/toggle-status", schedules.ToggleStatus).Methods(http.MethodPatch)
	protected.HandleFunc("/schedules/{scheduleId}", schedules.Delete).Methods(http.MethodDelete)
	protected.HandleFunc("/schedules/{scheduleId}/attendees", addAttendees.Handle).Methods(http.MethodPost)

	// --- Гиды на проведении ---
	protected.HandleFunc("/schedules/{scheduleId}/guides", replaceAssignments.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/schedules/{scheduleId}/guides/auto", autoAssign.Handle).Methods(http.MethodPost)

	// --- Каталог активностей ---
	protected.HandleFunc("/activity-types", activities.CreateType).Methods(http.MethodPost)
	protected.HandleFunc("/activity-types/{typeId}", activities.UpdateType).Methods(http.MethodPut)
	protected.HandleFunc("/activities", activities.Create).Methods(http.MethodPost)
	protected.HandleFunc("/activities/{activityId}", activities.Update).Methods(http.MethodPut)
	protected.HandleFunc("/activities/{activityId}/toggle-status", activities.ToggleStatus).Methods(http.MethodPatch)
	protected.HandleFunc("/activities/{activityId}", activities.Delete).Methods(http.MethodDelete)

	// --- Компании ---
	protected.HandleFunc("/companies", companies.List).Methods(http.MethodGet)
	protected.HandleFunc("/companies", companies.Create).Methods(http.MethodPost)
	protected.HandleFunc("/companies/{companyId}", companies.Get).Methods(http.MethodGet)
	protected.HandleFunc("/companies/{companyId}", companies.Update).Methods(http.MethodPut)
	protected.HandleFunc("/companies/{companyId}/toggle-status", companies.ToggleStatus).Methods(http.MethodPatch)
	protected.HandleFunc("/companies/{companyId}", companies.Delete).Methods(http.MethodDelete)

	// --- Гиды ---
	protected.HandleFunc("/guides", guides.List).Methods(http.MethodGet)
	protected.HandleFunc("/guides", guides.Create).Methods(http.MethodPost)
	protected.HandleFunc("/guides/availability/{date}", guides.Availability).Methods(http.MethodGet)
	protected.HandleFunc("/guides/available-leaders", guides.AvailableLeaders).Methods(http.MethodGet)
	protected.HandleFunc("/guides/{guideId}", guides.Get).Methods(http.MethodGet)
	protected.HandleFunc("/guides/{guideId}", guides.Update).Methods(http.MethodPut)
	protected.HandleFunc("/guides/{guideId}", guides.Delete).Methods(http.MethodDelete)

	// --- Настройки ---
	protected.HandleFunc("/settings", settings.List).Methods(http.MethodGet)
	protected.HandleFunc("/settings/{key}", settings.Get).Methods(http.MethodGet)
	protected.HandleFunc("/settings/{key}", settings.Update).Methods(http.MethodPut)

	// CORS для браузерной консоли и восстановление после паник
	handler := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins(cfg.CORS.AllowedOrigins),
		gorillaHandlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", middleware.UserIDHeader, middleware.RequestIDHeader}),
		gorillaHandlers.ExposedHeaders([]string{middleware.RequestIDHeader}),
	)(gorillaHandlers.RecoveryHandler(gorillaHandlers.PrintRecoveryStack(true))(r))

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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
