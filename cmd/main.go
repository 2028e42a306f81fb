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
	"github.com/redis/go-redis/v9"

	changePlanHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/change_plan"
	createBusinessHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/create_business"
	createProfessionalHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/create_professional"
	createReservationHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/create_reservation"
	createServiceHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/create_service"
	deactivateProfessionalHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/deactivate_professional"
	deactivateServiceHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/deactivate_service"
	fulfillReservationHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/fulfill_reservation"
	getAvailableSlotsHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/get_available_slots"
	getBusinessHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/get_business"
	getReservationHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/get_reservation"
	getSalesHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/get_sales"
	getScheduleHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/get_schedule"
	getSubscriptionHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/get_subscription"
	listProfessionalsHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/list_professionals"
	listReservationsHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/list_reservations"
	listServicesHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/list_services"
	rescheduleReservationHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/reschedule_reservation"
	unfulfillReservationHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/unfulfill_reservation"
	updateBusinessHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/update_business"
	updateProfessionalHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/update_professional"
	updateScheduleHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/update_schedule"
	updateServiceHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/update_service"
	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
	"github.com/m04kA/SMC-AgendaService/internal/config"
	businessRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/business"
	catalogRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/catalog"
	reservationRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/reservation"
	resourceRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/resource"
	"github.com/m04kA/SMC-AgendaService/internal/integrations/notifications"
	"github.com/m04kA/SMC-AgendaService/internal/integrations/payments"
	businessService "github.com/m04kA/SMC-AgendaService/internal/service/business"
	catalogService "github.com/m04kA/SMC-AgendaService/internal/service/catalog"
	professionalsService "github.com/m04kA/SMC-AgendaService/internal/service/professionals"
	reservationsService "github.com/m04kA/SMC-AgendaService/internal/service/reservations"
	salesService "github.com/m04kA/SMC-AgendaService/internal/service/sales"
	createReservationUC "github.com/m04kA/SMC-AgendaService/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/m04kA/SMC-AgendaService/internal/usecase/get_available_slots"
	rescheduleReservationUC "github.com/m04kA/SMC-AgendaService/internal/usecase/reschedule_reservation"
	updateScheduleUC "github.com/m04kA/SMC-AgendaService/internal/usecase/update_schedule"
	"github.com/m04kA/SMC-AgendaService/pkg/clock"
	"github.com/m04kA/SMC-AgendaService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
	"github.com/m04kA/SMC-AgendaService/pkg/metrics"
	"github.com/m04kA/SMC-AgendaService/pkg/txmanager"
)

// rateLimitTTL время хранения лимитера неактивного клиента
const rateLimitTTL = 10 * time.Minute

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

	log.Info("Starting SMC-AgendaService...")
	log.Info("Configuration loaded from config.toml")

	location, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Invalid booking timezone: %v", err)
	}
	clk := clock.New(location)

	// Инициализируем метрики (если включены). nil-коллектор ничего не делает.
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

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil, "")
	}
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	businessRepository := businessRepo.NewRepository(wrappedDB)
	resourceRepository := resourceRepo.NewRepository(wrappedDB)
	catalogRepository := catalogRepo.NewRepository(wrappedDB)
	reservationRepository := reservationRepo.NewRepository(wrappedDB)

	// Очередь писем в Redis и воркер отправки
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Warn("Redis is not reachable at %s, emails will be retried by the worker: %v", cfg.Redis.Addr, err)
	} else {
		log.Info("Successfully connected to Redis (addr=%s)", cfg.Redis.Addr)
	}
	pingCancel()

	notifier := notifications.NewNotifier(redisClient, cfg.Redis.QueueKey, location, log)

	var sender notifications.Sender
	if cfg.SMTP.Enabled {
		sender = notifications.NewSMTPSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password, cfg.SMTP.From)
		log.Info("SMTP sender enabled (host=%s, port=%d)", cfg.SMTP.Host, cfg.SMTP.Port)
	} else {
		sender = notifications.NewLogSender(log)
		log.Info("SMTP disabled, emails will be written to the log")
	}

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	worker := notifications.NewWorker(redisClient, cfg.Redis.QueueKey, sender, metricsCollector, log)
	go worker.Run(workerCtx)

	// Платёжный шлюз. При выключенных платежах депозит не запрашивается.
	var paymentClient createReservationUC.PaymentClient
	if cfg.Payments.Enabled {
		paymentClient = payments.NewStripeClient(cfg.Payments.SecretKey, payments.Options{
			Currency:   cfg.Payments.Currency,
			SuccessURL: cfg.Payments.SuccessURL,
			CancelURL:  cfg.Payments.CancelURL,
		}, log)
		log.Info("Payments enabled (currency=%s)", cfg.Payments.Currency)
	}

	// Инициализируем сервисы
	businessSvc := businessService.NewService(
		businessRepository,
		cfg,
		txMgr,
		clk,
		cfg.Booking.RenewalPeriodDays,
		cfg.Booking.RenewalBannerDays,
		log,
	)
	professionalsSvc := professionalsService.NewService(
		businessRepository,
		resourceRepository,
		cfg.PlanQuotas(),
		txMgr,
		log,
	)
	catalogSvc := catalogService.NewService(catalogRepository, log)
	reservationsSvc := reservationsService.NewService(
		reservationRepository,
		catalogRepository,
		txMgr,
		metricsCollector,
		clk,
		log,
	)
	salesSvc := salesService.NewService(
		reservationRepository,
		resourceRepository,
		catalogRepository,
		clk,
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		resourceRepository,
		businessRepository,
		reservationRepository,
		metricsCollector,
		clk,
		cfg.Booking.MaxAdvanceDays,
		log,
	)
	createReservationUseCase := createReservationUC.NewUseCase(
		businessRepository,
		resourceRepository,
		catalogRepository,
		reservationRepository,
		paymentClient,
		notifier,
		metricsCollector,
		clk,
		cfg.Booking.MaxAdvanceDays,
		log,
	)
	rescheduleReservationUseCase := rescheduleReservationUC.NewUseCase(
		businessRepository,
		resourceRepository,
		reservationRepository,
		txMgr,
		notifier,
		metricsCollector,
		clk,
		log,
	)
	updateScheduleUseCase := updateScheduleUC.NewUseCase(
		businessRepository,
		reservationRepository,
		metricsCollector,
		clk,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, location, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, location, log)

	createBusiness := createBusinessHandler.NewHandler(businessSvc, log)
	getBusiness := getBusinessHandler.NewHandler(businessSvc, log)
	updateBusiness := updateBusinessHandler.NewHandler(businessSvc, log)
	getSubscription := getSubscriptionHandler.NewHandler(businessSvc, log)
	changePlan := changePlanHandler.NewHandler(businessSvc, log)
	getSchedule := getScheduleHandler.NewHandler(businessSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(updateScheduleUseCase, log)

	listProfessionals := listProfessionalsHandler.NewHandler(professionalsSvc, log)
	createProfessional := createProfessionalHandler.NewHandler(professionalsSvc, log)
	updateProfessional := updateProfessionalHandler.NewHandler(professionalsSvc, log)
	deactivateProfessional := deactivateProfessionalHandler.NewHandler(professionalsSvc, log)

	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	deactivateService := deactivateServiceHandler.NewHandler(catalogSvc, log)

	listReservations := listReservationsHandler.NewHandler(reservationsSvc, location, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	fulfillReservation := fulfillReservationHandler.NewHandler(reservationsSvc, log)
	unfulfillReservation := unfulfillReservationHandler.NewHandler(reservationsSvc, log)
	rescheduleReservation := rescheduleReservationHandler.NewHandler(rescheduleReservationUseCase, location, log)

	getSales := getSalesHandler.NewHandler(salesSvc, location, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (форма бронирования, без аутентификации)
	// ============================================================

	rateLimiter := middleware.NewRateLimiter(cfg.Booking.RateLimitPerMinute, cfg.Booking.RateLimitBurst, rateLimitTTL)
	go rateLimiter.Run(workerCtx)

	// Префикс совпадает с панелью владельца: mux переходит к следующему
	// подроутеру, если метод или путь не подошли
	public := api.PathPrefix("/businesses/{businessId}").Subrouter()
	public.Use(rateLimiter.Middleware, middleware.Session(businessSvc, false, log))

	// Доступные слоты специалиста на дату
	public.HandleFunc("/resources/{resourceId}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание бронирования клиентом
	public.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Регистрация бизнеса (пользователь становится владельцем)
	protected.HandleFunc("/businesses", createBusiness.Handle).Methods(http.MethodPost)

	// ============================================================
	// OWNER ROUTES (панель владельца бизнеса)
	// ============================================================

	owner := api.PathPrefix("/businesses/{businessId}").Subrouter()
	owner.Use(middleware.Auth, middleware.Session(businessSvc, true, log))

	// --- Профиль и подписка ---
	owner.HandleFunc("", getBusiness.Handle).Methods(http.MethodGet)
	owner.HandleFunc("", updateBusiness.Handle).Methods(http.MethodPatch)
	owner.HandleFunc("/subscription", getSubscription.Handle).Methods(http.MethodGet)
	owner.HandleFunc("/plan", changePlan.Handle).Methods(http.MethodPut)

	// --- Расписание ---
	owner.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)
	owner.HandleFunc("/schedule", updateSchedule.Handle).Methods(http.MethodPut)

	// --- Специалисты ---
	owner.HandleFunc("/professionals", listProfessionals.Handle).Methods(http.MethodGet)
	owner.HandleFunc("/professionals", createProfessional.Handle).Methods(http.MethodPost)
	owner.HandleFunc("/professionals/{professionalId}", updateProfessional.Handle).Methods(http.MethodPatch)
	owner.HandleFunc("/professionals/{professionalId}", deactivateProfessional.Handle).Methods(http.MethodDelete)

	// --- Услуги ---
	owner.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	owner.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	owner.HandleFunc("/services/{serviceId}", updateService.Handle).Methods(http.MethodPatch)
	owner.HandleFunc("/services/{serviceId}", deactivateService.Handle).Methods(http.MethodDelete)

	// --- Бронирования ---
	owner.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	owner.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	owner.HandleFunc("/reservations/{reservationId}/fulfill", fulfillReservation.Handle).Methods(http.MethodPost)
	owner.HandleFunc("/reservations/{reservationId}/unfulfill", unfulfillReservation.Handle).Methods(http.MethodPost)
	owner.HandleFunc("/reservations/{reservationId}/reschedule", rescheduleReservation.Handle).Methods(http.MethodPost)

	// --- Отчёт о продажах (json или xlsx) ---
	owner.HandleFunc("/sales", getSales.Handle).Methods(http.MethodGet)

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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Останавливаем воркер уведомлений и очистку лимитера
	stopWorkers()

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	log.Info("Server stopped gracefully")
}
