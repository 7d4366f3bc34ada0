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

	buildReportHandler "github.com/kesamokki/booking-service/internal/api/handlers/build_report"
	cancelInvoiceHandler "github.com/kesamokki/booking-service/internal/api/handlers/cancel_invoice"
	cancelReservationHandler "github.com/kesamokki/booking-service/internal/api/handlers/cancel_reservation"
	checkAvailabilityHandler "github.com/kesamokki/booking-service/internal/api/handlers/check_availability"
	completeFinishedHandler "github.com/kesamokki/booking-service/internal/api/handlers/complete_finished"
	confirmReservationHandler "github.com/kesamokki/booking-service/internal/api/handlers/confirm_reservation"
	createCottageHandler "github.com/kesamokki/booking-service/internal/api/handlers/create_cottage"
	createReservationHandler "github.com/kesamokki/booking-service/internal/api/handlers/create_reservation"
	getCottageHandler "github.com/kesamokki/booking-service/internal/api/handlers/get_cottage"
	getInvoiceHandler "github.com/kesamokki/booking-service/internal/api/handlers/get_invoice"
	getReservationHandler "github.com/kesamokki/booking-service/internal/api/handlers/get_reservation"
	issueInvoiceHandler "github.com/kesamokki/booking-service/internal/api/handlers/issue_invoice"
	listCottagesHandler "github.com/kesamokki/booking-service/internal/api/handlers/list_cottages"
	listInvoicesHandler "github.com/kesamokki/booking-service/internal/api/handlers/list_invoices"
	listReservationsHandler "github.com/kesamokki/booking-service/internal/api/handlers/list_reservations"
	payInvoiceHandler "github.com/kesamokki/booking-service/internal/api/handlers/pay_invoice"
	printInvoiceHandler "github.com/kesamokki/booking-service/internal/api/handlers/print_invoice"
	rescheduleReservationHandler "github.com/kesamokki/booking-service/internal/api/handlers/reschedule_reservation"
	updateCottageHandler "github.com/kesamokki/booking-service/internal/api/handlers/update_cottage"
	"github.com/kesamokki/booking-service/internal/api/middleware"
	"github.com/kesamokki/booking-service/internal/config"
	cottageRepo "github.com/kesamokki/booking-service/internal/infra/storage/cottage"
	invoiceRepo "github.com/kesamokki/booking-service/internal/infra/storage/invoice"
	"github.com/kesamokki/booking-service/internal/infra/storage/migrations"
	reservationRepo "github.com/kesamokki/booking-service/internal/infra/storage/reservation"
	customerServiceClient "github.com/kesamokki/booking-service/internal/integrations/customerservice"
	cottagesService "github.com/kesamokki/booking-service/internal/service/cottages"
	invoicesService "github.com/kesamokki/booking-service/internal/service/invoices"
	reservationsService "github.com/kesamokki/booking-service/internal/service/reservations"
	buildReportUC "github.com/kesamokki/booking-service/internal/usecase/build_report"
	checkAvailabilityUC "github.com/kesamokki/booking-service/internal/usecase/check_availability"
	createReservationUC "github.com/kesamokki/booking-service/internal/usecase/create_reservation"
	issueInvoiceUC "github.com/kesamokki/booking-service/internal/usecase/issue_invoice"
	rescheduleReservationUC "github.com/kesamokki/booking-service/internal/usecase/reschedule_reservation"
	"github.com/kesamokki/booking-service/pkg/clock"
	"github.com/kesamokki/booking-service/pkg/dbmetrics"
	"github.com/kesamokki/booking-service/pkg/logger"
	"github.com/kesamokki/booking-service/pkg/metrics"
	"github.com/kesamokki/booking-service/pkg/txmanager"
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

	log.Info("Starting cottage booking service...")

	loc, err := cfg.App.Location()
	if err != nil {
		log.Fatal("Unknown timezone %q: %v", cfg.App.Timezone, err)
	}
	timeProvider := clock.New(loc)

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if cfg.Database.AutoMigrate {
		if err := migrations.Up(context.Background(), db, log); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
	}

	// Метрики и обёртка БД
	var (
		metricsCollector *metrics.Metrics
		wrappedDB        *dbmetrics.DB
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	} else {
		wrappedDB = dbmetrics.Plain(db)
	}
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Клиент сервиса клиентов
	customerClient := customerServiceClient.NewClient(
		cfg.CustomerService.URL,
		time.Duration(cfg.CustomerService.Timeout)*time.Second,
		log,
	)
	log.Info("Customer service client initialized (url=%s, timeout=%ds)",
		cfg.CustomerService.URL, cfg.CustomerService.Timeout)

	// Репозитории
	cottageRepository := cottageRepo.NewRepository(wrappedDB)
	reservationRepository := reservationRepo.NewRepository(wrappedDB)
	invoiceRepository := invoiceRepo.NewRepository(wrappedDB)

	// Сервисы
	cottageSvc := cottagesService.NewService(cottageRepository, txMgr, log)
	reservationSvc := reservationsService.NewService(reservationRepository, invoiceRepository, txMgr, timeProvider, log)
	invoiceSvc := invoicesService.NewService(
		invoiceRepository,
		reservationRepository,
		cottageRepository,
		txMgr,
		timeProvider,
		log,
	)

	// Use cases
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(cottageRepository, reservationRepository, log)
	createReservationUseCase := createReservationUC.NewUseCase(
		cottageRepository,
		reservationRepository,
		customerClient,
		txMgr,
		timeProvider,
		log,
	)
	rescheduleReservationUseCase := rescheduleReservationUC.NewUseCase(
		cottageRepository,
		reservationRepository,
		invoiceRepository,
		txMgr,
		timeProvider,
		log,
	)
	issueInvoiceUseCase := issueInvoiceUC.NewUseCase(
		reservationRepository,
		invoiceRepository,
		txMgr,
		timeProvider,
		cfg.Invoices.DueDays,
		log,
	)
	buildReportUseCase := buildReportUC.NewUseCase(
		invoiceRepository,
		reservationRepository,
		cottageRepository,
		txMgr,
		timeProvider,
		log,
	)

	// Handlers
	listCottages := listCottagesHandler.NewHandler(cottageSvc, log)
	getCottage := getCottageHandler.NewHandler(cottageSvc, log)
	createCottage := createCottageHandler.NewHandler(cottageSvc, log)
	updateCottage := updateCottageHandler.NewHandler(cottageSvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)

	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	listReservations := listReservationsHandler.NewHandler(reservationSvc, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	rescheduleReservation := rescheduleReservationHandler.NewHandler(rescheduleReservationUseCase, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	confirmReservation := confirmReservationHandler.NewHandler(reservationSvc, log)
	completeFinished := completeFinishedHandler.NewHandler(reservationSvc, log)

	issueInvoice := issueInvoiceHandler.NewHandler(issueInvoiceUseCase, log)
	listInvoices := listInvoicesHandler.NewHandler(invoiceSvc, log)
	getInvoice := getInvoiceHandler.NewHandler(invoiceSvc, log)
	printInvoice := printInvoiceHandler.NewHandler(invoiceSvc, log)
	payInvoice := payInvoiceHandler.NewHandler(invoiceSvc, log)
	cancelInvoice := cancelInvoiceHandler.NewHandler(invoiceSvc, log)

	buildReport := buildReportHandler.NewHandler(buildReportUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/cottages", listCottages.Handle).Methods(http.MethodGet)
	api.HandleFunc("/cottages/{slug}", getCottage.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Брони ---
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{id:[0-9]+}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{id:[0-9]+}", rescheduleReservation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reservations/{id:[0-9]+}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// --- Счета ---
	protected.HandleFunc("/invoices", listInvoices.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/invoices/{id:[0-9]+}", getInvoice.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/invoices/{id:[0-9]+}/print", printInvoice.Handle).Methods(http.MethodGet)

	// ============================================================
	// STAFF ROUTES (X-User-Role: staff)
	// ============================================================

	staff := api.PathPrefix("").Subrouter()
	staff.Use(middleware.Auth, middleware.StaffOnly)

	staff.HandleFunc("/cottages", createCottage.Handle).Methods(http.MethodPost)
	staff.HandleFunc("/cottages/{id:[0-9]+}", updateCottage.Handle).Methods(http.MethodPut)

	staff.HandleFunc("/reservations/{id:[0-9]+}/confirm", confirmReservation.Handle).Methods(http.MethodPatch)
	staff.HandleFunc("/reservations/complete-finished", completeFinished.Handle).Methods(http.MethodPost)
	staff.HandleFunc("/reservations/{id:[0-9]+}/invoice", issueInvoice.Handle).Methods(http.MethodPost)

	staff.HandleFunc("/invoices/{id:[0-9]+}/pay", payInvoice.Handle).Methods(http.MethodPatch)
	staff.HandleFunc("/invoices/{id:[0-9]+}/cancel", cancelInvoice.Handle).Methods(http.MethodPatch)

	staff.HandleFunc("/reports", buildReport.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

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
