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

	accountsHandler "github.com/m04kA/HMS-ReservationService/internal/api/handlers/accounts"
	billingHandler "github.com/m04kA/HMS-ReservationService/internal/api/handlers/billing"
	financeHandler "github.com/m04kA/HMS-ReservationService/internal/api/handlers/finance"
	guestsHandler "github.com/m04kA/HMS-ReservationService/internal/api/handlers/guests"
	parametersHandler "github.com/m04kA/HMS-ReservationService/internal/api/handlers/parameters"
	reportsHandler "github.com/m04kA/HMS-ReservationService/internal/api/handlers/reports"
	reservationsHandler "github.com/m04kA/HMS-ReservationService/internal/api/handlers/reservations"
	roomsHandler "github.com/m04kA/HMS-ReservationService/internal/api/handlers/rooms"
	usersHandler "github.com/m04kA/HMS-ReservationService/internal/api/handlers/users"
	"github.com/m04kA/HMS-ReservationService/internal/api/middleware"
	"github.com/m04kA/HMS-ReservationService/internal/app"
	"github.com/m04kA/HMS-ReservationService/internal/config"
	accountRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/account"
	financeRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/finance"
	guestRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/guest"
	invoiceRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/invoice"
	parameterRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/parameter"
	paymentRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/payment"
	reportRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/report"
	reservationRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/reservation"
	roomRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/room"
	userRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/user"
	accountsService "github.com/m04kA/HMS-ReservationService/internal/service/accounts"
	billingService "github.com/m04kA/HMS-ReservationService/internal/service/billing"
	financeService "github.com/m04kA/HMS-ReservationService/internal/service/finance"
	guestsService "github.com/m04kA/HMS-ReservationService/internal/service/guests"
	parametersService "github.com/m04kA/HMS-ReservationService/internal/service/parameters"
	reportsService "github.com/m04kA/HMS-ReservationService/internal/service/reports"
	reservationsService "github.com/m04kA/HMS-ReservationService/internal/service/reservations"
	roomsService "github.com/m04kA/HMS-ReservationService/internal/service/rooms"
	usersService "github.com/m04kA/HMS-ReservationService/internal/service/users"
	cancelReservationUC "github.com/m04kA/HMS-ReservationService/internal/usecase/cancel_reservation"
	createReservationUC "github.com/m04kA/HMS-ReservationService/internal/usecase/create_reservation"
	"github.com/m04kA/HMS-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/HMS-ReservationService/pkg/logger"
	"github.com/m04kA/HMS-ReservationService/pkg/metrics"
	"github.com/m04kA/HMS-ReservationService/pkg/simpletxmanager"
	"github.com/m04kA/HMS-ReservationService/pkg/txmanager"
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

	log.Info("Starting HMS-ReservationService...")
	log.Info("Configuration loaded from config.toml")

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

	// Применяем миграции (если включено)
	if cfg.Migrations.AutoApply {
		migrator, err := app.NewMigrator(db, cfg.Migrations.Dir)
		if err != nil {
			log.Fatal("Failed to init migrator: %v", err)
		}
		if err := migrator.Run(context.Background()); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		version, err := migrator.Version(context.Background())
		if err != nil {
			log.Fatal("Failed to read migration version: %v", err)
		}
		log.Info("Migrations applied, schema version=%d", version)
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		roomRepository        *roomRepo.Repository
		reservationRepository *reservationRepo.Repository
		guestRepository       *guestRepo.Repository
		invoiceRepository     *invoiceRepo.Repository
		paymentRepository     *paymentRepo.Repository
		financeRepository     *financeRepo.Repository
		accountRepository     *accountRepo.Repository
		parameterRepository   *parameterRepo.Repository
		userRepository        *userRepo.Repository
		reportRepository      *reportRepo.Repository
	)

	// Интерфейс transaction manager, общий для обеих реализаций
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		roomRepository = roomRepo.NewRepository(wrappedDB)
		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		guestRepository = guestRepo.NewRepository(wrappedDB)
		invoiceRepository = invoiceRepo.NewRepository(wrappedDB)
		paymentRepository = paymentRepo.NewRepository(wrappedDB)
		financeRepository = financeRepo.NewRepository(wrappedDB)
		accountRepository = accountRepo.NewRepository(wrappedDB)
		parameterRepository = parameterRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		reportRepository = reportRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		roomRepository = roomRepo.NewRepository(db)
		reservationRepository = reservationRepo.NewRepository(db)
		guestRepository = guestRepo.NewRepository(db)
		invoiceRepository = invoiceRepo.NewRepository(db)
		paymentRepository = paymentRepo.NewRepository(db)
		financeRepository = financeRepo.NewRepository(db)
		accountRepository = accountRepo.NewRepository(db)
		parameterRepository = parameterRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		reportRepository = reportRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	roomSvc := roomsService.NewService(roomRepository, log)
	reservationSvc := reservationsService.NewService(reservationRepository, log)
	guestSvc := guestsService.NewService(guestRepository, log)
	billingSvc := billingService.NewService(invoiceRepository, paymentRepository, reservationRepository, log)
	financeSvc := financeService.NewService(financeRepository, reservationRepository, log)
	accountSvc := accountsService.NewService(accountRepository, log)
	parameterSvc := parametersService.NewService(parameterRepository, log)
	userSvc := usersService.NewService(userRepository, log)
	reportSvc := reportsService.NewService(reportRepository, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		roomRepository,
		txMgr,
		log,
	)
	cancelReservationUseCase := cancelReservationUC.NewUseCase(
		reservationRepository,
		roomRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	reservations := reservationsHandler.NewHandler(createReservationUseCase, cancelReservationUseCase, reservationSvc, log)
	rooms := roomsHandler.NewHandler(roomSvc, log)
	guests := guestsHandler.NewHandler(guestSvc, log)
	billing := billingHandler.NewHandler(billingSvc, log)
	finance := financeHandler.NewHandler(financeSvc, log)
	accounts := accountsHandler.NewHandler(accountSvc, log)
	parameters := parametersHandler.NewHandler(parameterSvc, log)
	users := usersHandler.NewHandler(userSvc, log)
	reports := reportsHandler.NewHandler(reportSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Комнаты ---
	api.HandleFunc("/rooms", rooms.Create).Methods(http.MethodPost)
	api.HandleFunc("/rooms", rooms.List).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}", rooms.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}/state", rooms.UpdateState).Methods(http.MethodPatch)
	api.HandleFunc("/rooms/{roomId}/reservations", reservations.ListByRoom).Methods(http.MethodGet)

	// --- Резервации ---
	api.HandleFunc("/reservations", reservations.Create).Methods(http.MethodPost)
	api.HandleFunc("/reservations", reservations.List).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{reservationId}", reservations.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{reservationId}/cancel", reservations.Cancel).Methods(http.MethodPatch)

	// --- Гости ---
	api.HandleFunc("/guests", guests.Create).Methods(http.MethodPost)
	api.HandleFunc("/guests", guests.List).Methods(http.MethodGet)
	api.HandleFunc("/guests/{guestId}", guests.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/guests/{guestId}", guests.Update).Methods(http.MethodPut)
	api.HandleFunc("/guests/{guestId}", guests.Delete).Methods(http.MethodDelete)

	// --- Счета и платежи ---
	api.HandleFunc("/invoices", billing.CreateInvoice).Methods(http.MethodPost)
	api.HandleFunc("/invoices", billing.ListInvoices).Methods(http.MethodGet)
	api.HandleFunc("/invoices/{invoiceId}", billing.GetInvoice).Methods(http.MethodGet)
	api.HandleFunc("/payments", billing.CreatePayment).Methods(http.MethodPost)
	api.HandleFunc("/payments", billing.ListPayments).Methods(http.MethodGet)

	// --- Доходы и расходы ---
	api.HandleFunc("/incomes", finance.CreateIncome).Methods(http.MethodPost)
	api.HandleFunc("/incomes", finance.ListIncomes).Methods(http.MethodGet)
	api.HandleFunc("/expenses", finance.CreateExpense).Methods(http.MethodPost)
	api.HandleFunc("/expenses", finance.ListExpenses).Methods(http.MethodGet)

	// --- План счетов ---
	api.HandleFunc("/accounts", accounts.Create).Methods(http.MethodPost)
	api.HandleFunc("/accounts", accounts.List).Methods(http.MethodGet)
	api.HandleFunc("/accounts/search", accounts.Search).Methods(http.MethodGet)
	api.HandleFunc("/accounts/by-code/{code}", accounts.GetByCode).Methods(http.MethodGet)
	api.HandleFunc("/accounts/{accountId}", accounts.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/accounts/{accountId}", accounts.Update).Methods(http.MethodPut)
	api.HandleFunc("/accounts/{accountId}", accounts.Delete).Methods(http.MethodDelete)

	// --- Параметры ---
	api.HandleFunc("/parameters", parameters.Create).Methods(http.MethodPost)
	api.HandleFunc("/parameters", parameters.List).Methods(http.MethodGet)
	api.HandleFunc("/parameters/by-key/{key}", parameters.GetByKey).Methods(http.MethodGet)
	api.HandleFunc("/parameters/{parameterId}", parameters.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/parameters/{parameterId}", parameters.Update).Methods(http.MethodPatch)
	api.HandleFunc("/parameters/{parameterId}", parameters.Delete).Methods(http.MethodDelete)

	// --- Пользователи ---
	api.HandleFunc("/users", users.Create).Methods(http.MethodPost)
	api.HandleFunc("/users", users.List).Methods(http.MethodGet)
	api.HandleFunc("/users/{userId}", users.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/users/{userId}", users.Update).Methods(http.MethodPut)
	api.HandleFunc("/users/{userId}", users.Delete).Methods(http.MethodDelete)

	// --- Отчеты ---
	api.HandleFunc("/reports/daily-ledger", reports.DailyLedger).Methods(http.MethodGet)
	api.HandleFunc("/reports/guest-registry", reports.GuestRegistry).Methods(http.MethodGet)
	api.HandleFunc("/reports/occupancy", reports.Occupancy).Methods(http.MethodGet)
	api.HandleFunc("/reports/financial-summary", reports.FinancialSummary).Methods(http.MethodGet)

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
