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
	"github.com/rs/cors"

	createBookingHandler "github.com/PraveenKumar22C/mentor-connect/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/PraveenKumar22C/mentor-connect/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/PraveenKumar22C/mentor-connect/internal/api/handlers/get_booking"
	getBookingsHandler "github.com/PraveenKumar22C/mentor-connect/internal/api/handlers/get_bookings"
	getFilterOptionsHandler "github.com/PraveenKumar22C/mentor-connect/internal/api/handlers/get_filter_options"
	getMentorHandler "github.com/PraveenKumar22C/mentor-connect/internal/api/handlers/get_mentor"
	getMentorsHandler "github.com/PraveenKumar22C/mentor-connect/internal/api/handlers/get_mentors"
	updateBookingStatusHandler "github.com/PraveenKumar22C/mentor-connect/internal/api/handlers/update_booking_status"
	"github.com/PraveenKumar22C/mentor-connect/internal/api/middleware"
	"github.com/PraveenKumar22C/mentor-connect/internal/config"
	bookingRepo "github.com/PraveenKumar22C/mentor-connect/internal/infra/storage/booking"
	mentorRepo "github.com/PraveenKumar22C/mentor-connect/internal/infra/storage/mentor"
	bookingsService "github.com/PraveenKumar22C/mentor-connect/internal/service/bookings"
	mentorsService "github.com/PraveenKumar22C/mentor-connect/internal/service/mentors"
	createBookingUC "github.com/PraveenKumar22C/mentor-connect/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/PraveenKumar22C/mentor-connect/internal/usecase/get_available_slots"
	updateBookingStatusUC "github.com/PraveenKumar22C/mentor-connect/internal/usecase/update_booking_status"
	"github.com/PraveenKumar22C/mentor-connect/internal/validation"
	"github.com/PraveenKumar22C/mentor-connect/pkg/dbmetrics"
	"github.com/PraveenKumar22C/mentor-connect/pkg/logger"
	"github.com/PraveenKumar22C/mentor-connect/pkg/metrics"
	"github.com/PraveenKumar22C/mentor-connect/pkg/simpletxmanager"
	"github.com/PraveenKumar22C/mentor-connect/pkg/txmanager"
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

	log.Info("Starting mentor-connect...")
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

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		mentorRepository  *mentorRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		mentorRepository = mentorRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		mentorRepository = mentorRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Валидатор входных данных
	validate := validation.New()

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, mentorRepository, log)
	mentorSvc := mentorsService.NewService(mentorRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		mentorRepository,
		txMgr,
		validate,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		mentorRepository,
		bookingRepository,
		log,
	)
	updateBookingStatusUseCase := updateBookingStatusUC.NewUseCase(
		bookingRepository,
		mentorRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(updateBookingStatusUseCase, log)
	getMentors := getMentorsHandler.NewHandler(mentorSvc, log)
	getMentor := getMentorHandler.NewHandler(mentorSvc, log)
	getFilterOptions := getFilterOptionsHandler.NewHandler(mentorSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Менторы ---
	api.HandleFunc("/mentors", getMentors.Handle).Methods(http.MethodGet)
	api.HandleFunc("/mentors/filters", getFilterOptions.Handle).Methods(http.MethodGet)
	api.HandleFunc("/mentors/{mentorId}", getMentor.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	// Маршрут available-slots регистрируется раньше /bookings/{bookingId},
	// иначе mux отдаст его параметризованному маршруту
	api.HandleFunc("/bookings/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// CORS для веб-клиента
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
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

	log.Info("Server stopped")
}
