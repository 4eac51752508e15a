package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	createReservationHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/create_reservation"
	createTableHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/create_table"
	deleteTableHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/delete_table"
	getAvailableSlotsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_available_slots"
	getReservationHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_reservation"
	getSettingsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_settings"
	listReservationsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/list_reservations"
	listTablesHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/list_tables"
	updateReservationHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/update_reservation"
	updateSettingsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/update_settings"
	updateTableHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/update_table"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/migrations"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	settingsRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/settings"
	tableRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/table"
	reservationsService "github.com/m04kA/SMC-ReservationService/internal/service/reservations"
	settingsService "github.com/m04kA/SMC-ReservationService/internal/service/settings"
	tablesService "github.com/m04kA/SMC-ReservationService/internal/service/tables"
	createReservationUC "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/m04kA/SMC-ReservationService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/metrics"
	"github.com/m04kA/SMC-ReservationService/pkg/txmanager"
)

func newServeCmd(configPath *string) *cobra.Command {
	var migrateUp bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the reservation HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), *configPath, migrateUp)
		},
	}
	cmd.Flags().BoolVar(&migrateUp, "migrate", false, "apply migrations before start")

	return cmd
}

func serve(ctx context.Context, configPath string, migrateUp bool) error {
	cfg, log, err := loadRuntime(configPath)
	if err != nil {
		return err
	}
	defer log.Close()

	log.Info("Starting SMC-ReservationService...")
	log.Info("Configuration loaded from %s", configPath)

	defaultHours, err := cfg.Scheduling.DefaultHours()
	if err != nil {
		return err
	}

	// Коллекторы регистрируются всегда, наружу отдаются только при metrics.enabled
	registry := prometheus.NewRegistry()
	var registerer prometheus.Registerer = registry
	if cfg.Metrics.Enabled {
		registerer = prometheus.DefaultRegisterer
	}
	metricsCollector := metrics.New(cfg.Metrics.ServiceName, registerer)

	// Подключаемся к базе данных
	db, err := openDB(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	stopMetricsCh := make(chan struct{})
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	defer close(stopMetricsCh)

	if migrateUp {
		applied, err := migrations.Up(ctx, wrappedDB)
		if err != nil {
			return err
		}
		log.Info("Migrations applied: %v", applied)
	}

	// Репозитории
	reservationRepository := reservationRepo.NewRepository(wrappedDB)
	tableRepository := tableRepo.NewRepository(wrappedDB)
	settingsRepository := settingsRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Сервисы
	settingsSvc := settingsService.NewService(settingsRepository, defaultHours, log)
	tablesSvc := tablesService.NewService(tableRepository, log)
	reservationsSvc := reservationsService.NewService(
		reservationRepository,
		tableRepository,
		settingsSvc,
		txMgr,
		log,
	)

	// Use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		settingsSvc,
		tableRepository,
		reservationRepository,
		metricsCollector,
		log,
	)
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		tableRepository,
		settingsSvc,
		txMgr,
		metricsCollector,
		log,
	)

	// Handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	updateReservation := updateReservationHandler.NewHandler(reservationsSvc, log)
	listTables := listTablesHandler.NewHandler(tablesSvc, log)
	createTable := createTableHandler.NewHandler(tablesSvc, log)
	updateTable := updateTableHandler.NewHandler(tablesSvc, log)
	deleteTable := deleteTableHandler.NewHandler(tablesSvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Все маршруты API требуют X-Restaurant-ID
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.RestaurantScope)

	// --- Настройки смены ---
	api.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)

	// --- Столы ---
	api.HandleFunc("/tables", listTables.Handle).Methods(http.MethodGet)
	api.HandleFunc("/tables", createTable.Handle).Methods(http.MethodPost)
	api.HandleFunc("/tables/{tableId}", updateTable.Handle).Methods(http.MethodPut)
	api.HandleFunc("/tables/{tableId}", deleteTable.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/tables/{tableId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{reservationId}", updateReservation.Handle).Methods(http.MethodPut)

	var handler http.Handler = r
	if len(cfg.Server.AllowedOrigins) > 0 {
		handler = gorillahandlers.CORS(
			gorillahandlers.AllowedOrigins(cfg.Server.AllowedOrigins),
			gorillahandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
			gorillahandlers.AllowedHeaders([]string{"Content-Type", middleware.RestaurantIDHeader, middleware.RequestIDHeader}),
		)(handler)
	}
	handler = gorillahandlers.LoggingHandler(log.Writer(), handler)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// Ожидаем сигнал завершения
	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server failed to start: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
