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

	blogHandler "github.com/m04kA/HMA-AdminService/internal/api/handlers/blog"
	bookAppointmentHandler "github.com/m04kA/HMA-AdminService/internal/api/handlers/book_appointment"
	calendarHandler "github.com/m04kA/HMA-AdminService/internal/api/handlers/calendar"
	cancelAppointmentHandler "github.com/m04kA/HMA-AdminService/internal/api/handlers/cancel_appointment"
	deleteAppointmentHandler "github.com/m04kA/HMA-AdminService/internal/api/handlers/delete_appointment"
	getAppointmentHandler "github.com/m04kA/HMA-AdminService/internal/api/handlers/get_appointment"
	getTimeSlotsHandler "github.com/m04kA/HMA-AdminService/internal/api/handlers/get_time_slots"
	listAppointmentsHandler "github.com/m04kA/HMA-AdminService/internal/api/handlers/list_appointments"
	patientsHandler "github.com/m04kA/HMA-AdminService/internal/api/handlers/patients"
	remindersHandler "github.com/m04kA/HMA-AdminService/internal/api/handlers/reminders"
	staffHandler "github.com/m04kA/HMA-AdminService/internal/api/handlers/staff"
	tutorialsHandler "github.com/m04kA/HMA-AdminService/internal/api/handlers/tutorials"
	updateAppointmentHandler "github.com/m04kA/HMA-AdminService/internal/api/handlers/update_appointment"
	"github.com/m04kA/HMA-AdminService/internal/api/middleware"
	"github.com/m04kA/HMA-AdminService/internal/config"
	appointmentRepo "github.com/m04kA/HMA-AdminService/internal/infra/storage/appointment"
	blogRepo "github.com/m04kA/HMA-AdminService/internal/infra/storage/blog"
	calendarRepo "github.com/m04kA/HMA-AdminService/internal/infra/storage/calendar"
	patientRepo "github.com/m04kA/HMA-AdminService/internal/infra/storage/patient"
	reminderRepo "github.com/m04kA/HMA-AdminService/internal/infra/storage/reminder"
	staffRepo "github.com/m04kA/HMA-AdminService/internal/infra/storage/staff"
	tutorialRepo "github.com/m04kA/HMA-AdminService/internal/infra/storage/tutorial"
	appointmentsService "github.com/m04kA/HMA-AdminService/internal/service/appointments"
	blogService "github.com/m04kA/HMA-AdminService/internal/service/blog"
	calendarService "github.com/m04kA/HMA-AdminService/internal/service/calendar"
	patientsService "github.com/m04kA/HMA-AdminService/internal/service/patients"
	remindersService "github.com/m04kA/HMA-AdminService/internal/service/reminders"
	staffService "github.com/m04kA/HMA-AdminService/internal/service/staff"
	tutorialsService "github.com/m04kA/HMA-AdminService/internal/service/tutorials"
	bookAppointmentUC "github.com/m04kA/HMA-AdminService/internal/usecase/book_appointment"
	getTimeSlotsUC "github.com/m04kA/HMA-AdminService/internal/usecase/get_time_slots"
	"github.com/m04kA/HMA-AdminService/pkg/dbmetrics"
	"github.com/m04kA/HMA-AdminService/pkg/logger"
	"github.com/m04kA/HMA-AdminService/pkg/metrics"
	"github.com/m04kA/HMA-AdminService/pkg/simpletxmanager"
	"github.com/m04kA/HMA-AdminService/pkg/txmanager"
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

	log.Info("Starting HMA-AdminService...")
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
		cfg.Database.Host, cfg.Database.Port, cfg.Database.Name)

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		patientRepository     *patientRepo.Repository
		staffRepository       *staffRepo.Repository
		blogRepository        *blogRepo.Repository
		calendarRepository    *calendarRepo.Repository
		reminderRepository    *reminderRepo.Repository
		tutorialRepository    *tutorialRepo.Repository
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
		patientRepository = patientRepo.NewRepository(wrappedDB)
		staffRepository = staffRepo.NewRepository(wrappedDB)
		blogRepository = blogRepo.NewRepository(wrappedDB)
		calendarRepository = calendarRepo.NewRepository(wrappedDB)
		reminderRepository = reminderRepo.NewRepository(wrappedDB)
		tutorialRepository = tutorialRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		patientRepository = patientRepo.NewRepository(db)
		staffRepository = staffRepo.NewRepository(db)
		blogRepository = blogRepo.NewRepository(db)
		calendarRepository = calendarRepo.NewRepository(db)
		reminderRepository = reminderRepo.NewRepository(db)
		tutorialRepository = tutorialRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, log)
	staffSvc := staffService.NewService(staffRepository, log)
	patientsSvc := patientsService.NewService(patientRepository, log)
	blogSvc := blogService.NewService(blogRepository, log)
	calendarSvc := calendarService.NewService(calendarRepository, log)
	remindersSvc := remindersService.NewService(reminderRepository, log)
	tutorialsSvc := tutorialsService.NewService(tutorialRepository, log)

	// Инициализируем use cases
	bookAppointmentUseCase := bookAppointmentUC.NewUseCase(
		appointmentRepository,
		patientRepository,
		staffRepository,
		txMgr,
		log,
	)

	getTimeSlotsUseCase := getTimeSlotsUC.NewUseCase(
		appointmentRepository,
		staffRepository,
		log,
	)

	// Инициализируем handlers
	bookAppointment := bookAppointmentHandler.NewHandler(bookAppointmentUseCase, log)
	getTimeSlots := getTimeSlotsHandler.NewHandler(getTimeSlotsUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	updateAppointment := updateAppointmentHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentsSvc, log)
	staffH := staffHandler.NewHandler(staffSvc, log)
	patientsH := patientsHandler.NewHandler(patientsSvc, log)
	blogH := blogHandler.NewHandler(blogSvc, log)
	calendarH := calendarHandler.NewHandler(calendarSvc, log)
	remindersH := remindersHandler.NewHandler(remindersSvc, log)
	tutorialsH := tutorialsHandler.NewHandler(tutorialsSvc, log)

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
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Сетка слотов врача на дату
	api.HandleFunc("/doctors/{doctorId}/slots", getTimeSlots.Handle).Methods(http.MethodGet)

	// Запись к врачу (форма на сайте клиники)
	api.HandleFunc("/appointments", bookAppointment.Handle).Methods(http.MethodPost)

	// Опубликованные обучающие материалы
	api.HandleFunc("/tutorials", tutorialsH.List).Methods(http.MethodGet)
	api.HandleFunc("/tutorials/authors", tutorialsH.Authors).Methods(http.MethodGet)
	api.HandleFunc("/tutorials/{tutorialId}", tutorialsH.Get).Methods(http.MethodGet)
	api.HandleFunc("/tutorials/{tutorialId}/view", tutorialsH.View).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи на приём ---
	protected.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}", updateAppointment.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}", deleteAppointment.Handle).Methods(http.MethodDelete)

	// --- Персонал ---
	protected.HandleFunc("/staff", staffH.List).Methods(http.MethodGet)
	protected.HandleFunc("/staff", staffH.Create).Methods(http.MethodPost)
	protected.HandleFunc("/staff/stats", staffH.Stats).Methods(http.MethodGet)
	protected.HandleFunc("/staff/departments", staffH.Departments).Methods(http.MethodGet)
	protected.HandleFunc("/staff/{staffId}", staffH.Get).Methods(http.MethodGet)
	protected.HandleFunc("/staff/{staffId}", staffH.Update).Methods(http.MethodPut)
	protected.HandleFunc("/staff/{staffId}", staffH.Delete).Methods(http.MethodDelete)

	// --- Пациенты ---
	protected.HandleFunc("/patients", patientsH.List).Methods(http.MethodGet)
	protected.HandleFunc("/patients", patientsH.Create).Methods(http.MethodPost)
	protected.HandleFunc("/patients/{patientId}", patientsH.Get).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{patientId}", patientsH.Update).Methods(http.MethodPut)
	protected.HandleFunc("/patients/{patientId}", patientsH.Delete).Methods(http.MethodDelete)

	// --- Внутренние объявления ---
	protected.HandleFunc("/blog", blogH.List).Methods(http.MethodGet)
	protected.HandleFunc("/blog", blogH.Create).Methods(http.MethodPost)
	protected.HandleFunc("/blog/authors", blogH.Authors).Methods(http.MethodGet)
	protected.HandleFunc("/blog/{postId}", blogH.Get).Methods(http.MethodGet)
	protected.HandleFunc("/blog/{postId}", blogH.Update).Methods(http.MethodPut)
	protected.HandleFunc("/blog/{postId}", blogH.Delete).Methods(http.MethodDelete)

	// --- Общий календарь ---
	protected.HandleFunc("/calendar", calendarH.List).Methods(http.MethodGet)
	protected.HandleFunc("/calendar", calendarH.Create).Methods(http.MethodPost)
	protected.HandleFunc("/calendar/{eventId}", calendarH.Get).Methods(http.MethodGet)
	protected.HandleFunc("/calendar/{eventId}", calendarH.Update).Methods(http.MethodPut)
	protected.HandleFunc("/calendar/{eventId}", calendarH.Delete).Methods(http.MethodDelete)

	// --- Напоминания ---
	protected.HandleFunc("/reminders", remindersH.List).Methods(http.MethodGet)
	protected.HandleFunc("/reminders", remindersH.Create).Methods(http.MethodPost)
	protected.HandleFunc("/reminders/{reminderId}", remindersH.Get).Methods(http.MethodGet)
	protected.HandleFunc("/reminders/{reminderId}", remindersH.Update).Methods(http.MethodPut)
	protected.HandleFunc("/reminders/{reminderId}/complete", remindersH.Complete).Methods(http.MethodPatch)
	protected.HandleFunc("/reminders/{reminderId}", remindersH.Delete).Methods(http.MethodDelete)

	// --- Управление обучающими материалами ---
	protected.HandleFunc("/tutorials", tutorialsH.Create).Methods(http.MethodPost)
	protected.HandleFunc("/tutorials/{tutorialId}", tutorialsH.Update).Methods(http.MethodPut)
	protected.HandleFunc("/tutorials/{tutorialId}", tutorialsH.Delete).Methods(http.MethodDelete)

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
