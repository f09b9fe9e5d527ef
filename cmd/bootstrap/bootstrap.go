package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wellness-cms-backend/config"
	deliveryHttp "wellness-cms-backend/internal/delivery/http"
	"wellness-cms-backend/internal/delivery/http/handler"
	"wellness-cms-backend/internal/delivery/http/middleware"
	"wellness-cms-backend/internal/infrastructure/cache"
	"wellness-cms-backend/internal/infrastructure/database"
	"wellness-cms-backend/internal/repository"
	"wellness-cms-backend/internal/service"
	"wellness-cms-backend/internal/usecase"
	"wellness-cms-backend/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Mailer      *service.Mailer
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Apply pending schema migrations before opening the pool
	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, err
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	// Initialize Redis. The page cache tolerates a nil client, so a missing
	// redis only costs cache hits, not availability.
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		logrus.Warnf("Redis unavailable, page cache disabled: %v", err)
		redisClient = nil
	}
	app.RedisClient = redisClient

	// Initialize all layers
	app.Server = app.initializeServer()

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer wires repositories, usecases, handlers and the router.
func (app *App) initializeServer() *http.Server {
	cfg := app.Config
	db := app.DB
	log := logrus.StandardLogger()

	customValidator := validator.NewValidator()
	pageCache := service.NewPageCache(app.RedisClient, log)

	mailer := service.NewMailer(cfg.Mail, log)
	mailer.Start()
	app.Mailer = mailer

	// Repositories
	landingBgRepo := repository.NewLandingBgRepository()
	aboutRepo := repository.NewAboutUsRepository()
	categoryRepo := repository.NewTreatmentCategoryRepository()
	treatmentRepo := repository.NewTreatmentRepository()
	clinicRepo := repository.NewClinicRepository()
	offerRepo := repository.NewOfferRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	contactRepo := repository.NewContactMessageRepository()
	blogRepo := repository.NewBlogRepository()
	settingsRepo := repository.NewSiteSettingsRepository()
	whyChooseUsRepo := repository.NewWhyChooseUsRepository()
	treatmentFAQRepo := repository.NewTreatmentFAQRepository()
	landingFAQRepo := repository.NewLandingFAQRepository()
	skinConcernRepo := repository.NewSkinConcernRepository()
	testimonialRepo := repository.NewTestimonialRepository()
	resultRepo := repository.NewResultRepository()

	// Usecases
	mediaBaseURL := cfg.Media.BaseURL
	aboutUsecase := usecase.NewAboutUsUsecase(db, log, aboutRepo, mediaBaseURL)
	treatmentUsecase := usecase.NewTreatmentUsecase(db, log, categoryRepo, treatmentRepo, mediaBaseURL)
	clinicUsecase := usecase.NewClinicUsecase(db, log, clinicRepo, treatmentRepo, offerRepo, mediaBaseURL)
	offerUsecase := usecase.NewOfferUsecase(db, log, offerRepo, mediaBaseURL)
	blogUsecase := usecase.NewBlogUsecase(db, log, blogRepo, mediaBaseURL)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, clinicRepo, mailer)
	contactUsecase := usecase.NewContactUsecase(db, log, contactRepo, mailer)
	settingsUsecase := usecase.NewSiteSettingsUsecase(db, log, settingsRepo, pageCache)
	whyChooseUsUsecase := usecase.NewWhyChooseUsUsecase(db, log, whyChooseUsRepo)
	contentUsecase := usecase.NewContentUsecase(
		db, log,
		landingBgRepo, treatmentFAQRepo, landingFAQRepo,
		skinConcernRepo, testimonialRepo, resultRepo,
		pageCache, mediaBaseURL,
	)

	// Handlers
	aboutHandler := handler.NewAboutHandler(aboutUsecase)
	treatmentHandler := handler.NewTreatmentHandler(treatmentUsecase)
	clinicHandler := handler.NewClinicHandler(clinicUsecase)
	offerHandler := handler.NewOfferHandler(offerUsecase)
	blogHandler := handler.NewBlogHandler(blogUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	contactHandler := handler.NewContactHandler(contactUsecase, customValidator)
	settingsHandler := handler.NewSiteSettingsHandler(settingsUsecase, customValidator)
	whyChooseUsHandler := handler.NewWhyChooseUsHandler(whyChooseUsUsecase, customValidator)
	contentHandler := handler.NewContentHandler(contentUsecase)

	// Middleware
	corsMiddleware := middleware.NewCORSMiddleware()
	loggingMiddleware := middleware.NewLoggingMiddleware(log)
	recoveryMiddleware := middleware.NewRecoveryMiddleware(log)

	// Router
	router := deliveryHttp.NewRouter(
		aboutHandler,
		treatmentHandler,
		clinicHandler,
		offerHandler,
		blogHandler,
		appointmentHandler,
		contactHandler,
		settingsHandler,
		whyChooseUsHandler,
		contentHandler,
		corsMiddleware,
		loggingMiddleware,
		recoveryMiddleware,
	)

	return &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.App.Port),
		Handler: router.Setup(),
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close stops the mail worker and closes all connections
func (app *App) Close() {
	if app.Mailer != nil {
		app.Mailer.Stop()
	}

	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
