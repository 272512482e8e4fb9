// @title Let's Heal API
// @version 1.0
// @description API for the Let's Heal therapy platform: self-assessment quiz, appointment booking and account login.
// @contact.name API Support
// @contact.email support@letsheal.local
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "lets-heal/cmd/api/docs"
	"lets-heal/internal/adapter/notifier"
	"lets-heal/internal/config"
	"lets-heal/internal/database"
	"lets-heal/internal/handler"
	"lets-heal/internal/logger"
	"lets-heal/internal/middleware"
	"lets-heal/internal/repository"
	"lets-heal/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Connect to database
	db, err := database.NewSQLXDB(cfg.DB, cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	identityRepository := repository.NewIdentityDatabaseAdapter(db)
	accountRepository := repository.NewAccountDatabaseAdapter(db)
	hospitalRepository := repository.NewHospitalDatabaseAdapter(db)
	quizRepository := repository.NewQuizDatabaseAdapter(db)
	attemptRepository := repository.NewAttemptDatabaseAdapter(db)
	appointmentRepository := repository.NewAppointmentDatabaseAdapter(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	// Initialize notifier
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 10*time.Second)
	bookingNotifier, notifierCloser, err := notifier.New(startupCtx, cfg, appLogger)
	cancelStartup()
	if err != nil {
		appLogger.Fatal("Failed to initialize notifier", zap.String("transport", cfg.Notification.Transport), zap.Error(err))
	}
	defer notifierCloser.Close()
	appLogger.Info("Notifier initialized", zap.String("transport", cfg.Notification.Transport))

	// Initialize services
	authService, err := service.NewAuthService(identityRepository, cfg.JWT)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}
	quizService := service.NewQuizService(quizRepository, attemptRepository, txManager, cfg.Quiz.ActiveQuizID)
	appointmentService := service.NewAppointmentService(
		appointmentRepository,
		accountRepository,
		hospitalRepository,
		txManager,
		bookingNotifier,
		cfg.Location(),
	)

	// Initialize handlers
	handlers := handler.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Quiz:        handler.NewQuizHandler(quizService),
		Admin:       handler.NewAdminHandler(quizService, appointmentService),
		Appointment: handler.NewAppointmentHandler(appointmentService),
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization,X-Request-ID",
		MaxAge:       300,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/healthz", func(c *fiber.Ctx) error {
		if err := db.PingContext(c.UserContext()); err != nil {
			return fiber.NewError(fiber.StatusServiceUnavailable, "database unavailable")
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	handler.RegisterRoutes(app.Group("/api"), handlers, authService)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
