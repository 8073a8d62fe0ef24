package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/icarusiftctts/campus-bus-backend/internal/config"
	"github.com/icarusiftctts/campus-bus-backend/internal/controller"
	"github.com/icarusiftctts/campus-bus-backend/internal/coord"
	"github.com/icarusiftctts/campus-bus-backend/internal/database"
	"github.com/icarusiftctts/campus-bus-backend/internal/messaging"
	"github.com/icarusiftctts/campus-bus-backend/internal/middleware"
	"github.com/icarusiftctts/campus-bus-backend/internal/repository"
	"github.com/icarusiftctts/campus-bus-backend/internal/routes"
	"github.com/icarusiftctts/campus-bus-backend/internal/service"
	"github.com/icarusiftctts/campus-bus-backend/internal/storage"
	"github.com/icarusiftctts/campus-bus-backend/internal/tokens"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// ============================================================================
	// LOGGING SETUP
	// ============================================================================
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	switch os.Getenv("LOG_LEVEL") {
	case "DEBUG":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "WARN":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "ERROR":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	environment := os.Getenv("ENVIRONMENT")
	if environment == "production" {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}

	log.Info().Str("environment", environment).Msg("starting campus-bus-backend")

	// ============================================================================
	// CONFIGURATION
	// ============================================================================
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// ============================================================================
	// DATABASE (IDS)
	// ============================================================================
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database connection")
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run database migrations")
	}
	log.Info().Msg("database ready")

	// ============================================================================
	// COORD (Redis locker)
	// ============================================================================
	locker, err := coord.NewRedisLocker(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to COORD")
	}
	log.Info().Msg("coord ready")

	// ============================================================================
	// TOK (token service)
	// ============================================================================
	tokenSvc := tokens.NewService(tokens.Secrets{
		Passenger: cfg.PassengerTokenSecret,
		Operator:  cfg.OperatorTokenSecret,
		Boarding:  cfg.BoardingTokenSecret,
	})

	// ============================================================================
	// RABBITMQ PUBLISHER (TEL)
	// ============================================================================
	telemetryPublisher, err := messaging.NewRabbitPublisher(cfg.RabbitMQURL, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry publisher")
	}

	// ============================================================================
	// S3 BLOB STORE (EVID)
	// ============================================================================
	blobCtx, blobCancel := context.WithTimeout(context.Background(), 10*time.Second)
	blobStore, err := storage.NewS3BlobStore(blobCtx, cfg.S3Bucket, cfg.S3Region, cfg.S3Endpoint, "", "")
	blobCancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize evidence blob store")
	}

	// ============================================================================
	// REPOSITORIES
	// ============================================================================
	passengerRepo := repository.NewPassengerRepository(db)
	operatorRepo := repository.NewOperatorRepository(db)
	tripRepo := repository.NewTripRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	reportRepo := repository.NewReportRepository(db)
	log.Info().Msg("repositories initialized")

	// ============================================================================
	// SERVICES
	// ============================================================================
	authService := service.NewAuthService(db, tokenSvc, passengerRepo, bookingRepo, cfg.AllowedEmailDomain)
	tripService := service.NewTripService(tripRepo, bookingRepo)
	allocatorService := service.NewAllocatorService(db, locker, tokenSvc, passengerRepo, tripRepo, bookingRepo)
	waitlistService := service.NewWaitlistService(db, locker, tokenSvc, tripRepo, bookingRepo)
	bookingQueryService := service.NewBookingQueryService(db, bookingRepo, tripRepo)
	operatorService := service.NewOperatorService(db, tokenSvc, operatorRepo, tripRepo, assignmentRepo, bookingRepo)
	boardingService := service.NewBoardingService(db, locker, tokenSvc, bookingRepo)
	reportService := service.NewReportService(reportRepo, blobStore, log.Logger)
	telemetryService := service.NewTelemetryService(telemetryPublisher)
	log.Info().Msg("services initialized")

	// ============================================================================
	// CONTROLLERS
	// ============================================================================
	ctrls := routes.Controllers{
		Auth:      controller.NewAuthController(authService),
		Trip:      controller.NewTripController(tripService),
		Booking:   controller.NewBookingController(allocatorService, waitlistService, bookingQueryService),
		Operator:  controller.NewOperatorController(operatorService),
		Boarding:  controller.NewBoardingController(boardingService),
		Report:    controller.NewReportController(reportService),
		Telemetry: controller.NewTelemetryController(telemetryService),
	}

	// ============================================================================
	// ROUTER
	// ============================================================================
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())

	routes.SetupRoutes(router, ctrls, tokenSvc)
	log.Info().Msg("routes registered")

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.ServerPort).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start http server")
		}
	}()

	// ============================================================================
	// GRACEFUL SHUTDOWN
	// ============================================================================
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info().Str("signal", sig.String()).Msg("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	if err := telemetryPublisher.Close(); err != nil {
		log.Error().Err(err).Msg("error closing telemetry publisher")
	}
	if err := locker.Close(); err != nil {
		log.Error().Err(err).Msg("error closing coord connection")
	}
	if err := database.CloseDB(db); err != nil {
		log.Error().Err(err).Msg("error closing database connection")
	}

	log.Info().Msg("server stopped")
}
