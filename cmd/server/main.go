package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"workflow-portal-backend/internal/api/handlers"
	"workflow-portal-backend/internal/api/routes"
	"workflow-portal-backend/internal/config"
	"workflow-portal-backend/internal/database"
	"workflow-portal-backend/internal/events"
	"workflow-portal-backend/internal/session"
	"workflow-portal-backend/internal/storage"
	"workflow-portal-backend/internal/worker"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "workflow-portal-backend/docs" // This is needed for swag
)

//	@title			Workflow Portal Backend API
//	@version		1.0
//	@description	Backend API for the workflow portal: org hierarchy, work cycles, submissions with review, the document file manager, notifications and analytics.

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.Environment,
			AttachStacktrace: true,
		}); err != nil {
			logrus.WithError(err).Warn("Sentry disabled")
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	files, err := storage.New(ctx, cfg)
	if err != nil {
		logrus.Fatal("Failed to initialize file storage:", err)
	}

	probes := map[string]handlers.Pinger{}

	var sessions session.Store = session.NewMemoryStore()
	if cfg.RedisAddr != "" {
		client, err := session.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logrus.Fatal("Failed to connect to Redis:", err)
		}
		defer client.Close()
		sessions = session.NewRedisStore(client)
		probes["redis"] = handlers.PingerFunc(func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		})
	}

	var publisher events.Publisher = events.NoopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		publisher = events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		logrus.WithField("topic", cfg.KafkaTopic).Info("Publishing domain events to Kafka")
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logrus.WithError(err).Warn("Failed to close event publisher")
		}
	}()

	svc, err := routes.NewServices(db, cfg, routes.Dependencies{
		Storage:   files,
		Sessions:  sessions,
		Publisher: publisher,
	})
	if err != nil {
		logrus.Fatal("Failed to wire services:", err)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg, svc, probes)

	scheduler := worker.NewScheduler(svc.WorkCycles, svc.Notifications, cfg.SweepInterval(), cfg.ReminderDaysBefore)
	go scheduler.Start(ctx)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7008"
	}
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("Starting server on port %s", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server:", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Graceful shutdown failed")
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
}
