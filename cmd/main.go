package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/cats-api/internal/geo"
	"github.com/sbilibin2017/cats-api/internal/handlers"
	"github.com/sbilibin2017/cats-api/internal/jwt"
	"github.com/sbilibin2017/cats-api/internal/logger"
	"github.com/sbilibin2017/cats-api/internal/metrics"
	"github.com/sbilibin2017/cats-api/internal/middlewares"
	"github.com/sbilibin2017/cats-api/internal/migrations"
	"github.com/sbilibin2017/cats-api/internal/models"
	"github.com/sbilibin2017/cats-api/internal/repositories"
	"github.com/sbilibin2017/cats-api/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds every setting read from the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	JWTSecretKey string
	JWTExpSecond int

	KafkaBrokers []string // empty disables event publishing
	KafkaTopic   string

	CORSAllowedOrigins    []string
	RateLimitRequests     int
	RateLimitWindowSecond int

	DefaultLocation *models.Location // nil when DEFAULT_LOCATION is unset

	AdminUserName string // admin bootstrap is skipped when any ADMIN_* value is empty
	AdminEmail    string
	AdminPassword string
}

// @title cats-api API
// @version 1.0.0
// @description REST backend for geo-tagged cats and their owners
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the application, database, JWT, Kafka and HTTP configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getList := func(key string) []string {
		var out []string
		for _, item := range strings.Split(getEnv(key, ""), ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
		return out
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.JWTExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	// Kafka config
	cfg.KafkaBrokers = getList("KAFKA_BROKERS")
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "cats-api.events")

	// HTTP config
	cfg.CORSAllowedOrigins = getList("CORS_ALLOWED_ORIGINS")
	if cfg.RateLimitRequests, err = strconv.Atoi(getEnv("RATE_LIMIT_REQUESTS", "100")); err != nil {
		return
	}
	if cfg.RateLimitWindowSecond, err = strconv.Atoi(getEnv("RATE_LIMIT_WINDOW_SECOND", "60")); err != nil {
		return
	}

	// Cat defaults, "lat,lng"
	if raw := getEnv("DEFAULT_LOCATION", ""); raw != "" {
		var ll geo.LatLng
		if ll, err = geo.ParseLatLng(raw); err != nil {
			err = fmt.Errorf("DEFAULT_LOCATION: %w", err)
			return
		}
		cfg.DefaultLocation = models.NewPoint(ll.Lng, ll.Lat)
	}

	// Admin bootstrap
	cfg.AdminUserName = getEnv("ADMIN_USER_NAME", "")
	cfg.AdminEmail = getEnv("ADMIN_EMAIL", "")
	cfg.AdminPassword = getEnv("ADMIN_PASSWORD", "")

	return
}

// run initializes the logger, database, Kafka writer and HTTP server.
// It applies migrations, sets up routes, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, buildVersion); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if err := migrations.Up(ctx, db.DB); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	// Kafka writer, optional
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Publishing events to Kafka topic %s", cfg.KafkaTopic)
	}

	// Initialize JWT service
	jwtSvc := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(time.Duration(cfg.JWTExpSecond)*time.Second),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	catReadRepo := repositories.NewCatReadRepository(db)
	catWriteRepo := repositories.NewCatWriteRepository(db, middlewares.GetTxFromContext)

	// Initialize services
	userService := services.NewUserService(userReadRepo, userWriteRepo, catWriteRepo, jwtSvc, kafkaWriter)
	catService := services.NewCatService(catReadRepo, catWriteRepo, userReadRepo, kafkaWriter)

	if cfg.AdminUserName != "" && cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		if _, err := userService.EnsureAdmin(ctx, models.UserInput{
			UserName: cfg.AdminUserName,
			Email:    cfg.AdminEmail,
			Password: cfg.AdminPassword,
		}); err != nil {
			return fmt.Errorf("failed to bootstrap admin: %w", err)
		}
	}

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db.DB, cfg.PGDB),
	)
	collector := metrics.NewCollector(reg)

	// Setup router
	r := handlers.NewRouter(handlers.RouterConfig{
		Cats:              catService,
		Users:             userService,
		Tokener:           jwtSvc,
		Tx:                middlewares.TxMiddleware(db),
		Recorder:          collector,
		MetricsHandler:    metrics.Handler(reg),
		DefaultLocation:   cfg.DefaultLocation,
		AllowedOrigins:    cfg.CORSAllowedOrigins,
		RateLimitRequests: cfg.RateLimitRequests,
		RateLimitWindow:   time.Duration(cfg.RateLimitWindowSecond) * time.Second,
		SwaggerURL:        fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
