package main

import (
	"bytes"
	"context"
	"flag"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/sbilibin2017/cats-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

var configKeys = []string{
	"APP_HOST", "APP_PORT", "APP_LOG_LEVEL",
	"POSTGRES_HOST", "POSTGRES_PORT", "POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB",
	"POSTGRES_MAX_OPEN_CONNS", "POSTGRES_MAX_IDLE_CONNS",
	"JWT_SECRET_KEY", "JWT_EXP_SECOND",
	"KAFKA_BROKERS", "KAFKA_TOPIC",
	"CORS_ALLOWED_ORIGINS", "RATE_LIMIT_REQUESTS", "RATE_LIMIT_WINDOW_SECOND",
	"DEFAULT_LOCATION",
	"ADMIN_USER_NAME", "ADMIN_EMAIL", "ADMIN_PASSWORD",
}

// resetEnv blanks the env vars used by parseConfig for the duration of the test
func resetEnv(t *testing.T) {
	for _, key := range configKeys {
		t.Setenv(key, "")
	}
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestPrintBuildInfo_Output(t *testing.T) {
	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	output := buf.String()
	os.Stdout = oldStdout

	assert.Contains(t, output, "Version: v1.0.0")
	assert.Contains(t, output, "Commit: abcd1234")
	assert.Contains(t, output, "Build: 2025-09-26")
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv(t)

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.AppHost)
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "info", cfg.LogLevel)

	assert.Equal(t, "localhost", cfg.PGHost)
	assert.Equal(t, 5432, cfg.PGPort)
	assert.Equal(t, "user", cfg.PGUser)
	assert.Equal(t, "password", cfg.PGPassword)
	assert.Equal(t, "database", cfg.PGDB)
	assert.Equal(t, 16, cfg.PGMaxOpenConns)
	assert.Equal(t, 8, cfg.PGMaxIdleConns)

	assert.Equal(t, "my_super_secret_key", cfg.JWTSecretKey)
	assert.Equal(t, 3600, cfg.JWTExpSecond)

	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "cats-api.events", cfg.KafkaTopic)

	assert.Empty(t, cfg.CORSAllowedOrigins)
	assert.Equal(t, 100, cfg.RateLimitRequests)
	assert.Equal(t, 60, cfg.RateLimitWindowSecond)

	assert.Nil(t, cfg.DefaultLocation)
	assert.Empty(t, cfg.AdminUserName)
}

func TestParseConfig_CustomEnv(t *testing.T) {
	resetEnv(t)
	t.Setenv("APP_HOST", "127.0.0.1")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_LOG_LEVEL", "debug")

	t.Setenv("POSTGRES_HOST", "pg.example.com")
	t.Setenv("POSTGRES_PORT", "5433")
	t.Setenv("POSTGRES_USER", "admin")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("POSTGRES_DB", "mydb")
	t.Setenv("POSTGRES_MAX_OPEN_CONNS", "20")
	t.Setenv("POSTGRES_MAX_IDLE_CONNS", "10")

	t.Setenv("JWT_SECRET_KEY", "supersecret")
	t.Setenv("JWT_EXP_SECOND", "300")

	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092")
	t.Setenv("KAFKA_TOPIC", "events")

	t.Setenv("CORS_ALLOWED_ORIGINS", "https://cats.example.com")
	t.Setenv("RATE_LIMIT_REQUESTS", "10")
	t.Setenv("RATE_LIMIT_WINDOW_SECOND", "1")

	t.Setenv("DEFAULT_LOCATION", "60.16952,24.93545")

	t.Setenv("ADMIN_USER_NAME", "root")
	t.Setenv("ADMIN_EMAIL", "root@example.com")
	t.Setenv("ADMIN_PASSWORD", "toor")

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.AppHost)
	assert.Equal(t, "9090", cfg.AppPort)
	assert.Equal(t, "debug", cfg.LogLevel)

	assert.Equal(t, "pg.example.com", cfg.PGHost)
	assert.Equal(t, 5433, cfg.PGPort)
	assert.Equal(t, "admin", cfg.PGUser)
	assert.Equal(t, "secret", cfg.PGPassword)
	assert.Equal(t, "mydb", cfg.PGDB)
	assert.Equal(t, 20, cfg.PGMaxOpenConns)
	assert.Equal(t, 10, cfg.PGMaxIdleConns)

	assert.Equal(t, "supersecret", cfg.JWTSecretKey)
	assert.Equal(t, 300, cfg.JWTExpSecond)

	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "events", cfg.KafkaTopic)

	assert.Equal(t, []string{"https://cats.example.com"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 10, cfg.RateLimitRequests)
	assert.Equal(t, 1, cfg.RateLimitWindowSecond)

	assert.Equal(t, models.NewPoint(24.93545, 60.16952), cfg.DefaultLocation)

	assert.Equal(t, "root", cfg.AdminUserName)
	assert.Equal(t, "root@example.com", cfg.AdminEmail)
	assert.Equal(t, "toor", cfg.AdminPassword)
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"POSTGRES_PORT", "not-a-port"},
		{"JWT_EXP_SECOND", "soon"},
		{"RATE_LIMIT_REQUESTS", "many"},
		{"DEFAULT_LOCATION", "60.1"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			resetEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := parseConfig("nonexistent.env")
			assert.Error(t, err)
		})
	}
}

func TestParseConfig_FromFile(t *testing.T) {
	resetEnv(t)
	// godotenv never overrides variables that are already present
	os.Unsetenv("APP_PORT")
	os.Unsetenv("KAFKA_TOPIC")

	path := t.TempDir() + "/config.env"
	require.NoError(t, os.WriteFile(path, []byte("APP_PORT=7070\nKAFKA_TOPIC=from-file\n"), 0o600))

	cfg, err := parseConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.AppPort)
	assert.Equal(t, "from-file", cfg.KafkaTopic)
}

// ------------------ Full integration test ------------------
func TestRun_Success(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()

	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "user"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: pgReq, Started: true})
	require.NoError(t, err)
	defer pgContainer.Terminate(ctx)

	pgHost, _ := pgContainer.Host(ctx)
	pgPort, _ := pgContainer.MappedPort(ctx, "5432")

	cfg := config{
		AppHost:               "127.0.0.1",
		AppPort:               "8086",
		LogLevel:              "debug",
		PGHost:                pgHost,
		PGPort:                pgPort.Int(),
		PGUser:                "user",
		PGPassword:            "password",
		PGDB:                  "testdb",
		PGMaxOpenConns:        5,
		PGMaxIdleConns:        2,
		JWTSecretKey:          "testsecret",
		JWTExpSecond:          60,
		RateLimitRequests:     100,
		RateLimitWindowSecond: 60,
		AdminUserName:         "root",
		AdminEmail:            "root@example.com",
		AdminPassword:         "toor",
	}

	testCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(testCtx, cfg)
	}()

	// wait for the server, then hit the index route
	var body []byte
	require.Eventually(t, func() bool {
		resp, err := http.Get("http://127.0.0.1:8086/api/v1/")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ = io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK
	}, 8*time.Second, 100*time.Millisecond)
	assert.JSONEq(t, `{"message":"routes: auth, user, cat"}`, string(body))

	select {
	case <-time.After(11 * time.Second):
		t.Fatal("test timed out")
	case err := <-errCh:
		assert.NoError(t, err, "expected run to stop gracefully")
	}
}
