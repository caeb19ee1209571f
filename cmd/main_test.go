package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

var configKeys = []string{
	"APP_HOST", "APP_PORT", "APP_LOG_LEVEL", "APP_BASE_URL", "MEDIA_ROOT", "GRPC_PORT",
	"POSTGRES_HOST", "POSTGRES_PORT", "POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB",
	"POSTGRES_MAX_OPEN_CONNS", "POSTGRES_MAX_IDLE_CONNS",
	"REDIS_HOST", "REDIS_PORT", "REDIS_DB", "REDIS_PASSWORD", "REDIS_POOL_SIZE",
	"REDIS_MIN_IDLE_CONNS", "REDIS_EXP_SECOND",
	"KAFKA_BROKERS", "KAFKA_TOPIC", "JWT_SECRET_KEY", "JWT_EXP_SECOND",
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	for _, key := range configKeys {
		os.Unsetenv(key)
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
	os.Stdout = oldStdout

	output := buf.String()
	assert.Contains(t, output, "Version: v1.0.0")
	assert.Contains(t, output, "Commit: abcd1234")
	assert.Contains(t, output, "Build: 2025-09-26")
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, config{
		AppHost:           "localhost",
		AppPort:           "8080",
		LogLevel:          "info",
		BaseURL:           "http://localhost:8080",
		MediaDir:          "media",
		GRPCPort:          "50051",
		PGHost:            "localhost",
		PGPort:            5432,
		PGUser:            "user",
		PGPassword:        "password",
		PGDB:              "foodgram",
		PGMaxOpenConns:    16,
		PGMaxIdleConns:    8,
		RedisHost:         "localhost",
		RedisPort:         6379,
		RedisDB:           0,
		RedisPassword:     "",
		RedisPoolSize:     10,
		RedisMinIdleConns: 2,
		RedisExpSecond:    300,
		KafkaBrokers:      nil,
		KafkaTopic:        "recipe-events",
		JWTSecretKey:      "my_super_secret_key",
		JWTExpSecond:      86400,
	}, cfg)
}

func TestParseConfig_CustomEnv(t *testing.T) {
	resetEnv()
	os.Setenv("APP_HOST", "127.0.0.1")
	os.Setenv("APP_PORT", "9090")
	os.Setenv("APP_LOG_LEVEL", "debug")
	os.Setenv("APP_BASE_URL", "https://foodgram.example")
	os.Setenv("MEDIA_ROOT", "/var/media")
	os.Setenv("GRPC_PORT", "50052")

	os.Setenv("POSTGRES_HOST", "pg.example.com")
	os.Setenv("POSTGRES_PORT", "5433")
	os.Setenv("POSTGRES_USER", "admin")
	os.Setenv("POSTGRES_PASSWORD", "secret")
	os.Setenv("POSTGRES_DB", "mydb")
	os.Setenv("POSTGRES_MAX_OPEN_CONNS", "20")
	os.Setenv("POSTGRES_MAX_IDLE_CONNS", "10")

	os.Setenv("REDIS_HOST", "redis.example.com")
	os.Setenv("REDIS_PORT", "6380")
	os.Setenv("REDIS_DB", "2")
	os.Setenv("REDIS_PASSWORD", "redispass")
	os.Setenv("REDIS_POOL_SIZE", "15")
	os.Setenv("REDIS_MIN_IDLE_CONNS", "5")
	os.Setenv("REDIS_EXP_SECOND", "120")

	os.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	os.Setenv("KAFKA_TOPIC", "recipes")

	os.Setenv("JWT_SECRET_KEY", "supersecret")
	os.Setenv("JWT_EXP_SECOND", "300")

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.AppHost)
	assert.Equal(t, "9090", cfg.AppPort)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "https://foodgram.example", cfg.BaseURL)
	assert.Equal(t, "/var/media", cfg.MediaDir)
	assert.Equal(t, "50052", cfg.GRPCPort)
	assert.Equal(t, "pg.example.com", cfg.PGHost)
	assert.Equal(t, 5433, cfg.PGPort)
	assert.Equal(t, "admin", cfg.PGUser)
	assert.Equal(t, "secret", cfg.PGPassword)
	assert.Equal(t, "mydb", cfg.PGDB)
	assert.Equal(t, 20, cfg.PGMaxOpenConns)
	assert.Equal(t, 10, cfg.PGMaxIdleConns)
	assert.Equal(t, "redis.example.com", cfg.RedisHost)
	assert.Equal(t, 6380, cfg.RedisPort)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, "redispass", cfg.RedisPassword)
	assert.Equal(t, 15, cfg.RedisPoolSize)
	assert.Equal(t, 5, cfg.RedisMinIdleConns)
	assert.Equal(t, 120, cfg.RedisExpSecond)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "recipes", cfg.KafkaTopic)
	assert.Equal(t, "supersecret", cfg.JWTSecretKey)
	assert.Equal(t, 300, cfg.JWTExpSecond)
}

func TestParseConfig_InvalidNumber(t *testing.T) {
	resetEnv()
	os.Setenv("POSTGRES_PORT", "not-a-port")

	_, err := parseConfig("nonexistent.env")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "POSTGRES_PORT")
}

func TestParseConfig_FromFile(t *testing.T) {
	resetEnv()

	path := t.TempDir() + "/config.env"
	require.NoError(t, os.WriteFile(path, []byte("APP_PORT=7070\nREDIS_EXP_SECOND=30\n"), 0o600))

	cfg, err := parseConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.AppPort)
	assert.Equal(t, 30, cfg.RedisExpSecond)
}

func freePort(t *testing.T) string {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer lis.Close()
	return fmt.Sprint(lis.Addr().(*net.TCPAddr).Port)
}

func TestRun_Success(t *testing.T) {
	ctx := context.Background()

	// Postgres container
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:15-alpine",
			Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "user"},
			ExposedPorts: []string{"5432/tcp"},
			WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
		},
		Started: true,
	})
	require.NoError(t, err)
	defer pgContainer.Terminate(ctx)

	pgHost, _ := pgContainer.Host(ctx)
	pgPort, _ := pgContainer.MappedPort(ctx, "5432")

	// Redis container
	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7.0-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp"),
		},
		Started: true,
	})
	require.NoError(t, err)
	defer redisContainer.Terminate(ctx)

	redisHost, _ := redisContainer.Host(ctx)
	redisPort, _ := redisContainer.MappedPort(ctx, "6379")

	cfg := config{
		AppHost:        "127.0.0.1",
		AppPort:        freePort(t),
		GRPCPort:       freePort(t),
		LogLevel:       "debug",
		MediaDir:       t.TempDir(),
		PGHost:         pgHost,
		PGPort:         pgPort.Int(),
		PGUser:         "user",
		PGPassword:     "password",
		PGDB:           "testdb",
		PGMaxOpenConns: 5,
		PGMaxIdleConns: 2,
		RedisHost:      redisHost,
		RedisPort:      redisPort.Int(),
		RedisPoolSize:  10,
		RedisExpSecond: 60,
		KafkaTopic:     "recipe-events",
		JWTSecretKey:   "testsecret",
		JWTExpSecond:   60,
	}
	cfg.BaseURL = "http://127.0.0.1:" + cfg.AppPort

	runCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(runCtx, cfg)
	}()

	// Health reports SERVING once dependencies answer
	conn, err := grpc.NewClient("127.0.0.1:"+cfg.GRPCPort, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	healthClient := grpc_health_v1.NewHealthClient(conn)
	require.Eventually(t, func() bool {
		resp, err := healthClient.Check(ctx, &grpc_health_v1.HealthCheckRequest{})
		return err == nil && resp.GetStatus() == grpc_health_v1.HealthCheckResponse_SERVING
	}, 10*time.Second, 200*time.Millisecond)

	// Short links resolve without touching the database
	client := &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }}
	resp, err := client.Get(cfg.BaseURL + "/s/42/")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/recipes/42/", resp.Header.Get("Location"))

	// Protected routes reject anonymous callers
	resp, err = http.Get(cfg.BaseURL + "/api/users/me/")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	select {
	case <-time.After(20 * time.Second):
		t.Fatal("test timed out")
	case err := <-errCh:
		assert.NoError(t, err)
	}
}
