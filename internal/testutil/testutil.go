package testutil

import (
	"context"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dheerajjx/portfolio/internal/api"
	"github.com/dheerajjx/portfolio/internal/config"
	"github.com/dheerajjx/portfolio/internal/logging"
	"github.com/dheerajjx/portfolio/internal/media"
	"github.com/dheerajjx/portfolio/internal/repository"
	repoPostgres "github.com/dheerajjx/portfolio/internal/repository/postgres"
	"github.com/dheerajjx/portfolio/internal/service"
	"github.com/dheerajjx/portfolio/internal/websocket"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestDB manages a testcontainers PostgreSQL instance
type TestDB struct {
	Container testcontainers.Container
	DB        *gorm.DB
	DSN       string
}

// NewTestDB creates a new PostgreSQL testcontainer and returns a connection
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	container, err := tcPostgres.Run(ctx,
		"postgres:15-alpine",
		tcPostgres.WithDatabase("test_portfolio"),
		tcPostgres.WithUsername("test"),
		tcPostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	db, err := gorm.Open(gormPostgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(repoPostgres.Models...); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	testDB := &TestDB{
		Container: container,
		DB:        db,
		DSN:       dsn,
	}

	t.Cleanup(func() {
		testDB.Cleanup()
	})

	return testDB
}

// Cleanup terminates the container
func (tdb *TestDB) Cleanup() {
	if tdb.Container != nil {
		ctx := context.Background()
		tdb.Container.Terminate(ctx)
	}
}

// Truncate clears all tables for test isolation
func (tdb *TestDB) Truncate(t *testing.T) {
	t.Helper()

	tables := []string{
		"admin_accounts",
		"memories",
		"thoughts",
		"gallery_images",
		"hero_bg_images",
		"stories",
		"about",
	}

	for _, table := range tables {
		if err := tdb.DB.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)).Error; err != nil {
			t.Logf("warning: failed to truncate %s: %v", table, err)
		}
	}
}

// Count returns the number of rows of model's table.
func (tdb *TestDB) Count(t *testing.T, model any) int64 {
	t.Helper()

	var n int64
	if err := tdb.DB.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return n
}

// TestConfig returns a configuration suitable for testing
func TestConfig() *config.Config {
	return &config.Config{
		Port:               "0", // Random port
		Environment:        "test",
		PublicURL:          "http://localhost:5000",
		CORSOrigins:        []string{"*"},
		JWTSecret:          "test-jwt-secret-key-for-testing-only",
		JWTExpirationHours: 30 * 24,
		OTPTTL:             10 * time.Minute,
		AuthRatePerMinute:  6000, // effectively unlimited
		AuthRateBurst:      1000,
		FromName:           "Test Admin",
		FromEmail:          "noreply@example.com",
		UploadTimeout:      2 * time.Second,
	}
}

// TestServer holds all components for integration testing
type TestServer struct {
	Server   *httptest.Server
	DB       *TestDB
	Repos    *repository.Repositories
	Services *service.Services
	Hub      *websocket.Hub
	Config   *config.Config
	Mailer   *RecordingMailer
	Host     *FakeHost
}

// NewTestServer creates a complete test server with all dependencies. The
// image host and mailer are in-memory fakes.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	testDB := NewTestDB(t)
	cfg := TestConfig()
	cfg.UploadDir = t.TempDir()
	log := logging.Discard()

	repos := repoPostgres.NewRepositories(testDB.DB)
	hub := websocket.NewHub(log)
	go hub.Run()

	mailer := NewRecordingMailer()
	host := NewFakeHost()
	ingestor := media.NewIngestor(host, media.Options{
		PublicURL: cfg.PublicURL,
		Timeout:   cfg.UploadTimeout,
	}, log)

	services := service.NewServices(repos, service.Dependencies{
		Mailer: mailer,
		Media:  ingestor,
		Events: hub,
		Logger: log,
	}, cfg)
	router := api.NewRouter(services, hub, cfg, log)

	server := httptest.NewServer(router)

	ts := &TestServer{
		Server:   server,
		DB:       testDB,
		Repos:    repos,
		Services: services,
		Hub:      hub,
		Config:   cfg,
		Mailer:   mailer,
		Host:     host,
	}

	t.Cleanup(func() {
		server.Close()
		hub.Stop()
	})

	return ts
}

// Reset truncates every table and clears the fakes.
func (ts *TestServer) Reset(t *testing.T) {
	t.Helper()
	ts.DB.Truncate(t)
	ts.Mailer.Reset()
	ts.Host.Reset()
}

// BaseURL returns the test server's base URL
func (ts *TestServer) BaseURL() string {
	return ts.Server.URL
}

// APIURL returns the full API URL for a given path
func (ts *TestServer) APIURL(path string) string {
	return fmt.Sprintf("%s/api%s", ts.Server.URL, path)
}

// WebSocketURL returns the change feed URL
func (ts *TestServer) WebSocketURL() string {
	wsURL := "ws" + ts.Server.URL[4:] // Replace "http" with "ws"
	return wsURL + "/api/ws"
}
