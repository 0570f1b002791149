package testutils

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"sync"
	"testing"
	"time"

	"workflow-portal-backend/internal/config"
	"workflow-portal-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const (
	pgUser     = "portal"
	pgPassword = "portal-test"
	pgDatabase = "portal_test"
)

// pgContainer is the Postgres instance shared by every suite of one test binary
type pgContainer struct {
	pool     *dockertest.Pool
	resource *dockertest.Resource
	db       *gorm.DB
	config   *config.Config
	tables   []string
}

var (
	sharedOnce    sync.Once
	sharedInitErr error
	shared        *pgContainer
)

// BaseTestSuite hands a migrated database to repository suites
type BaseTestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Config *config.Config
	tables []string
}

// SetupTestSuite starts the shared container on first use and returns a per-suite handle.
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	sharedOnce.Do(func() { shared, sharedInitErr = startPostgres() })
	if sharedInitErr != nil {
		t.Fatalf("failed to initialize shared test container: %v", sharedInitErr)
	}
	return &BaseTestSuite{DB: shared.db, Config: shared.config, tables: shared.tables}
}

// CleanupSharedContainer closes the pool and purges the container; TestMain calls it on exit.
func CleanupSharedContainer() {
	if shared == nil {
		return
	}
	if sqlDB, err := shared.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	if err := shared.pool.Purge(shared.resource); err != nil {
		log.Printf("WARN: could not purge %s: %v", shared.resource.Container.Name, err)
	} else {
		log.Printf("Purged %s", shared.resource.Container.Name)
	}
	shared = nil
}

// SetupTest empties every table before a test
func (s *BaseTestSuite) SetupTest() { s.CleanTestDB() }

// TearDownTest empties every table after a test
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite leaves the container running for the next suite
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB truncates every migrated table in one statement
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil || len(s.tables) == 0 {
		return
	}
	quoted := make([]string, len(s.tables))
	for i, table := range s.tables {
		quoted[i] = `"` + table + `"`
	}
	if err := s.DB.Exec("TRUNCATE TABLE " + strings.Join(quoted, ", ") + " RESTART IDENTITY CASCADE").Error; err != nil {
		log.Printf("WARN: truncate failed: %v", err)
	}
}

func startPostgres() (*pgContainer, error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("could not connect to docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return nil, fmt.Errorf("could not start postgres: %w", err)
	}
	c := &pgContainer{pool: pool, resource: resource}

	port := resource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable", pgUser, pgPassword, port, pgDatabase)

	if err := pool.Retry(func() error {
		std, err := sql.Open("pgx", dsn)
		if err != nil {
			return err
		}
		defer std.Close()
		return std.Ping()
	}); err != nil {
		_ = pool.Purge(resource)
		return nil, fmt.Errorf("postgres never became ready: %w", err)
	}

	c.db, err = database.Initialize(dsn, nil)
	if err != nil {
		_ = pool.Purge(resource)
		return nil, fmt.Errorf("could not migrate test database: %w", err)
	}

	c.tables, err = tableNames(c.db)
	if err != nil {
		_ = pool.Purge(resource)
		return nil, err
	}

	c.config = &config.Config{
		DatabaseURL:          dsn,
		Port:                 "8080",
		LogLevel:             "debug",
		Environment:          "test",
		JWTSecret:            "integration-secret",
		JWTTTLMinutes:        60,
		StorageBackend:       "local",
		MaxUploadMB:          5,
		ReminderDaysBefore:   3,
		SweepIntervalMinutes: 60,
	}

	log.Printf("Shared Postgres ready on port %s (%d tables)", port, len(c.tables))
	return c, nil
}

// tableNames resolves the table of every migrated model
func tableNames(db *gorm.DB) ([]string, error) {
	var tables []string
	for _, model := range database.Models() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("parse %T: %w", model, err)
		}
		tables = append(tables, stmt.Schema.Table)
	}
	return tables, nil
}
