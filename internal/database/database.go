package database

import (
	"fmt"
	"time"

	"workflow-portal-backend/internal/database/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	AutoMigrate     bool
}

// postMigrateIndexes are constraints gorm tags cannot express
var postMigrateIndexes = []string{
	// at most one folder may have a NULL parent
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_document_folders_single_root ON document_folders ((1)) WHERE parent_id IS NULL`,
	// sibling names for top-level teams, where the (parent_id, name) index does not bite
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_teams_root_name ON teams (name) WHERE parent_id IS NULL`,
}

// Initialize opens a Postgres connection and creates the schema from GORM models.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{AutoMigrate: true}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}

	// TranslateError turns unique violations into gorm.ErrDuplicatedKey
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(opts.LogLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	// gen_random_uuid() for BaseModel defaults
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		logrus.WithError(err).Warn("Could not create pgcrypto extension; uuid defaults rely on gen_random_uuid")
	}

	if opts.AutoMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// Models lists every persisted model, parents before children
func Models() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Team{},
		&models.TeamMembership{},
		&models.OrgAssignment{},
		&models.WorkCycle{},
		&models.WorkAssignment{},
		&models.WorkItem{},
		&models.DocumentFolder{},
		&models.WorkItemAttachment{},
		&models.WorkItemMessage{},
		&models.Notification{},
		&models.WorkCycleAnalytics{},
		&models.TeamWorkCycleAnalytics{},
		&models.WorkCycleAnalyticsSnapshot{},
		&models.UserSubmissionAnalytics{},
	}
}

// Migrate creates or updates every table and the partial indexes
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}

	for _, stmt := range postMigrateIndexes {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}
	return nil
}
