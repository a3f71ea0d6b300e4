package database

import (
	"errors"
	"fmt"
	"time"

	"github.com/Top-Technologies/downtime/internal/database/models"

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
	SequencePrefix  string
	SequencePadding int
}

// Initialize opens a Postgres connection, creates the schema from GORM models
// and makes sure the downtime reference sequence exists.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
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
	if !opts.AutoMigrate {
		opts.AutoMigrate = true
	}
	if opts.SequencePrefix == "" {
		opts.SequencePrefix = "DT/"
	}
	if opts.SequencePadding == 0 {
		opts.SequencePadding = 5
	}

	// Open DB
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(opts.LogLevel),
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

	// Ensure required extension for UUID generation (used by BaseModel default gen_random_uuid())
	_ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error

	if opts.AutoMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}

	if err := EnsureSequence(db, models.SequenceCodeDowntime, opts.SequencePrefix, opts.SequencePadding); err != nil {
		return nil, err
	}

	return db, nil
}

// Models lists every persisted model in dependency order
func Models() []interface{} {
	return []interface{}{
		&models.Department{},
		&models.User{},
		&models.ProductionOrder{},
		&models.DowntimeReason{},
		&models.Sequence{},
		&models.DowntimeLog{},
		&models.Message{},
		&models.Activity{},
		&models.Attachment{},
	}
}

// Migrate creates or updates the schema
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

// EnsureSequence creates the sequence row for code when it does not exist yet
func EnsureSequence(db *gorm.DB, code, prefix string, padding int) error {
	var seq models.Sequence
	err := db.Where("code = ?", code).First(&seq).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("load sequence %s: %w", code, err)
	}

	seq = models.Sequence{
		Code:       code,
		Prefix:     prefix,
		Padding:    padding,
		NumberNext: 1,
		Increment:  1,
	}
	if err := db.Create(&seq).Error; err != nil {
		return fmt.Errorf("create sequence %s: %w", code, err)
	}
	return nil
}
