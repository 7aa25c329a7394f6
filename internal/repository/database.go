package repository

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"seungpyo.lee/BlogBackend/internal/domain"
	"seungpyo.lee/BlogBackend/pkg/logger"
)

// PoolConfig tunes the sql.DB pool. Zero values keep the driver defaults.
type PoolConfig struct {
	MaxOpenConns int
	MaxIdleConns int
}

// Open connects to Postgres through gorm. Writes run inside the explicit
// transactions of TxManager, so gorm's implicit per-statement transaction is skipped.
func Open(dsn string, log *logger.Logger, debug bool, pool PoolConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), NewGormConfig(log, debug))
	if err != nil {
		return nil, fmt.Errorf("gorm open: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("db.DB(): %w", err)
	}
	if pool.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	}
	if pool.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	}
	return db, nil
}

// NewGormConfig builds the gorm configuration shared by Open and tests.
func NewGormConfig(log *logger.Logger, debug bool) *gorm.Config {
	level := gormlogger.Warn
	if debug {
		level = gormlogger.Info
	}
	cfg := &gorm.Config{SkipDefaultTransaction: true}
	if log != nil {
		cfg.Logger = gormlogger.New(log, gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		})
	} else {
		cfg.Logger = gormlogger.Discard
	}
	return cfg
}

// Migrate creates the users and blogs tables when absent.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.User{}, &domain.Blog{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
