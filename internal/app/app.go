package app

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ecogestao/erp-backend/internal/config"
	"github.com/ecogestao/erp-backend/internal/models"
	"github.com/ecogestao/erp-backend/internal/utils"
)

const (
	maxRetries     = 5
	initialBackoff = 500 * time.Millisecond
)

type App struct {
	Config *config.Config
	DB     *gorm.DB
}

func NewApp(cfg *config.Config) (*App, error) {
	var (
		db      *gorm.DB
		err     error
		backoff = initialBackoff
	)

	for i := 1; i <= maxRetries; i++ {
		db, err = gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		})
		if err == nil {
			utils.Logger.Infof("Connected to DB on attempt %d", i)
			break
		}

		utils.Logger.WithError(err).Warnf(
			"Failed DB connect on attempt %d/%d. Retrying in %v...",
			i, maxRetries, backoff,
		)

		if i == maxRetries {
			return nil, fmt.Errorf("unable to connect after %d attempts: %w", maxRetries, err)
		}
		time.Sleep(backoff)
		backoff *= 2
	}

	if err := models.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetConnMaxIdleTime(2 * time.Minute)

	return &App{Config: cfg, DB: db}, nil
}

func (a *App) Close() {
	if a.DB == nil {
		return
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		_ = sqlDB.Close()
		utils.Logger.Info("DB connection closed.")
	}
}
