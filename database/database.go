package database

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/hirelab/interview-trainer/config"
)

// NewDatabase opens the local sqlite store. One file holds all tables; the
// driver is pure Go so no cgo toolchain is needed at deploy time.
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Database.Path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", cfg.Database.Path, err)
	}
	log.Info().Str("path", cfg.Database.Path).Msg("Database opened")
	return db, nil
}
