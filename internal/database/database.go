package database

import (
	"github.com/glebarez/sqlite"
	"github.com/lhochwald/unterweisung/config"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// NewDatabase opens (and creates if absent) the local SQLite database file.
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Database.Path), &gorm.Config{})
	if err != nil {
		log.Error().Err(err).Str("path", cfg.Database.Path).Msg("Failed to open database")
		return nil, err
	}
	log.Info().Str("path", cfg.Database.Path).Msg("Database opened")
	return db, nil
}
