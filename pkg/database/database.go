package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"mtasks-backend/pkg/config"
)

// NewPostgresConnection opens the gorm connection used by all repositories.
func NewPostgresConnection(cfg *config.Config) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
}
