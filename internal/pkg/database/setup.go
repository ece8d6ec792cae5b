package database

import (
	"log"
	"os"
	"path/filepath"

	"github.com/liberiadate/liberiadate/app/models"
	"github.com/liberiadate/liberiadate/internal/pkg/env"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// GetDB returns the shared database handle
func GetDB() *gorm.DB {
	return DB
}

// SetupDatabase opens the SQLite file under the data directory, migrates the
// schema and seeds the showcase profiles on first boot.
func SetupDatabase() {
	dataDir := env.GetEnv("DATA_DIR", "./data")
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		panic(err)
	}

	dbPath := filepath.Join(dataDir, env.GetEnv("DB_FILE", "liberiadate.db"))

	var err error
	DB, err = gorm.Open(sqlite.Open(dbPath+"?_journal_mode=WAL"), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	if err := Migrate(DB); err != nil {
		panic(err)
	}

	if err := SeedProfiles(DB); err != nil {
		log.Printf("profile seeding failed: %v", err)
	}
}

// Migrate creates or updates the three tables the service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Profile{},
		&models.Report{},
		&models.AdminUser{},
	)
}
