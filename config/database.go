package config

import (
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var Database *gorm.DB

// Connect opens the deck database. A DB_URL selects postgres; otherwise the
// service falls back to a local sqlite file, which is the common single-user
// setup.
func Connect() error {
	var err error
	if dbURL := os.Getenv("DB_URL"); dbURL != "" {
		Database, err = gorm.Open(postgres.Open(dbURL), &gorm.Config{})
	} else {
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = "studylab.db"
		}
		Database, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	}
	if err != nil {
		panic("failed to connect database")
	}

	return nil
}
