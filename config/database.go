package config

import (
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	dsn := os.Getenv("DB_URL")

	// TranslateError surfaces unique-index violations as
	// gorm.ErrDuplicatedKey, which the booking path relies on to detect a
	// taken slot.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		panic("Failed to connect database")
	}

	DB = db
}
