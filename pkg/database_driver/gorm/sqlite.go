package gorm

import (
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Supported drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// ConnectToSQLite func - opens (or creates) a database file; ":memory:" gives a private in-memory database
func ConnectToSQLite(path string) (*DB, error) {
	if path == "" {
		return nil, errors.New("sqlite path is empty")
	}

	db, err := gorm.Open(sqlite.Open(path), gormConfig())
	if err != nil {
		logrus.Error(err)
		return nil, err
	}
	if path == ":memory:" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		// each connection to :memory: opens a separate database
		sqlDB.SetMaxOpenConns(1)
	}

	logrus.Info("Connected to sqlite ", path)
	return &DB{Conn: db, Driver: DriverSQLite}, nil
}
