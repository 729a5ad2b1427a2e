package gorm

import (
	"path/filepath"
	"testing"
)

// TestConnectToSQLite_CreatesFile tests that connecting creates the database file
func TestConnectToSQLite_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := ConnectToSQLite(path)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	defer Disconnect(db.Conn)

	if db.Driver != DriverSQLite {
		t.Errorf("expected driver %s, got: %s", DriverSQLite, db.Driver)
	}
	if err := db.Conn.Exec("CREATE TABLE ping (id INTEGER)").Error; err != nil {
		t.Errorf("expected usable connection, got: %v", err)
	}
}

// TestConnectToSQLite_EmptyPath tests that an empty path is rejected
func TestConnectToSQLite_EmptyPath(t *testing.T) {
	if _, err := ConnectToSQLite(""); err == nil {
		t.Error("expected error for empty path")
	}
}

// TestConnectToPostgreSQL_MissingTarget tests that empty connection settings are rejected
func TestConnectToPostgreSQL_MissingTarget(t *testing.T) {
	if _, err := ConnectToPostgreSQL("", "", "user", "pass", "", false); err == nil {
		t.Error("expected error when host, port and database are empty")
	}
}
