package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_DSN(t *testing.T) {
	cfg := Config{Host: "db", Port: "5432", User: "u", Password: "p", DBName: "catalog", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=catalog sslmode=disable", cfg.DSN())
}

func TestNewGormConnection_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")

	db, err := NewGormConnection(Config{Driver: DriverSQLite, SQLitePath: path})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	assert.NoError(t, sqlDB.Ping())
	assert.Equal(t, "sqlite", db.Dialector.Name())
}

func TestNewGormConnection_UnknownDriver(t *testing.T) {
	_, err := NewGormConnection(Config{Driver: "oracle"})
	assert.Error(t, err)
}
