package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localshop/storefront/internal/shared/config"
)

func TestInit_SQLiteFile(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Driver:   "sqlite",
		Database: filepath.Join(t.TempDir(), "shop.db"),
	}

	require.NoError(t, Init(cfg))
	conn := Get()
	require.NotNil(t, conn)

	var one int
	require.NoError(t, conn.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)

	sqlDB, err := conn.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)

	require.NoError(t, Close())
	assert.Nil(t, Get())
	assert.NoError(t, Close())
}

func TestDatabaseConfig_DSN(t *testing.T) {
	mysqlCfg := config.DatabaseConfig{Driver: "mysql", Host: "db", Port: 3306, Username: "shop", Password: "pw", Database: "storefront"}
	assert.Equal(t, "shop:pw@tcp(db:3306)/storefront?charset=utf8mb4&parseTime=True&loc=UTC", mysqlCfg.GetDSN())
	assert.Equal(t, "mysql", driverName(&mysqlCfg))

	sqliteCfg := config.DatabaseConfig{Driver: "sqlite", Database: "/tmp/shop.db"}
	assert.Equal(t, "file:/tmp/shop.db?_foreign_keys=on&_busy_timeout=5000", sqliteCfg.GetDSN())
}
