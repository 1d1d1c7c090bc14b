package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090
read_timeout = 30
idle_timeout = 120

[database]
host = "db.internal"
port = 5433
user = "admin"
password = "secret"
name = "hma_admin"
conn_max_lifetime = 600

[logs]
file = "logs/app.log"
level = "debug"

[metrics]
enabled = true
path = "/metrics"
service_name = "hma-admin-service"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 30, cfg.Server.ReadTimeout)
	assert.Equal(t, 120, cfg.Server.IdleTimeout)
	assert.Equal(t, 600, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "hma_admin", cfg.Database.Name)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "hma-admin-service", cfg.Metrics.ServiceName)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
port = 5432
user = "postgres"
password = "postgres"
name = "hma_admin"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, 15, cfg.Server.WriteTimeout)
	assert.Equal(t, 60, cfg.Server.IdleTimeout)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "info", cfg.Logs.Level)
}

func TestLoad_ShippedConfig(t *testing.T) {
	// Конфиг из корня репозитория должен декодироваться без потери ключей
	cfg, err := Load(filepath.Join("..", "..", "config.toml"))
	require.NoError(t, err)

	assert.Equal(t, "hospital_admin", cfg.Database.Name)
	assert.NotEmpty(t, cfg.Database.Host)
	assert.NotEmpty(t, cfg.Database.User)
	assert.Contains(t, cfg.Database.DSN(), "dbname=hospital_admin")
	assert.NotZero(t, cfg.Server.IdleTimeout)
	assert.NotZero(t, cfg.Database.ConnMaxLifetime)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	db := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "postgres",
		Name:     "hma_admin",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=postgres dbname=hma_admin sslmode=disable",
		db.DSN(),
	)
}
