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

const validConfig = `
[server]
http_port = 8080
read_timeout = 15
write_timeout = 15
idle_timeout = 60
shutdown_timeout = 10

[database]
host = "localhost"
port = 5432
user = "scheduler"
password = "scheduler"
dbname = "vws_scheduler"
sslmode = "disable"
max_open_conns = 25
max_idle_conns = 5
conn_max_lifetime = 300

[logs]
file = "logs/scheduler-service.log"
level = "info"

[metrics]
enabled = true
path = "/metrics"
service_name = "vws-scheduler-service"
`

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoad_InvalidPort(t *testing.T) {
	content := `
[server]
http_port = 0

[database]
host = "localhost"
port = 5432
dbname = "vws_scheduler"
`
	_, err := Load(writeConfig(t, content))
	assert.ErrorContains(t, err, "http_port")
}

func TestLoad_MissingDatabaseHost(t *testing.T) {
	content := `
[server]
http_port = 8080

[database]
port = 5432
dbname = "vws_scheduler"
`
	_, err := Load(writeConfig(t, content))
	assert.ErrorContains(t, err, "database.host")
}

func TestDatabase_DSN(t *testing.T) {
	db := Database{
		Host:     "localhost",
		Port:     5432,
		User:     "scheduler",
		Password: "secret",
		DBName:   "vws_scheduler",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=scheduler password=secret dbname=vws_scheduler sslmode=disable",
		db.DSN())
}
