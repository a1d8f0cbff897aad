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
user = "postgres"
password = "postgres"
dbname = "hms_reservations"
sslmode = "disable"
max_open_conns = 25
max_idle_conns = 5
conn_max_lifetime = 300

[migrations]
dir = "migrations"
auto_apply = true

[logs]
file = "logs/app.log"
level = "info"

[metrics]
enabled = true
service_name = "hms-reservation-service"
path = "/metrics"
`

func TestLoad_Valid(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "hms_reservations", cfg.Database.DBName)
	assert.Equal(t, "migrations", cfg.Migrations.Dir)
	assert.True(t, cfg.Migrations.AutoApply)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoad_DSN(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=postgres dbname=hms_reservations sslmode=disable",
		cfg.Database.DSN())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing http port",
			content: `
[database]
host = "localhost"
dbname = "db"
[logs]
file = "logs/app.log"
`,
		},
		{
			name: "missing database host",
			content: `
[server]
http_port = 8080
[database]
dbname = "db"
[logs]
file = "logs/app.log"
`,
		},
		{
			name: "metrics enabled without path",
			content: `
[server]
http_port = 8080
[database]
host = "localhost"
dbname = "db"
[logs]
file = "logs/app.log"
[metrics]
enabled = true
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}
