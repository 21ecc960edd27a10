package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

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

[database]
user = "svc"
password = "secret"
dbname = "appointments"

[redis]
addr = "redis:6379"
verification_ttl_minutes = 5

[schedule]
timezone = "America/Sao_Paulo"

[logs]
level = "debug"

[metrics]
enabled = true
service_name = "appointment-service"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "svc", cfg.Database.User)
	assert.Equal(t, "appointments", cfg.Database.DBName)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 5*time.Minute, cfg.Redis.VerificationTTL())
	assert.Equal(t, "America/Sao_Paulo", cfg.Schedule.Timezone)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)

	// Значения, не указанные в файле, берутся из дефолтов
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoad_EnvOverridesPasswords(t *testing.T) {
	path := writeConfig(t, `
[database]
user = "svc"
password = "from-file"
dbname = "appointments"
`)

	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("REDIS_PASSWORD", "redis-env")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "redis-env", cfg.Redis.Password)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing database credentials",
			content: `
[server]
http_port = 8080
`,
		},
		{
			name: "invalid port",
			content: `
[server]
http_port = -1

[database]
user = "svc"
dbname = "appointments"
`,
		},
		{
			name: "invalid timezone",
			content: `
[database]
user = "svc"
dbname = "appointments"

[schedule]
timezone = "Mars/Olympus_Mons"
`,
		},
		{
			name: "non-positive verification ttl",
			content: `
[database]
user = "svc"
dbname = "appointments"

[redis]
verification_ttl_minutes = 0
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

func TestDatabaseConfig_DSN(t *testing.T) {
	dsn := DatabaseConfig{
		Host:     "db",
		Port:     5432,
		User:     "svc",
		Password: "secret",
		DBName:   "appointments",
		SSLMode:  "disable",
	}.DSN()

	assert.Equal(t, "host=db port=5432 user=svc password=secret dbname=appointments sslmode=disable", dsn)
}
