package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPublic = `
log:
  level: debug
  json: true
paging:
  default_size: 20
  max_size: 100
server:
  port: 9090
  auto_migrate: true
  request_timeout: 5s
gateway:
  port: 8080
  server_url: http://localhost:9090
  request_timeout: 10s
  rate_limit_rps: 50
  rate_limit_burst: 100
  allowed_origins: ["http://localhost:3000"]
`

const validPrivate = `
pg:
  host: localhost
  port: 5432
  user: shareit
  password: shareit
  dbname: shareit
service_key: secret
`

func writeConfig(t *testing.T, public, private string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "public.yaml"), []byte(public), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "private.yaml"), []byte(private), 0o600))
	return dir
}

func TestMustLoad(t *testing.T) {
	cfg := MustLoad(writeConfig(t, validPublic, validPrivate))

	assert.Equal(t, "debug", cfg.Public.Log.Level)
	assert.True(t, cfg.Public.Log.JSON)
	assert.Equal(t, 20, cfg.Public.Paging.DefaultSize)
	assert.Equal(t, 5*time.Second, cfg.Public.Server.RequestTimeout)
	assert.Equal(t, "http://localhost:9090", cfg.Public.Gateway.ServerURL)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Public.Gateway.AllowedOrigins)
	assert.Equal(t, "localhost", cfg.Pg().Host)
	assert.Equal(t, "secret", cfg.ServiceKey())
	assert.Equal(t, time.Minute, cfg.ServiceTokenTTL())
	assert.NotPanics(t, cfg.MustValidatePg)
}

func TestMustLoad_RequiredFields(t *testing.T) {
	// paging.default_size is intentionally missing
	public := `
paging:
  max_size: 100
server:
  port: 9090
  request_timeout: 5s
gateway:
  port: 8080
  server_url: http://localhost:9090
  request_timeout: 10s
  rate_limit_rps: 50
  rate_limit_burst: 100
`
	dir := writeConfig(t, public, validPrivate)
	assert.Panics(t, func() { MustLoad(dir) })
}

func TestMustLoad_Errors(t *testing.T) {
	t.Run("missing folder", func(t *testing.T) {
		assert.Panics(t, func() { MustLoad(filepath.Join(t.TempDir(), "nope")) })
	})
	t.Run("unknown key", func(t *testing.T) {
		dir := writeConfig(t, validPublic+"bump_limit: 10\n", validPrivate)
		assert.Panics(t, func() { MustLoad(dir) })
	})
	t.Run("bad server url", func(t *testing.T) {
		public := `
paging: {default_size: 20, max_size: 100}
server: {port: 9090, request_timeout: 5s}
gateway: {port: 8080, server_url: "not a url", request_timeout: 10s, rate_limit_rps: 1, rate_limit_burst: 1}
`
		dir := writeConfig(t, public, validPrivate)
		assert.Panics(t, func() { MustLoad(dir) })
	})
	t.Run("incomplete pg", func(t *testing.T) {
		cfg := MustLoad(writeConfig(t, validPublic, "service_key: x\n"))
		assert.Panics(t, cfg.MustValidatePg)
	})
}
