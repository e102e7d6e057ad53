package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  listen: ":9000"
  postgresDsn: "host=db user=postgres"
  redisAddr: "redis:6379"
  redisDB: 2
  memcachedAddr: "memcached:11211"
log:
  level: debug
validator:
  strictChecksum: true
  cacheTTL: 30s
  sampleNumbers:
    - "900101"
`)

	conf, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", conf.Server.Listen)
	assert.Equal(t, "redis:6379", conf.Server.RedisAddr)
	assert.Equal(t, 2, conf.Server.RedisDB)
	assert.Equal(t, "memcached:11211", conf.Server.MemcachedAddr)
	assert.Equal(t, defaultVerdictChannel, conf.Server.VerdictChannel)
	assert.Equal(t, "debug", conf.Log.Level)
	assert.True(t, conf.Validator.StrictChecksum)
	assert.Equal(t, []string{"900101"}, conf.Validator.SampleNumbers)

	ttl, err := conf.Validator.TTL()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, ttl)
	assert.Equal(t, 30*time.Second, conf.Validator.CacheTTLDuration)
}

func TestLoadDefaults(t *testing.T) {
	conf, err := Load(writeConfig(t, "server: {}\n"))
	require.NoError(t, err)

	assert.Equal(t, defaultListen, conf.Server.Listen)
	assert.Equal(t, "info", conf.Log.Level)
	assert.Empty(t, conf.Server.PostgresDsn)

	ttl, err := conf.Validator.TTL()
	require.NoError(t, err)
	assert.Equal(t, defaultCacheTTL, ttl)
	assert.Equal(t, defaultCacheTTL, conf.Validator.CacheTTLDuration)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "validator:\n  cacheTTL: soon\n"))
	assert.ErrorContains(t, err, "validator.cacheTTL")

	_, err = Load(writeConfig(t, "validator:\n  cacheTTL: -1m\n"))
	assert.ErrorContains(t, err, "negative")

	_, err = Load(writeConfig(t, "validator:\n  cacheTTL: 721h\n"))
	assert.ErrorContains(t, err, "exceeds")

	_, err = Load(writeConfig(t, "server: [\n"))
	assert.ErrorContains(t, err, "decode config")
}

func TestValidatorTTLBounds(t *testing.T) {
	ttl, err := Validator{CacheTTL: "720h"}.TTL()
	require.NoError(t, err)
	assert.Equal(t, maxCacheTTL, ttl)

	ttl, err = Validator{CacheTTL: "0s"}.TTL()
	require.NoError(t, err)
	assert.Zero(t, ttl)

	_, err = Validator{CacheTTL: "8760h"}.TTL()
	assert.ErrorContains(t, err, "exceeds")
}
