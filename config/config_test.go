package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
env:
  serviceName: penpal
  log:
    level: info
http:
  port: 5000
  timeouts:
    readTimeout: 3s
storage:
  driver: mongo
mongo:
  uri: mongodb://localhost:27017
  database: letters
  transactions: true
`

func writeTestConfig(t *testing.T) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "penpal.yaml"), []byte(testConfigYAML), 0o600))
	t.Chdir(dir)
}

func TestLoadWithEnv_ReadsYAMLAndEnvOverrides(t *testing.T) {
	writeTestConfig(t)
	t.Setenv("HTTP_PORT", "7000")
	t.Setenv("MONGO_DATABASE", "override")

	cfg, err := LoadWithEnv[Config]("penpal")
	require.NoError(t, err)

	assert.Equal(t, "penpal", cfg.Env.ServiceName)
	assert.Equal(t, 7000, cfg.HTTP.Port)
	assert.Equal(t, 3*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	assert.Equal(t, "mongo", cfg.Storage.Driver)
	require.NotNil(t, cfg.Mongo)
	assert.Equal(t, "override", cfg.Mongo.Database)
	assert.True(t, cfg.Mongo.Transactions)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	t.Run("postgres is the default driver", func(t *testing.T) {
		cfg := &Config{Postgres: nil}
		err := cfg.applyDefaults()
		require.Error(t, err)
		assert.Equal(t, "postgres", cfg.Storage.Driver)
	})

	t.Run("mongo gets database and timeout", func(t *testing.T) {
		cfg := &Config{Mongo: &MongoConfig{URI: "mongodb://db"}}
		cfg.Storage.Driver = " Mongo "

		require.NoError(t, cfg.applyDefaults())
		assert.Equal(t, "mongo", cfg.Storage.Driver)
		assert.Equal(t, defaultMongoDatabase, cfg.Mongo.Database)
		assert.Equal(t, defaultMongoTimeout, cfg.Mongo.ConnectTimeout)
		assert.Equal(t, defaultHTTPPort, cfg.HTTP.Port)
		assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
		assert.Equal(t, []string{"*"}, cfg.HTTP.AllowOrigins)
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := &Config{}
		cfg.Storage.Driver = "sqlite"

		assert.Error(t, cfg.applyDefaults())
	})
}

func TestApplyLegacyEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("MONGODB_URI", "mongodb://legacy:27017")

	cfg := &Config{}
	require.NoError(t, applyLegacyEnv(cfg))

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "mongo", cfg.Storage.Driver)
	require.NotNil(t, cfg.Mongo)
	assert.Equal(t, "mongodb://legacy:27017", cfg.Mongo.URI)
}

func TestApplyLegacyEnv_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "eighty")

	assert.Error(t, applyLegacyEnv(&Config{}))
}
