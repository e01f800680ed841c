package persistence

import (
	"io"
	"log/slog"
	"testing"

	"penpal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newParams(t *testing.T, driver string) Params {
	t.Helper()

	cfg := &config.Config{}
	cfg.Storage.Driver = driver

	return Params{
		Lc:     fxtest.NewLifecycle(t),
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestNew_UnknownDriver(t *testing.T) {
	_, err := New(newParams(t, "cassandra"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cassandra")
}

func TestNew_MissingSections(t *testing.T) {
	for _, driver := range []string{"postgres", "mongo"} {
		t.Run(driver, func(t *testing.T) {
			_, err := New(newParams(t, driver))

			assert.Error(t, err)
		})
	}
}
