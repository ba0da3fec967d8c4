package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/abgdnv/inventory/pkg/config"
	"github.com/abgdnv/inventory/pkg/config/configloader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, yaml string) (*Config, error) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	return configloader.Load[*Config]("inventory_test",
		configloader.WithConfigFile(path),
		configloader.WithEnvFile(filepath.Join(dir, ".env")),
		configloader.WithDefaults(Defaults()),
	)
}

func Test_Load_Defaults(t *testing.T) {
	// given
	yaml := ""

	// when
	cfg, err := load(t, yaml)

	// then
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTPServer.Port)
	assert.Equal(t, "9090", cfg.GRPC.Port)
	assert.Equal(t, config.DriverMemory, cfg.Database.Driver)
	assert.Equal(t, 10*time.Second, cfg.Shutdown.Timeout)
	assert.False(t, cfg.NATS.Enabled)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func Test_Load_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "postgres without url",
			yaml: "database:\n  driver: postgres\n",
			want: "database URL is not configured",
		},
		{
			name: "unknown driver",
			yaml: "database:\n  driver: sqlite\n",
			want: "unsupported database driver",
		},
		{
			name: "nats enabled without url",
			yaml: "nats:\n  enabled: true\n",
			want: "NATS URL is not configured",
		},
		{
			name: "bad grpc port",
			yaml: "grpc:\n  port: abc\n",
			want: "invalid gRPC port",
		},
		{
			name: "zero shutdown timeout",
			yaml: "shutdown:\n  timeout: 0s\n",
			want: "shutdown timeout must be greater than zero",
		},
		{
			name: "pprof address without port",
			yaml: "pprof:\n  enabled: true\n  addr: localhost\n",
			want: "invalid pprof address",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// when
			_, err := load(t, tt.yaml)

			// then
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func Test_Config_String_MasksCredentials(t *testing.T) {
	// given
	cfg, err := load(t, "database:\n  driver: postgres\n  url: postgres://user:secret@db:5432/inventory\n")
	require.NoError(t, err)

	// when
	out := cfg.String()

	// then
	assert.NotContains(t, out, "secret")
	assert.Contains(t, out, "****@db:5432/inventory")
	assert.Contains(t, out, "--- NATS ---")
}
