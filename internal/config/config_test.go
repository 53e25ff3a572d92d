package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"

dictionary:
  affix_path: "/srv/ithkuil/affixes.tsv"
  root_path: "/srv/ithkuil/roots.tsv"
  watch: false

gloss:
  precision: "full"
  show_defaults: true

log:
  level: "debug"
  format: "text"
`

func TestLoad_FromYAML(t *testing.T) {
	t.Setenv("CONFIG_PATH", writeYAML(t, t.TempDir(), validYAML))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr())
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout, "default applies when the key is absent")
	assert.Equal(t, "/srv/ithkuil/affixes.tsv", cfg.Dictionary.AffixPath)
	assert.False(t, cfg.Dictionary.Watch)
	assert.Equal(t, "full", cfg.Gloss.Precision)
	assert.True(t, cfg.Gloss.ShowDefaults)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "*", cfg.CORS.AllowedOrigins)
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	t.Setenv("CONFIG_PATH", writeYAML(t, t.TempDir(), validYAML))
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("GLOSS_PRECISION", "short")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "short", cfg.Gloss.Precision)
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "testdata/roots.tsv", cfg.Dictionary.RootPath)
	assert.True(t, cfg.Dictionary.Watch)
	assert.Equal(t, 500*time.Millisecond, cfg.Dictionary.Debounce)
	assert.Equal(t, "regular", cfg.Gloss.Precision)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := func() Config {
		return Config{
			Server:     ServerConfig{Port: 8080, MaxBodyBytes: 1024},
			Dictionary: DictionaryConfig{Watch: true, Debounce: time.Second},
			Gloss:      GlossConfig{Precision: "regular"},
			Log:        LogConfig{Format: "json"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"body limit", func(c *Config) { c.Server.MaxBodyBytes = 0 }, "max_body_bytes"},
		{"debounce", func(c *Config) { c.Dictionary.Debounce = 0 }, "debounce"},
		{"debounce ignored without watch", func(c *Config) { c.Dictionary.Watch = false; c.Dictionary.Debounce = 0 }, ""},
		{"precision", func(c *Config) { c.Gloss.Precision = "verbose" }, "gloss.precision"},
		{"precision case", func(c *Config) { c.Gloss.Precision = "FULL" }, ""},
		{"log format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestServerAddr(t *testing.T) {
	tests := []struct {
		host string
		port int
		want string
	}{
		{"0.0.0.0", 8080, "0.0.0.0:8080"},
		{"", 80, ":80"},
		{"::1", 9090, "[::1]:9090"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ServerConfig{Host: tt.host, Port: tt.port}.Addr())
	}
}
