package configuration

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingEnvReader is a genericConfigProvider whose reads always fail.
type failingEnvReader struct{}

func (*failingEnvReader) Read(_ ...string) (map[string]string, error) {
	return nil, errors.New("read error")
}

// TestLoad_Success_Defaults tests that an empty config path yields defaults.
func TestLoad_Success_Defaults(t *testing.T) {
	t.Parallel()

	handler := NewHandler(&GodotenvProvider{})

	config, err := handler.Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultAddress, config.Server.Address)
	assert.Equal(t, DefaultLogLevel, config.Server.LogLevel)
	assert.Equal(t, DefaultShutdownTimeoutSecs, config.Server.ShutdownTimeoutSecs)
}

// TestLoad_Success_YAML tests reading values from a YAML configuration file.
func TestLoad_Success_YAML(t *testing.T) {
	t.Parallel()

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	yamlData := "server:\n  address: \":9090\"\n  log_level: \"debug\"\n  shutdown_timeout_secs: 3\n"
	require.NoError(t, os.WriteFile(configPath, []byte(yamlData), 0o644))

	handler := NewHandler(&GodotenvProvider{})

	config, err := handler.Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, ":9090", config.Server.Address)
	assert.Equal(t, "debug", config.Server.LogLevel)
	assert.Equal(t, 3, config.Server.ShutdownTimeoutSecs)
}

// TestLoad_Success_EnvOverrides tests that dotenv keys override file values.
func TestLoad_Success_EnvOverrides(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("server:\n  address: \":9090\"\n"), 0o644))

	envPath := filepath.Join(dir, ".env")
	envData := "FSPROBE_ADDRESS=:7070\nFSPROBE_LOG_LEVEL=warn\nFSPROBE_SHUTDOWN_TIMEOUT_SECS=5\n"
	require.NoError(t, os.WriteFile(envPath, []byte(envData), 0o644))

	handler := NewHandler(&GodotenvProvider{})

	config, err := handler.Load(configPath, envPath)
	require.NoError(t, err)

	assert.Equal(t, ":7070", config.Server.Address)
	assert.Equal(t, "warn", config.Server.LogLevel)
	assert.Equal(t, 5, config.Server.ShutdownTimeoutSecs)
}

// TestLoad_Success_MissingEnvFile tests that an absent dotenv file is skipped.
func TestLoad_Success_MissingEnvFile(t *testing.T) {
	t.Parallel()

	handler := NewHandler(&GodotenvProvider{})

	config, err := handler.Load("", filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, DefaultAddress, config.Server.Address)
}

// TestLoad_Success_EnvReadError tests that a failing dotenv read degrades to
// the file values instead of erroring.
func TestLoad_Success_EnvReadError(t *testing.T) {
	t.Parallel()

	envPath := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("FSPROBE_ADDRESS=:7070\n"), 0o644))

	handler := NewHandler(&failingEnvReader{})

	config, err := handler.Load("", envPath)
	require.NoError(t, err)

	assert.Equal(t, DefaultAddress, config.Server.Address)
}

// TestLoad_Fail_BadYAML tests that an unparseable configuration file errors.
func TestLoad_Fail_BadYAML(t *testing.T) {
	t.Parallel()

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("server: [not: a: mapping"), 0o644))

	handler := NewHandler(&GodotenvProvider{})

	config, err := handler.Load(configPath)
	require.Error(t, err)
	assert.Nil(t, config)
}

// TestLoad_Fail_MissingFile tests that an explicitly given but absent
// configuration file errors.
func TestLoad_Fail_MissingFile(t *testing.T) {
	t.Parallel()

	handler := NewHandler(&GodotenvProvider{})

	config, err := handler.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Nil(t, config)
}

// TestSlogLevel_Success tests the log level mapping.
func TestSlogLevel_Success(t *testing.T) {
	t.Parallel()

	for level, want := range map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
		"":        slog.LevelInfo,
	} {
		config := &Config{Server: ServerConfig{LogLevel: level}}
		assert.Equal(t, want, config.SlogLevel(), "level %q", level)
	}
}
