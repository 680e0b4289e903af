package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// writeFile — утилита записи временного файла конфигурации.
func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

// Полный корректный YAML (не зависит от дефолтов).
const sampleYAML = `
env: "prod"
http:
  host: "127.0.0.1"
  port: "6000"
telegram:
  token: "123:abc"
  poll_timeout_sec: 60
storage:
  path: "/var/lib/health-bot/storage.json"
weather:
  api_key: "owm-key"
food:
  page_size: 20
reset:
  hour: 3
timeouts:
  service: "7s"
  lookup: "4s"
`

// Минимально валидный YAML (только обязательные поля).
const minimalYAML = `
telegram:
  token: "123:abc"
weather:
  api_key: "owm-key"
`

// Некорректный YAML — для проверки ошибок парсинга.
const brokenYAML = `
telegram:
  token: "123:abc"
weather:
  api_key: ["owm-key"
`

// TestHTTPConfig_Addr — проверяем, что Addr() корректно собирает host:port.
func TestHTTPConfig_Addr(t *testing.T) {
	t.Parallel()
	cfg := HTTPConfig{Host: "127.0.0.1", Port: "5000"}
	require.Equal(t, "127.0.0.1:5000", cfg.Addr())
}

// TestLoad_WithExplicitPath_OK — явный путь имеет высший приоритет.
func TestLoad_WithExplicitPath_OK(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yaml", sampleYAML)

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	require.Equal(t, "prod", cfg.Env)
	require.Equal(t, "127.0.0.1", cfg.HTTP.Host)
	require.Equal(t, "6000", cfg.HTTP.Port)
	require.Equal(t, "123:abc", cfg.Telegram.Token)
	require.Equal(t, 60, cfg.Telegram.PollTimeoutSec)
	require.Equal(t, "/var/lib/health-bot/storage.json", cfg.Storage.Path)
	require.Equal(t, "owm-key", cfg.Weather.APIKey)
	require.Equal(t, 20, cfg.Food.PageSize)
	require.Equal(t, 3, cfg.Reset.Hour)
	require.Equal(t, 7*time.Second, cfg.Timeouts.Service)
	require.Equal(t, 4*time.Second, cfg.Timeouts.Lookup)
}

// TestLoad_WithExplicitPath_FileDoesNotExist — явный путь на несуществующий файл.
func TestLoad_WithExplicitPath_FileDoesNotExist(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "missing.yaml")
	_, err := Load(missing)
	require.Error(t, err)
	require.Contains(t, err.Error(), "config file does not exist")
}

// TestLoad_WithExplicitPath_BrokenYAML — битый YAML по явному пути.
func TestLoad_WithExplicitPath_BrokenYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "broken.yaml", brokenYAML)

	_, err := Load(cfgPath)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to read config")
}

// TestLoad_WithCONFIG_PATH_OK — путь берётся из CONFIG_PATH; дефолты
// заполняют незаданные поля.
func TestLoad_WithCONFIG_PATH_OK(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "from_env_path.yaml", minimalYAML)
	t.Setenv("CONFIG_PATH", cfgPath)

	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "local", cfg.Env)
	require.Equal(t, "data/storage.json", cfg.Storage.Path)
	require.Equal(t, 30, cfg.Telegram.PollTimeoutSec)
	require.Equal(t, 10, cfg.Food.PageSize)
	require.Equal(t, 0, cfg.Reset.Hour)
	require.Equal(t, 5*time.Second, cfg.Timeouts.Service)
	require.Equal(t, 10*time.Second, cfg.Timeouts.Lookup)
}

// TestLoad_Validate_MissingToken — без токена конфигурация не проходит
// (env-required срабатывает ещё на этапе чтения).
func TestLoad_Validate_MissingToken(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "no_token.yaml", `
weather:
  api_key: "owm-key"
`)

	_, err := Load(cfgPath)
	require.Error(t, err)
}

// TestLoad_Validate_ResetHourOutOfRange — reset.hour вне [0, 23].
func TestLoad_Validate_ResetHourOutOfRange(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "bad_hour.yaml", `
telegram:
  token: "123:abc"
weather:
  api_key: "owm-key"
reset:
  hour: 24
`)

	_, err := Load(cfgPath)
	require.Error(t, err)
	require.Contains(t, err.Error(), "reset.hour")
}
