// config предоставляет структуру конфигурации health-bot
// и функции загрузки из YAML/ENV с предсказуемым приоритетом.
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация сервиса.
// Приоритет источников:
//  1. явный путь, переданный в MustLoad/Load;
//  2. переменная окружения CONFIG_PATH;
//  3. файл ./local.yaml из рабочей директории;
//  4. переменные окружения.
type Config struct {
	Env      string         `yaml:"env"      env:"ENV" env-default:"local"`
	HTTP     HTTPConfig     `yaml:"http"`
	Telegram TelegramConfig `yaml:"telegram"`
	Storage  StorageConfig  `yaml:"storage"`
	Weather  WeatherConfig  `yaml:"weather"`
	Food     FoodConfig     `yaml:"food"`
	Reset    ResetConfig    `yaml:"reset"`
	Timeouts TimeoutConfig  `yaml:"timeouts"`
}

// HTTPConfig — сетевые настройки вспомогательного HTTP-сервера
// (liveness/readiness/metrics).
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"5000"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// TelegramConfig — настройки Telegram-транспорта.
type TelegramConfig struct {
	Token string `yaml:"token" env:"TELEGRAM_BOT_TOKEN" env-required:"true"`
	// Таймаут long-polling запроса GetUpdates, секунды.
	PollTimeoutSec int `yaml:"poll_timeout_sec" env:"TELEGRAM_POLL_TIMEOUT" env-default:"30"`
}

// StorageConfig — путь к файлу хранилища.
type StorageConfig struct {
	Path string `yaml:"path" env:"STORAGE_PATH" env-default:"data/storage.json"`
}

// WeatherConfig — настройки клиента OpenWeather.
type WeatherConfig struct {
	BaseURL string `yaml:"base_url" env:"WEATHER_BASE_URL" env-default:""`
	APIKey  string `yaml:"api_key"  env:"WEATHER_API_KEY" env-required:"true"`
}

// FoodConfig — настройки клиента OpenFoodFacts.
type FoodConfig struct {
	BaseURL  string `yaml:"base_url"  env:"FOOD_BASE_URL" env-default:""`
	PageSize int    `yaml:"page_size" env:"FOOD_PAGE_SIZE" env-default:"10"`
}

// ResetConfig — параметры суточного сброса.
type ResetConfig struct {
	// Локальный час срабатывания, [0, 23]. По умолчанию полночь.
	Hour int `yaml:"hour" env:"RESET_HOUR" env-default:"0"`
}

// TimeoutConfig — таймауты сервиса.
type TimeoutConfig struct {
	// Общий таймаут обработки одного апдейта/запроса.
	Service time.Duration `yaml:"service" env:"SERVICE_TIMEOUT" env-default:"5s"`
	// Таймаут одного внешнего запроса (погода/еда).
	Lookup time.Duration `yaml:"lookup" env:"LOOKUP_TIMEOUT" env-default:"10s"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
func Load(path string) (*Config, error) {
	var cfg Config

	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file does not exist: %s", p)
		}
		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		return &cfg, nil
	}

	// 1) Явный путь.
	if path != "" {
		c, err := tryRead(path)
		if err != nil {
			return nil, err
		}
		if err := c.validate(); err != nil {
			return nil, err
		}
		return c, nil
	}

	// 2) CONFIG_PATH.
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		c, err := tryRead(envPath)
		if err != nil {
			return nil, err
		}
		if err := c.validate(); err != nil {
			return nil, err
		}
		return c, nil
	}

	// 3) ./local.yaml.
	if _, err := os.Stat("local.yaml"); err == nil {
		if err := cleanenv.ReadConfig("local.yaml", &cfg); err != nil {
			return nil, fmt.Errorf("failed to read local.yaml: %w", err)
		}
		if err := cfg.validate(); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	// 4) Только ENV.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate — базовая валидация значений.
func (c *Config) validate() error {
	if c.Telegram.Token == "" {
		return fmt.Errorf("telegram.token is required")
	}
	if c.Telegram.PollTimeoutSec <= 0 {
		return fmt.Errorf("telegram.poll_timeout_sec must be > 0")
	}
	if c.Storage.Path == "" {
		return fmt.Errorf("storage.path is required")
	}
	if c.Weather.APIKey == "" {
		return fmt.Errorf("weather.api_key is required")
	}
	if c.Food.PageSize <= 0 {
		return fmt.Errorf("food.page_size must be > 0")
	}
	if c.Reset.Hour < 0 || c.Reset.Hour > 23 {
		return fmt.Errorf("reset.hour must be in [0, 23]")
	}
	if c.Timeouts.Service <= 0 {
		return fmt.Errorf("timeouts.service must be > 0")
	}
	if c.Timeouts.Lookup <= 0 {
		return fmt.Errorf("timeouts.lookup must be > 0")
	}
	return nil
}
