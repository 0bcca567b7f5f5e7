// config предоставляет структуру конфигурации сервиса и функции
// загрузки из файла/переменных окружения с предсказуемым приоритетом.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация сервиса.
// Источники значений (по убыванию приоритета):
//  1. явный путь через флаг --config;
//  2. путь в переменной окружения CONFIG_PATH;
//  3. файл local.yaml из рабочей директории;
//  4. переменные окружения (cleanenv).
type Config struct {
	Env      string        `yaml:"env" env:"ENV" env-default:"local"`
	HTTP     HTTPConfig    `yaml:"http"`
	Ops      OpsConfig     `yaml:"ops"`
	OAuth    OAuthConfig   `yaml:"oauth"`
	DB       DBConfig      `yaml:"db"`
	Redis    RedisConfig   `yaml:"redis"`
	Timeouts TimeoutConfig `yaml:"timeouts"`
	Janitor  JanitorConfig `yaml:"janitor"`
}

// HTTPConfig — сетевые настройки публичного HTTP API.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"5050"`
}

// OpsConfig — сетевые настройки служебного HTTP (/livez, /healthz, /metrics).
type OpsConfig struct {
	Host string `yaml:"host" env:"OPS_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"OPS_PORT" env-default:"5051"`
}

// Addr возвращает адрес в формате host:port.
func (c HTTPConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// Addr возвращает адрес в формате host:port.
func (c OpsConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// OAuthConfig содержит параметры выпуска кодов и токенов.
type OAuthConfig struct {
	CodeTTL        time.Duration `yaml:"code_ttl" env:"OAUTH_CODE_TTL" env-default:"10m"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"OAUTH_ACCESS_TOKEN_TTL" env-default:"1h"`
	// BcryptCost — стоимость bcrypt для паролей пользователей и секретов клиентов.
	BcryptCost int `yaml:"bcrypt_cost" env:"OAUTH_BCRYPT_COST" env-default:"10"`
}

// DBConfig — настройки подключения к базе данных.
type DBConfig struct {
	DatabaseURL string `yaml:"db_url" env:"DATABASE_URL" env-required:"true"`
}

// RedisConfig — кэш access-токенов. Пустой RedisURL отключает кэш.
type RedisConfig struct {
	RedisURL string        `yaml:"redis_url" env:"REDIS_URL"`
	TTL      time.Duration `yaml:"ttl" env:"REDIS_TTL" env-default:"30s"`
	Prefix   string        `yaml:"prefix" env:"REDIS_PREFIX" env-default:"oauth:at:"`
}

// TimeoutConfig — таймауты сервиса.
type TimeoutConfig struct {
	Request  time.Duration `yaml:"request" env:"TIMEOUT_REQUEST" env-default:"5s"`
	Shutdown time.Duration `yaml:"shutdown" env:"TIMEOUT_SHUTDOWN" env-default:"10s"`
}

// JanitorConfig — фоновая очистка просроченных строк.
// Period <= 0 отключает очистку. TokenRetention <= 0 оставляет пары токенов
// нетронутыми: refresh-токен живёт, пока его не заменят ротацией.
type JanitorConfig struct {
	Period         time.Duration `yaml:"period" env:"JANITOR_PERIOD" env-default:"30m"`
	TokenRetention time.Duration `yaml:"token_retention" env:"JANITOR_TOKEN_RETENTION" env-default:"0s"`
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
// После чтения файла ENV-переменные накладываются поверх значений из YAML.
func Load(path string) (*Config, error) {
	var cfg Config

	// чтение файла + overlay ENV.
	tryRead := func(p string) (*Config, error) {
		if _, err := os.Stat(p); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("config file does not exist: %s", p)
			}

			return nil, fmt.Errorf("config file %q stat failed: %w", p, err)
		}

		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}

		return &cfg, nil
	}

	// 1) Явный путь.
	if path != "" {
		return tryRead(path)
	}

	// 2) CONFIG_PATH.
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		return tryRead(envPath)
	}

	// 3) ./local.yaml.
	if _, err := os.Stat("local.yaml"); err == nil {
		return tryRead("local.yaml")
	}

	// 4) Только ENV.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}

	return &cfg, nil
}
