package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Режимы выбора гидов при автоназначении
const (
	GuideSelectorLocal  = "local"
	GuideSelectorRemote = "remote"
)

var (
	// ErrReadConfig возвращается, если файл конфигурации не удалось прочитать
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig возвращается при некорректных значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	GuideSelector GuideSelectorConfig `toml:"guide_selector"`
	CORS          CORSConfig          `toml:"cors"`
	Schedules     SchedulesConfig     `toml:"schedules"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig параметры подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig параметры логирования
type LogsConfig struct {
	File  string `toml:"file"` // пустая строка - только stdout
	Level string `toml:"level"`
}

// MetricsConfig параметры Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// GuideSelectorConfig параметры стратегии автоназначения гидов
type GuideSelectorConfig struct {
	Mode               string `toml:"mode"` // local | remote
	URL                string `toml:"url"`
	Timeout            int    `toml:"timeout"` // секунды
	BreakerMaxFailures int    `toml:"breaker_max_failures"`
	BreakerOpenTimeout int    `toml:"breaker_open_timeout"` // секунды
}

// CORSConfig разрешенные источники для браузерной консоли
type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// SchedulesConfig параметры реестра проведений
type SchedulesConfig struct {
	// Timezone часовой пояс, в котором даты массового создания превращаются в моменты времени
	Timezone string `toml:"timezone"`
}

// Location загружает часовой пояс проведений
func (c SchedulesConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// Load читает конфигурацию из TOML файла, применяет значения по умолчанию и валидирует её
// Пароль БД можно переопределить переменной окружения DB_PASSWORD
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	if password, ok := os.LookupEnv("DB_PASSWORD"); ok {
		cfg.Database.Password = password
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "tourops-booking-service",
		},
		GuideSelector: GuideSelectorConfig{
			Mode:               GuideSelectorLocal,
			Timeout:            5,
			BreakerMaxFailures: 3,
			BreakerOpenTimeout: 10,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
		},
		Schedules: SchedulesConfig{
			Timezone: "UTC",
		},
	}
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("%w: database.dbname is required", ErrInvalidConfig)
	}
	if c.Database.User == "" {
		return fmt.Errorf("%w: database.user is required", ErrInvalidConfig)
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("%w: metrics.path must start with '/'", ErrInvalidConfig)
	}

	switch c.GuideSelector.Mode {
	case GuideSelectorLocal:
	case GuideSelectorRemote:
		if c.GuideSelector.URL == "" {
			return fmt.Errorf("%w: guide_selector.url is required in remote mode", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: guide_selector.mode must be %q or %q",
			ErrInvalidConfig, GuideSelectorLocal, GuideSelectorRemote)
	}

	if _, err := c.Schedules.Location(); err != nil {
		return fmt.Errorf("%w: schedules.timezone: %v", ErrInvalidConfig, err)
	}

	return nil
}
