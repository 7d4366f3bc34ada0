package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix префикс переменных окружения, переопределяющих значения из файла
// Например COTTAGE_DB_HOST, COTTAGE_SERVER_HTTP_PORT, COTTAGE_DB_DB_NAME
const EnvPrefix = "COTTAGE"

var (
	ErrReadFile = errors.New("config: failed to read config file")
	ErrEnv      = errors.New("config: failed to apply environment overrides")
	ErrInvalid  = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server          ServerConfig          `toml:"server" envconfig:"SERVER"`
	Database        DatabaseConfig        `toml:"database" envconfig:"DB"`
	Logs            LogsConfig            `toml:"logs" envconfig:"LOGS"`
	Metrics         MetricsConfig         `toml:"metrics" envconfig:"METRICS"`
	CustomerService CustomerServiceConfig `toml:"customer_service" envconfig:"CUSTOMER_SERVICE"`
	App             AppConfig             `toml:"app" envconfig:"APP"`
	Invoices        InvoicesConfig        `toml:"invoices" envconfig:"INVOICES"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" split_words:"true"`
	ReadTimeout     int `toml:"read_timeout" split_words:"true"`
	WriteTimeout    int `toml:"write_timeout" split_words:"true"`
	IdleTimeout     int `toml:"idle_timeout" split_words:"true"`
	ShutdownTimeout int `toml:"shutdown_timeout" split_words:"true"`
}

// DatabaseConfig подключение к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host" split_words:"true"`
	Port            int    `toml:"port" split_words:"true"`
	User            string `toml:"user" split_words:"true"`
	Password        string `toml:"password" split_words:"true"`
	DBName          string `toml:"dbname" split_words:"true"`
	SSLMode         string `toml:"sslmode" split_words:"true"`
	MaxOpenConns    int    `toml:"max_open_conns" split_words:"true"`
	MaxIdleConns    int    `toml:"max_idle_conns" split_words:"true"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" split_words:"true"` // секунды
	AutoMigrate     bool   `toml:"auto_migrate" split_words:"true"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level" split_words:"true"`
	File  string `toml:"file" split_words:"true"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" split_words:"true"`
	Path        string `toml:"path" split_words:"true"`
	ServiceName string `toml:"service_name" split_words:"true"`
}

// CustomerServiceConfig клиент сервиса клиентов
type CustomerServiceConfig struct {
	URL     string `toml:"url" split_words:"true"`
	Timeout int    `toml:"timeout" split_words:"true"` // секунды
}

// AppConfig бизнес-настройки
type AppConfig struct {
	// Timezone часовой пояс, в котором определяется "сегодня"
	Timezone string `toml:"timezone" split_words:"true"`
}

// InvoicesConfig настройки выставления счетов
type InvoicesConfig struct {
	DueDays int `toml:"due_days" split_words:"true"`
}

// Location загружает часовой пояс бизнеса
func (a AppConfig) Location() (*time.Location, error) {
	return time.LoadLocation(a.Timezone)
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "kesamokki",
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
			ServiceName: "cottage-booking",
		},
		CustomerService: CustomerServiceConfig{
			URL:     "http://localhost:8081",
			Timeout: 5,
		},
		App: AppConfig{
			Timezone: "Europe/Helsinki",
		},
		Invoices: InvoicesConfig{
			DueDays: 14,
		},
	}
}

// Load читает конфигурацию: значения по умолчанию, затем TOML файл path (если существует),
// затем .env и переменные окружения с префиксом COTTAGE
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrReadFile, path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadFile, path, err)
	}

	// .env не обязателен
	_ = godotenv.Load()

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEnv, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет обязательные значения
func (c *Config) Validate() error {
	switch {
	case c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535:
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalid)
	case c.Database.Host == "":
		return fmt.Errorf("%w: database.host is required", ErrInvalid)
	case c.Database.DBName == "":
		return fmt.Errorf("%w: database.dbname is required", ErrInvalid)
	case c.CustomerService.URL == "":
		return fmt.Errorf("%w: customer_service.url is required", ErrInvalid)
	case c.Invoices.DueDays < 0:
		return fmt.Errorf("%w: invoices.due_days must not be negative", ErrInvalid)
	}

	if _, err := c.App.Location(); err != nil {
		return fmt.Errorf("%w: app.timezone: %w", ErrInvalid, err)
	}

	switch c.Logs.Level {
	case "debug", "info", "warn", "warning", "error", "":
	default:
		return fmt.Errorf("%w: unknown logs.level %q", ErrInvalid, c.Logs.Level)
	}

	return nil
}
