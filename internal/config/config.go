package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Database   DatabaseConfig   `toml:"database"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Scheduling SchedulingConfig `toml:"scheduling"`
	Client     ClientConfig     `toml:"client"`
}

// ServerConfig настройки HTTP сервера, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int      `toml:"http_port"`
	ReadTimeout     int      `toml:"read_timeout"`
	WriteTimeout    int      `toml:"write_timeout"`
	IdleTimeout     int      `toml:"idle_timeout"`
	ShutdownTimeout int      `toml:"shutdown_timeout"`
	AllowedOrigins  []string `toml:"allowed_origins"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`

	// URL переопределяет остальные поля (DATABASE_DSN)
	URL string `toml:"url"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// SchedulingConfig настройки расписания по умолчанию
// Время смены задается в виде "12:00 PM" или "12:00"
type SchedulingConfig struct {
	ShiftStart        string `toml:"shift_start"`
	ShiftEnd          string `toml:"shift_end"`
	IntervalMinutes   int    `toml:"interval_minutes"`
	TurnaroundMinutes int    `toml:"turnaround_minutes"`
	BufferMinutes     int    `toml:"buffer_minutes"`

	// Таймаут внешних вызовов при бронировании, секунды
	CallTimeout int `toml:"call_timeout"`
}

// ClientConfig настройки клиента API бронирований
type ClientConfig struct {
	BaseURL      string `toml:"base_url"`
	RestaurantID int64  `toml:"restaurant_id"`
	Timeout      int    `toml:"timeout"`
}

// DSN собирает строку подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// DefaultHours возвращает настройки смены для ресторанов без сохраненных настроек
func (c SchedulingConfig) DefaultHours() (domain.OperatingHours, error) {
	start, err := types.ParseDisplayTime(c.ShiftStart)
	if err != nil {
		return domain.OperatingHours{}, fmt.Errorf("scheduling.shift_start: %w", err)
	}
	end, err := types.ParseDisplayTime(c.ShiftEnd)
	if err != nil {
		return domain.OperatingHours{}, fmt.Errorf("scheduling.shift_end: %w", err)
	}

	return domain.OperatingHours{
		ShiftStart:        start,
		ShiftEnd:          end,
		IntervalMinutes:   c.IntervalMinutes,
		TurnaroundMinutes: c.TurnaroundMinutes,
		BufferMinutes:     c.BufferMinutes,
	}, nil
}

// CallTimeoutDuration возвращает таймаут внешних вызовов
func (c SchedulingConfig) CallTimeoutDuration() time.Duration {
	return time.Duration(c.CallTimeout) * time.Second
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
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
			DBName:          "reservations",
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
			ServiceName: "reservation-service",
		},
		Scheduling: SchedulingConfig{
			ShiftStart:        domain.DefaultShiftStart.String(),
			ShiftEnd:          domain.DefaultShiftEnd.String(),
			IntervalMinutes:   domain.DefaultIntervalMinutes,
			TurnaroundMinutes: domain.DefaultTurnaroundMinutes,
			BufferMinutes:     domain.DefaultBufferMinutes,
			CallTimeout:       10,
		},
		Client: ClientConfig{
			BaseURL: "http://localhost:8080",
			Timeout: 10,
		},
	}
}

// Load читает TOML файл поверх значений по умолчанию, затем .env и переменные окружения
// Отсутствующий файл не является ошибкой
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
		}
	}

	// .env опционален
	_ = godotenv.Load()

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		cfg.Database.URL = dsn
	}
	if port := os.Getenv("HTTP_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("%w: HTTP_PORT=%q", ErrInvalidConfig, port)
		}
		cfg.Server.HTTPPort = p
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Logs.Level = level
	}
	if url := os.Getenv("RESERVATION_API_URL"); url != "" {
		cfg.Client.BaseURL = url
	}
	return nil
}
