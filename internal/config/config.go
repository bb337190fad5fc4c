package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

var (
	// ErrReadConfig ошибка чтения файла конфигурации
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig некорректные значения конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Agenda   AgendaConfig   `toml:"agenda"`
	Events   EventsConfig   `toml:"events"`
}

type ServerConfig struct {
	HTTPPort        int      `toml:"http_port"`
	ReadTimeout     int      `toml:"read_timeout"`
	WriteTimeout    int      `toml:"write_timeout"`
	IdleTimeout     int      `toml:"idle_timeout"`
	ShutdownTimeout int      `toml:"shutdown_timeout"`
	AllowedOrigins  []string `toml:"allowed_origins"`
}

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
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AgendaConfig параметры расписания
type AgendaConfig struct {
	Timezone            string `toml:"timezone"`
	SlotDurationMinutes int    `toml:"slot_duration_minutes"`
	DayStartHour        int    `toml:"day_start_hour"`
	DayEndHour          int    `toml:"day_end_hour"`
	// SessionIdleMinutes время жизни сессии без обращений, 0 - без вытеснения
	SessionIdleMinutes int `toml:"session_idle_minutes"`
}

// Location часовой пояс, в котором считаются недели
func (a AgendaConfig) Location() (*time.Location, error) {
	return time.LoadLocation(a.Timezone)
}

// EventsConfig публикация событий о записях в Kafka
type EventsConfig struct {
	Enabled bool   `toml:"enabled"`
	Brokers string `toml:"brokers"`
	Topic   string `toml:"topic"`
}

// BrokerList брокеры через запятую
func (e EventsConfig) BrokerList() []string {
	var brokers []string
	for _, b := range strings.Split(e.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// Load читает TOML-файл, подгружает .env (если есть) и применяет переменные окружения SMC_*
func Load(path string) (*Config, error) {
	// .env необязателен
	_ = godotenv.Load()

	cfg := defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadConfig, err)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
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
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "smc_agenda_service",
		},
		Agenda: AgendaConfig{
			Timezone:            "UTC",
			SlotDurationMinutes: 60,
			DayStartHour:        8,
			DayEndHour:          22,
			SessionIdleMinutes:  120,
		},
		Events: EventsConfig{Topic: "agenda.appointments"},
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("SMC_DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("SMC_DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("SMC_KAFKA_BROKERS"); v != "" {
		cfg.Events.Brokers = v
	}
	if v := os.Getenv("SMC_LOG_LEVEL"); v != "" {
		cfg.Logs.Level = v
	}
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}
	if c.Database.Host == "" {
		return fmt.Errorf("%w: database.host is required", ErrInvalidConfig)
	}
	if _, err := c.Agenda.Location(); err != nil {
		return fmt.Errorf("%w: agenda.timezone: %v", ErrInvalidConfig, err)
	}
	if c.Agenda.SlotDurationMinutes <= 0 {
		return fmt.Errorf("%w: agenda.slot_duration_minutes must be positive", ErrInvalidConfig)
	}
	if c.Agenda.DayStartHour < 0 || c.Agenda.DayEndHour > 23 || c.Agenda.DayStartHour > c.Agenda.DayEndHour {
		return fmt.Errorf("%w: agenda day hours must satisfy 0 <= start <= end <= 23", ErrInvalidConfig)
	}
	if c.Agenda.SessionIdleMinutes < 0 {
		return fmt.Errorf("%w: agenda.session_idle_minutes must not be negative", ErrInvalidConfig)
	}
	if c.Events.Enabled && len(c.Events.BrokerList()) == 0 {
		return fmt.Errorf("%w: events.brokers is required when events are enabled", ErrInvalidConfig)
	}
	return nil
}
