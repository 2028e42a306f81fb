package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// ErrInvalidConfig возвращается при некорректной конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config корневая конфигурация сервиса (config.toml)
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Redis    RedisConfig    `toml:"redis"`
	SMTP     SMTPConfig     `toml:"smtp"`
	Payments PaymentsConfig `toml:"payments"`
	Booking  BookingConfig  `toml:"booking"`
	Plans    []PlanConfig   `toml:"plans"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки PostgreSQL
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

// RedisConfig очередь уведомлений
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	QueueKey string `toml:"queue_key"`
}

// SMTPConfig отправка писем воркером уведомлений
type SMTPConfig struct {
	Enabled  bool   `toml:"enabled"`
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	From     string `toml:"from"`
}

// PaymentsConfig платёжный шлюз (Stripe)
type PaymentsConfig struct {
	Enabled    bool   `toml:"enabled"`
	SecretKey  string `toml:"secret_key"`
	Currency   string `toml:"currency"`
	SuccessURL string `toml:"success_url"`
	CancelURL  string `toml:"cancel_url"`
}

// BookingConfig правила бронирования
type BookingConfig struct {
	Timezone           string `toml:"timezone"`
	MaxAdvanceDays     int    `toml:"max_advance_days"`
	RateLimitPerMinute int    `toml:"rate_limit_per_minute"`
	RateLimitBurst     int    `toml:"rate_limit_burst"`
	RenewalPeriodDays  int    `toml:"renewal_period_days"`
	RenewalBannerDays  int    `toml:"renewal_banner_days"`
}

// Location часовой пояс, в котором считается "сегодня"
func (b BookingConfig) Location() (*time.Location, error) {
	if b.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(b.Timezone)
}

// PlanConfig тариф: лимит ресурсов (-1 = без ограничений)
type PlanConfig struct {
	Tier         string `toml:"tier"`
	MaxResources int    `toml:"max_resources"`
	TrialDays    int    `toml:"trial_days"`
}

// Load читает .env (если есть), config.toml и переменные окружения
func Load(path string) (*Config, error) {
	// .env необязателен
	_ = godotenv.Load()

	cfg := defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
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
		Logs:    LogsConfig{Level: "info"},
		Metrics: MetricsConfig{Path: "/metrics", ServiceName: "agenda"},
		Redis:   RedisConfig{Addr: "localhost:6379", QueueKey: "agenda:emails"},
		Payments: PaymentsConfig{
			Currency: "usd",
		},
		Booking: BookingConfig{
			MaxAdvanceDays:     60,
			RateLimitPerMinute: 30,
			RateLimitBurst:     10,
			RenewalPeriodDays:  30,
			RenewalBannerDays:  7,
		},
	}
}

// applyEnv переопределяет секреты из окружения
func applyEnv(cfg *Config) {
	if v := os.Getenv("DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Database.Port = port
		}
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("SMTP_PASSWORD"); v != "" {
		cfg.SMTP.Password = v
	}
	if v := os.Getenv("STRIPE_SECRET_KEY"); v != "" {
		cfg.Payments.SecretKey = v
	}
}

// Validate проверяет обязательные поля и диапазоны
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port out of range", ErrInvalidConfig)
	}
	if c.Database.DBName == "" || c.Database.User == "" {
		return fmt.Errorf("%w: database.dbname and database.user are required", ErrInvalidConfig)
	}
	if c.Payments.Enabled && c.Payments.SecretKey == "" {
		return fmt.Errorf("%w: payments.secret_key is required when payments are enabled", ErrInvalidConfig)
	}
	if c.SMTP.Enabled && (c.SMTP.Host == "" || c.SMTP.From == "") {
		return fmt.Errorf("%w: smtp.host and smtp.from are required when smtp is enabled", ErrInvalidConfig)
	}
	if c.Booking.MaxAdvanceDays < 0 {
		return fmt.Errorf("%w: booking.max_advance_days must be >= 0", ErrInvalidConfig)
	}
	if _, err := c.Booking.Location(); err != nil {
		return fmt.Errorf("%w: booking.timezone: %v", ErrInvalidConfig, err)
	}
	if len(c.Plans) == 0 {
		return fmt.Errorf("%w: at least one [[plans]] entry is required", ErrInvalidConfig)
	}
	for _, p := range c.Plans {
		if p.Tier == "" || p.MaxResources < -1 {
			return fmt.Errorf("%w: plan %q has invalid max_resources %d", ErrInvalidConfig, p.Tier, p.MaxResources)
		}
	}
	return nil
}

// PlanQuotas лимиты ресурсов по тарифам
func (c *Config) PlanQuotas() domain.PlanQuotas {
	quotas := make(domain.PlanQuotas, len(c.Plans))
	for _, p := range c.Plans {
		quotas[domain.PlanTier(p.Tier)] = p.MaxResources
	}
	return quotas
}

// TrialDays длительность пробного периода тарифа
func (c *Config) TrialDays(tier domain.PlanTier) int {
	for _, p := range c.Plans {
		if domain.PlanTier(p.Tier) == tier {
			return p.TrialDays
		}
	}
	return 0
}
