package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Queue     QueueConfig
	JobsBoard JobsBoardConfig
	MN        MNConfig
	Log       LogConfig
	HTTP      HTTPConfig
	Scheduler SchedulerConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
	Port string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int // in minutes
	ConnMaxIdleTime int // in minutes
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// QueueConfig holds inbound event queue consumer settings
type QueueConfig struct {
	Key             string        // Redis list key the consumer reads from
	DeadLetterKey   string        // Redis list key for dead-lettered messages
	PollTimeout     time.Duration // BLPOP block timeout
	HandlerTimeout  time.Duration // Per-message processing deadline
	MaxReceiveCount int           // Deliveries before a message is dead-lettered
}

// JobsBoardConfig holds source Jobs Board API client settings
type JobsBoardConfig struct {
	BaseURL      string
	TokenURL     string
	ClientID     string
	ClientSecret string
	Timeout      time.Duration
}

// MNConfig holds downstream MN API client settings
type MNConfig struct {
	BaseURL      string
	TokenURL     string
	ClientID     string
	ClientSecret string
	Timeout      time.Duration
}

// HTTPConfig holds HTTP server configuration
type HTTPConfig struct {
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	IdleTimeout        time.Duration
	MaxHeaderBytes     int
	MaxBodySize        int64
	HealthCheckTimeout time.Duration
	TrustedProxies     []string
}

// SchedulerConfig holds reconciliation scheduler configuration
type SchedulerConfig struct {
	Enabled      bool
	CronSchedule string
	RunTimeout   time.Duration
	PageSize     int
}

// Load loads configuration from TOML file and environment variables
// Priority (highest to lowest):
// 1. Environment variables with JBI_ prefix (e.g., JBI_DATABASE_PASSWORD)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	// Set config file settings
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	// Enable environment variable override
	v.SetEnvPrefix("JBI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Build config struct
	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("database.host"),
			Port:            v.GetInt("database.port"),
			User:            v.GetString("database.user"),
			Password:        v.GetString("database.password"),
			DBName:          v.GetString("database.dbname"),
			SSLMode:         v.GetString("database.sslmode"),
			MaxOpenConns:    v.GetInt("database.max_open_conns"),
			MaxIdleConns:    v.GetInt("database.max_idle_conns"),
			ConnMaxLifetime: v.GetInt("database.conn_max_lifetime"),
			ConnMaxIdleTime: v.GetInt("database.conn_max_idle_time"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("redis.host"),
			Port:     v.GetInt("redis.port"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Queue: QueueConfig{
			Key:             v.GetString("queue.key"),
			DeadLetterKey:   v.GetString("queue.dead_letter_key"),
			PollTimeout:     v.GetDuration("queue.poll_timeout"),
			HandlerTimeout:  v.GetDuration("queue.handler_timeout"),
			MaxReceiveCount: v.GetInt("queue.max_receive_count"),
		},
		JobsBoard: JobsBoardConfig{
			BaseURL:      v.GetString("jobsboard.base_url"),
			TokenURL:     v.GetString("jobsboard.token_url"),
			ClientID:     v.GetString("jobsboard.client_id"),
			ClientSecret: v.GetString("jobsboard.client_secret"),
			Timeout:      v.GetDuration("jobsboard.timeout"),
		},
		MN: MNConfig{
			BaseURL:      v.GetString("mn.base_url"),
			TokenURL:     v.GetString("mn.token_url"),
			ClientID:     v.GetString("mn.client_id"),
			ClientSecret: v.GetString("mn.client_secret"),
			Timeout:      v.GetDuration("mn.timeout"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:        v.GetDuration("http.read_timeout"),
			WriteTimeout:       v.GetDuration("http.write_timeout"),
			IdleTimeout:        v.GetDuration("http.idle_timeout"),
			MaxHeaderBytes:     v.GetInt("http.max_header_bytes"),
			MaxBodySize:        v.GetInt64("http.max_body_size"),
			HealthCheckTimeout: v.GetDuration("http.health_check_timeout"),
			TrustedProxies:     v.GetStringSlice("http.trusted_proxies"),
		},
		Scheduler: SchedulerConfig{
			Enabled:      v.GetBool("scheduler.enabled"),
			CronSchedule: v.GetString("scheduler.cron_schedule"),
			RunTimeout:   v.GetDuration("scheduler.run_timeout"),
			PageSize:     v.GetInt("scheduler.page_size"),
		},
	}

	// Apply defaults for empty values
	applyDefaults(cfg)

	// Validate configuration
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "integration-bridge"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.App.Port == "" {
		cfg.App.Port = "8080"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "postgres"
	}
	if cfg.Database.DBName == "" {
		cfg.Database.DBName = "integration_bridge"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 25
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 60
	}
	if cfg.Database.ConnMaxIdleTime == 0 {
		cfg.Database.ConnMaxIdleTime = 30
	}
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.Queue.Key == "" {
		cfg.Queue.Key = "jobsboard:integration:events"
	}
	if cfg.Queue.DeadLetterKey == "" {
		cfg.Queue.DeadLetterKey = "jobsboard:integration:events:dlq"
	}
	if cfg.Queue.PollTimeout == 0 {
		cfg.Queue.PollTimeout = 5 * time.Second
	}
	if cfg.Queue.HandlerTimeout == 0 {
		cfg.Queue.HandlerTimeout = 60 * time.Second
	}
	if cfg.Queue.MaxReceiveCount == 0 {
		cfg.Queue.MaxReceiveCount = 3
	}
	if cfg.JobsBoard.Timeout == 0 {
		cfg.JobsBoard.Timeout = 30 * time.Second
	}
	if cfg.MN.Timeout == 0 {
		cfg.MN.Timeout = 30 * time.Second
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
	if cfg.HTTP.ReadTimeout == 0 {
		cfg.HTTP.ReadTimeout = 15 * time.Second
	}
	if cfg.HTTP.WriteTimeout == 0 {
		cfg.HTTP.WriteTimeout = 15 * time.Second
	}
	if cfg.HTTP.IdleTimeout == 0 {
		cfg.HTTP.IdleTimeout = 60 * time.Second
	}
	if cfg.HTTP.MaxHeaderBytes == 0 {
		cfg.HTTP.MaxHeaderBytes = 1 << 20 // 1MB
	}
	if cfg.HTTP.MaxBodySize == 0 {
		cfg.HTTP.MaxBodySize = 1 << 20 // 1MB
	}
	if cfg.HTTP.HealthCheckTimeout == 0 {
		cfg.HTTP.HealthCheckTimeout = time.Second
	}
	if cfg.Scheduler.CronSchedule == "" {
		cfg.Scheduler.CronSchedule = "0 3 * * *"
	}
	if cfg.Scheduler.RunTimeout == 0 {
		cfg.Scheduler.RunTimeout = 30 * time.Minute
	}
	if cfg.Scheduler.PageSize == 0 {
		cfg.Scheduler.PageSize = 50
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	// Validate connection pool settings
	if c.Database.MaxOpenConns <= 0 {
		return fmt.Errorf("database.max_open_conns must be positive")
	}
	if c.Database.MaxIdleConns < 0 {
		return fmt.Errorf("database.max_idle_conns cannot be negative")
	}
	if c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		return fmt.Errorf("database.max_idle_conns (%d) cannot exceed database.max_open_conns (%d)",
			c.Database.MaxIdleConns, c.Database.MaxOpenConns)
	}
	if c.Queue.MaxReceiveCount < 1 {
		return fmt.Errorf("queue.max_receive_count must be at least 1")
	}
	if c.Scheduler.PageSize < 1 {
		return fmt.Errorf("scheduler.page_size must be at least 1")
	}

	// Production-specific validations
	if c.App.Env == "production" {
		if c.Database.Password == "" {
			return fmt.Errorf("database.password is required in production")
		}
		if c.Database.SSLMode == "disable" {
			return fmt.Errorf("database.sslmode cannot be 'disable' in production")
		}
		if c.JobsBoard.BaseURL == "" || c.JobsBoard.ClientID == "" || c.JobsBoard.ClientSecret == "" {
			return fmt.Errorf("jobsboard.base_url, jobsboard.client_id and jobsboard.client_secret are required in production")
		}
		if c.MN.BaseURL == "" || c.MN.ClientID == "" || c.MN.ClientSecret == "" {
			return fmt.Errorf("mn.base_url, mn.client_id and mn.client_secret are required in production")
		}
	}

	return nil
}

// DSN returns the database connection string with properly escaped values
func (d *DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   d.DBName,
	}
	q := u.Query()
	q.Set("sslmode", d.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

// Addr returns the Redis address in host:port form
func (r *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}
