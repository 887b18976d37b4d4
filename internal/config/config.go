package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for our application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Snapshot  SnapshotConfig  `mapstructure:"snapshot"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Health    HealthConfig    `mapstructure:"health"`
}

type ServerConfig struct {
	Port         string `mapstructure:"SERVER_PORT"`
	Host         string `mapstructure:"SERVER_HOST"`
	Env          string `mapstructure:"ENV"`
	ReadTimeout  string `mapstructure:"SERVER_READ_TIMEOUT"`
	WriteTimeout string `mapstructure:"SERVER_WRITE_TIMEOUT"`
}

type DatabaseConfig struct {
	URL          string `mapstructure:"DATABASE_URL"`
	MaxOpenConns int    `mapstructure:"DATABASE_MAX_OPEN_CONNS"`
	MaxIdleConns int    `mapstructure:"DATABASE_MAX_IDLE_CONNS"`
	ConnLifetime string `mapstructure:"DATABASE_CONN_LIFETIME"`
}

type RedisConfig struct {
	Host     string `mapstructure:"REDIS_HOST"`
	Port     string `mapstructure:"REDIS_PORT"`
	Password string `mapstructure:"REDIS_PASSWORD"`
	DB       int    `mapstructure:"REDIS_DB"`
}

// SnapshotConfig controls where the application collection snapshot lives.
type SnapshotConfig struct {
	Key string `mapstructure:"SNAPSHOT_KEY"`
}

type SchedulerConfig struct {
	StatsInterval string `mapstructure:"SCHEDULER_STATS_INTERVAL"`
	UnreadMaxAge  string `mapstructure:"SCHEDULER_UNREAD_MAX_AGE"`
	Timezone      string `mapstructure:"SCHEDULER_TIMEZONE"`
	StatsCacheKey string `mapstructure:"SCHEDULER_STATS_CACHE_KEY"`
	StatsCacheTTL string `mapstructure:"SCHEDULER_STATS_CACHE_TTL"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"LOG_LEVEL"`
	Format string `mapstructure:"LOG_FORMAT"`
}

type HealthConfig struct {
	Timeout string `mapstructure:"HEALTH_CHECK_TIMEOUT"`
}

// Load reads configuration from environment variables and files
func Load() (*Config, error) {
	// .env is optional; environment variables win either way
	_ = godotenv.Load()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("SERVER_READ_TIMEOUT", "10s")
	viper.SetDefault("SERVER_WRITE_TIMEOUT", "10s")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_LIFETIME", "30m")
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("SNAPSHOT_KEY", "bank-loan-applications")
	viper.SetDefault("SCHEDULER_STATS_INTERVAL", "@every 5m")
	viper.SetDefault("SCHEDULER_UNREAD_MAX_AGE", "24h")
	viper.SetDefault("SCHEDULER_TIMEZONE", "Asia/Kolkata")
	viper.SetDefault("SCHEDULER_STATS_CACHE_KEY", "dashboard:stats")
	viper.SetDefault("SCHEDULER_STATS_CACHE_TTL", "10m")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "json")
	viper.SetDefault("HEALTH_CHECK_TIMEOUT", "5s")

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}

	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	if c.Snapshot.Key == "" {
		return fmt.Errorf("SNAPSHOT_KEY is required")
	}

	for name, value := range map[string]string{
		"SERVER_READ_TIMEOUT":       c.Server.ReadTimeout,
		"SERVER_WRITE_TIMEOUT":      c.Server.WriteTimeout,
		"DATABASE_CONN_LIFETIME":    c.Database.ConnLifetime,
		"SCHEDULER_UNREAD_MAX_AGE":  c.Scheduler.UnreadMaxAge,
		"SCHEDULER_STATS_CACHE_TTL": c.Scheduler.StatsCacheTTL,
		"HEALTH_CHECK_TIMEOUT":      c.Health.Timeout,
	} {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("%s must be a valid duration: %w", name, err)
		}
	}

	return nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development" || c.Server.Env == "dev"
}

// IsProduction returns true if running in production environment
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production" || c.Server.Env == "prod"
}

// RedisAddr returns the host:port address of the redis instance
func (c *Config) RedisAddr() string {
	return c.Redis.Host + ":" + c.Redis.Port
}

// GetReadTimeout returns the server read timeout as duration
func (c *Config) GetReadTimeout() time.Duration {
	d, _ := time.ParseDuration(c.Server.ReadTimeout)
	return d
}

// GetWriteTimeout returns the server write timeout as duration
func (c *Config) GetWriteTimeout() time.Duration {
	d, _ := time.ParseDuration(c.Server.WriteTimeout)
	return d
}

// GetConnLifetime returns the database connection lifetime as duration
func (c *Config) GetConnLifetime() time.Duration {
	d, _ := time.ParseDuration(c.Database.ConnLifetime)
	return d
}

// GetUnreadMaxAge returns how long an application may stay unread before the
// scheduler flags it
func (c *Config) GetUnreadMaxAge() time.Duration {
	d, _ := time.ParseDuration(c.Scheduler.UnreadMaxAge)
	return d
}

// GetStatsCacheTTL returns the TTL for the cached dashboard stats block
func (c *Config) GetStatsCacheTTL() time.Duration {
	d, _ := time.ParseDuration(c.Scheduler.StatsCacheTTL)
	return d
}

// GetHealthTimeout returns the health check timeout as duration
func (c *Config) GetHealthTimeout() time.Duration {
	d, _ := time.ParseDuration(c.Health.Timeout)
	return d
}
