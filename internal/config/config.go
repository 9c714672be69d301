// internal/config/config.go
package config

import "fmt"

// Config is the process-wide configuration, resolved once in main and
// injected everywhere. Nothing reads the environment after Load returns.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Database  PostgresConfig  `mapstructure:"database"`
	Queue     QueueConfig     `mapstructure:"queue"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Cron      CronConfig      `mapstructure:"cron"`
	Mailer    MailerConfig    `mapstructure:"mailer"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	BaseURL     string `mapstructure:"base_url"` // used to build tracking pixel links
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Database string `mapstructure:"database"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	SSLMode  string `mapstructure:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type QueueConfig struct {
	URL  string `mapstructure:"url"`
	Name string `mapstructure:"name"`
}

type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
	// AdminEmails is the allow-list for privileged routes. When empty the
	// earliest-registered user is treated as admin (bootstrap convenience).
	AdminEmails []string `mapstructure:"admin_emails"`
}

type CronConfig struct {
	Token string `mapstructure:"token"`
	// MaxDurationSeconds bounds triggered jobs, which are allowed to run
	// far longer than interactive requests.
	MaxDurationSeconds int `mapstructure:"max_duration_seconds"`
}

type MailerConfig struct {
	Region    string `mapstructure:"region"`
	FromEmail string `mapstructure:"from_email"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowSeconds int `mapstructure:"window_seconds"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
