// Package config holds the maxx service configuration.
package config

import (
	"errors"
	"fmt"
	"time"

	infraconfig "github.com/growlocal360/maxx-energy/infrastructure/config"
)

const (
	defaultServerPort     = 8080
	defaultJWTExpiration  = 12 * time.Hour
	defaultCookieName     = "maxx_session"
	defaultSiteName       = "MAXX Energy Services"
	defaultSiteBaseURL    = "http://localhost:8080"
	minJWTSecretLength    = 32
	defaultConfigFileName = "config.yml"

	defaultContactPerMinute = 5
	defaultContactBurst     = 3
)

// DefaultPath is the config path used when neither --config nor
// CONFIG_PATH is set.
func DefaultPath() string {
	return infraconfig.GetConfigPath(defaultConfigFileName)
}

type Config struct {
	Debug    bool                       `env:"APP_DEBUG" yaml:"debug"`
	Server   infraconfig.ServerConfig   `yaml:"server"`
	Database infraconfig.DatabaseConfig `yaml:"database"`
	Redis    infraconfig.RedisConfig    `yaml:"redis"`
	Auth     AuthConfig                 `yaml:"auth"`
	Logging  infraconfig.LoggingConfig  `yaml:"logging"`
	Site     SiteConfig                 `yaml:"site"`
	Contact  ContactConfig              `yaml:"contact"`
}

// AuthConfig holds the single admin account and session token settings.
type AuthConfig struct {
	Username      string        `env:"AUTH_USERNAME"       yaml:"username"`
	Password      string        `env:"AUTH_PASSWORD"       yaml:"password"`
	JWTSecret     string        `env:"AUTH_JWT_SECRET"     yaml:"jwt_secret"`
	JWTExpiration time.Duration `env:"AUTH_JWT_EXPIRATION" yaml:"jwt_expiration"`
	CookieName    string        `env:"AUTH_COOKIE_NAME"    yaml:"cookie_name"`
	CookieSecure  bool          `env:"AUTH_COOKIE_SECURE"  yaml:"cookie_secure"`
}

type SiteConfig struct {
	Name    string `env:"SITE_NAME"     yaml:"name"`
	BaseURL string `env:"SITE_BASE_URL" yaml:"base_url"`
}

// ContactConfig throttles the public contact form per client IP.
type ContactConfig struct {
	RatePerMinute int `env:"CONTACT_RATE_PER_MINUTE" yaml:"rate_per_minute"`
	Burst         int `env:"CONTACT_BURST"           yaml:"burst"`
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if c.Redis.Enabled {
		if err := infraconfig.ValidateRequired("redis.address", c.Redis.Address); err != nil {
			return err
		}
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	return c.Auth.Validate()
}

func (c *AuthConfig) Validate() error {
	if err := infraconfig.ValidateRequired("auth.username", c.Username); err != nil {
		return err
	}
	if err := infraconfig.ValidateRequired("auth.password", c.Password); err != nil {
		return err
	}
	if len(c.JWTSecret) < minJWTSecretLength {
		return &infraconfig.ValidationError{
			Field:   "auth.jwt_secret",
			Message: fmt.Sprintf("must be at least %d characters", minJWTSecretLength),
		}
	}
	if c.JWTExpiration <= 0 {
		return errors.New("auth.jwt_expiration must be positive")
	}
	return nil
}

func Load(path string) (*Config, error) {
	cfg, err := infraconfig.LoadWithDefaults(path, setDefaults)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func setDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaultServerPort
	}
	cfg.Server.SetDefaults()
	cfg.Database.SetDefaults()
	cfg.Redis.SetDefaults()
	cfg.Logging.SetDefaults()

	if cfg.Debug && cfg.Logging.Level == "info" {
		cfg.Logging.Level = "debug"
	}
	if cfg.Auth.JWTExpiration == 0 {
		cfg.Auth.JWTExpiration = defaultJWTExpiration
	}
	if cfg.Auth.CookieName == "" {
		cfg.Auth.CookieName = defaultCookieName
	}
	if cfg.Site.Name == "" {
		cfg.Site.Name = defaultSiteName
	}
	if cfg.Site.BaseURL == "" {
		cfg.Site.BaseURL = defaultSiteBaseURL
	}
	if cfg.Contact.RatePerMinute <= 0 {
		cfg.Contact.RatePerMinute = defaultContactPerMinute
	}
	if cfg.Contact.Burst <= 0 {
		cfg.Contact.Burst = defaultContactBurst
	}
	if len(cfg.Server.CORSOrigins) == 0 {
		cfg.Server.CORSOrigins = []string{cfg.Site.BaseURL}
	}
}
