// Package config loads runtime configuration from an optional YAML file, BRANDCRAFT_*
// environment variables and a .env file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/brandcraft/internal/server/ratelimit"
	"github.com/spf13/viper"
)

// DefaultConfigFile is looked up in the working directory when --config is not given.
const DefaultConfigFile = "brandcraft.yaml"

// EnvPrefix prefixes every environment override, e.g. BRANDCRAFT_JWT_SECRET.
const EnvPrefix = "BRANDCRAFT"

// DefaultAllowedOrigins are the local frontend origins accepted by CORS.
var DefaultAllowedOrigins = []string{
	"http://127.0.0.1:5500",
	"http://localhost:5500",
	"http://127.0.0.1:8000",
	"http://localhost:8000",
}

// Config is the resolved configuration.
type Config struct {
	Port           int
	DatabaseDriver string
	DatabaseURL    string
	LogLevel       string
	AllowedOrigins []string

	jwtSecret          string
	jwtExpirationHours int
	bcryptCost         int
	pepper             string
	rateLimit          *ratelimit.Config
}

// legacyEnv maps keys to the unprefixed variable names also honoured for them.
var legacyEnv = map[string]string{
	"database.url":                "DATABASE_URL",
	"jwt.secret":                  "JWT_SECRET",
	"jwt.expiration_hours":        "JWT_EXPIRATION_HOURS",
	"bcrypt.cost":                 "BCRYPT_COST",
	"password.pepper":             "PASSWORD_PEPPER",
	"rate_limit.enabled":          "RATE_LIMIT_ENABLED",
	"rate_limit.default_limit":    "RATE_LIMIT_DEFAULT_LIMIT",
	"rate_limit.default_window":   "RATE_LIMIT_DEFAULT_WINDOW",
	"rate_limit.cleanup_interval": "RATE_LIMIT_CLEANUP_INTERVAL",
	"rate_limit.whitelist":        "RATE_LIMIT_WHITELIST",
	"rate_limit.blacklist":        "RATE_LIMIT_BLACKLIST",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 8000)
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.url", "brandcraft.db")
	v.SetDefault("jwt.expiration_hours", 24)
	v.SetDefault("bcrypt.cost", 12)
	v.SetDefault("password.pepper", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("cors.allowed_origins", DefaultAllowedOrigins)
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.default_limit", 1000)
	v.SetDefault("rate_limit.default_window", time.Minute)
	v.SetDefault("rate_limit.cleanup_interval", 5*time.Minute)
	v.SetDefault("rate_limit.whitelist", "")
	v.SetDefault("rate_limit.blacklist", "")
}

// NewViper builds a viper instance with defaults and environment bindings and reads the
// config file. An explicitly named file must exist; the default file is optional.
func NewViper(configFile string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, legacy := range legacyEnv {
		prefixed := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, legacy); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(strings.TrimSuffix(DefaultConfigFile, ".yaml"))
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return v, nil
}

// Load resolves a Config from v. Secrets are not validated here; see JWT and Password.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:               v.GetInt("port"),
		DatabaseDriver:     strings.ToLower(v.GetString("database.driver")),
		DatabaseURL:        v.GetString("database.url"),
		LogLevel:           v.GetString("log_level"),
		AllowedOrigins:     stringList(v, "cors.allowed_origins"),
		jwtSecret:          v.GetString("jwt.secret"),
		jwtExpirationHours: v.GetInt("jwt.expiration_hours"),
		bcryptCost:         v.GetInt("bcrypt.cost"),
		pepper:             v.GetString("password.pepper"),
	}

	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("config error: 'port' out of range: %d", cfg.Port)
	}
	switch cfg.DatabaseDriver {
	case "postgres", "sqlite":
	default:
		return nil, fmt.Errorf("config error: 'database.driver' must be postgres or sqlite, got %q", cfg.DatabaseDriver)
	}
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}

	cfg.rateLimit = ratelimit.NewConfig(ratelimit.Settings{
		Enabled:         v.GetBool("rate_limit.enabled"),
		DefaultLimit:    v.GetInt("rate_limit.default_limit"),
		DefaultWindow:   v.GetDuration("rate_limit.default_window"),
		CleanupInterval: v.GetDuration("rate_limit.cleanup_interval"),
		Whitelist:       stringList(v, "rate_limit.whitelist"),
		Blacklist:       stringList(v, "rate_limit.blacklist"),
	})
	return cfg, nil
}

// JWT returns the validated token configuration.
func (c *Config) JWT() (*JWTConfig, error) {
	return NewJWTConfig(c.jwtSecret, c.jwtExpirationHours)
}

// Password returns the validated password hashing configuration.
func (c *Config) Password() (*PasswordConfig, error) {
	return NewPasswordConfig(c.bcryptCost, c.pepper)
}

// RateLimit returns the limiter configuration.
func (c *Config) RateLimit() *ratelimit.Config {
	return c.rateLimit
}

// stringList accepts either a YAML list or a comma-separated string (as env vars give).
func stringList(v *viper.Viper, key string) []string {
	var raw []string
	switch val := v.Get(key).(type) {
	case string:
		raw = strings.Split(val, ",")
	default:
		raw = v.GetStringSlice(key)
	}

	out := make([]string, 0, len(raw))
	for _, s := range raw {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
