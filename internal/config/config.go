// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	EnvProduction = "production"
	EnvSandbox    = "sandbox"

	StorageFile     = "file"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
	StorageMemory   = "memory"

	DefaultAPIURL = "https://zamgas-production.up.railway.app"
)

type Config struct {
	APIURL      string
	WSURL       string
	Environment string
	HTTPTimeout time.Duration

	Poll PollConfig

	Storage     string
	StoragePath string
	DatabaseURL string

	RedisAddr     string
	RedisUsername string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	LogLevel  string
	LogFormat string
}

// PollConfig drives payment confirmation polling.
type PollConfig struct {
	Interval     time.Duration
	Timeout      time.Duration
	ConfirmDelay time.Duration
	// TimeoutMessage is shown when the gateway never answers with a final status.
	TimeoutMessage string
}

// ProductionPoll and SandboxPoll are the per-environment polling defaults.
func ProductionPoll() PollConfig {
	return PollConfig{
		Interval:       2 * time.Second,
		Timeout:        120 * time.Second,
		ConfirmDelay:   2 * time.Second,
		TimeoutMessage: "Payment timeout - please check your phone",
	}
}

func SandboxPoll() PollConfig {
	return PollConfig{
		Interval:       3 * time.Second,
		Timeout:        180 * time.Second,
		ConfirmDelay:   2 * time.Second,
		TimeoutMessage: "Sandbox payment timeout - payments may take longer in sandbox mode",
	}
}

func (c *Config) IsSandbox() bool { return c.Environment == EnvSandbox }

// Load reads .env, an optional config file and ZAMGAS_* environment variables.
// v may carry flag bindings; nil means a fresh viper instance.
func Load(cfgFile string, v *viper.Viper) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.WithError(err).Warn("failed to load .env file")
	}
	if v == nil {
		v = viper.New()
	}
	setDefaults(v)

	v.SetEnvPrefix("ZAMGAS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	}

	cfg := &Config{
		APIURL:        strings.TrimRight(v.GetString("api_url"), "/"),
		WSURL:         v.GetString("ws_url"),
		Environment:   strings.ToLower(v.GetString("environment")),
		HTTPTimeout:   v.GetDuration("http_timeout"),
		Storage:       strings.ToLower(v.GetString("storage")),
		StoragePath:   v.GetString("storage_path"),
		DatabaseURL:   v.GetString("database_url"),
		RedisAddr:     v.GetString("redis_addr"),
		RedisUsername: v.GetString("redis_username"),
		RedisPassword: v.GetString("redis_password"),
		RedisDB:       v.GetInt("redis_db"),
		CacheTTL:      v.GetDuration("cache_ttl"),
		LogLevel:      v.GetString("log_level"),
		LogFormat:     v.GetString("log_format"),
	}
	if strings.EqualFold(v.GetString("pawapay_mode"), EnvSandbox) {
		cfg.Environment = EnvSandbox
	}

	cfg.Poll = ProductionPoll()
	if cfg.IsSandbox() {
		cfg.Poll = SandboxPoll()
	}
	if d := v.GetDuration("poll_interval"); d > 0 {
		cfg.Poll.Interval = d
	}
	if d := v.GetDuration("poll_timeout"); d > 0 {
		cfg.Poll.Timeout = d
	}
	if v.IsSet("poll_confirm_delay") {
		cfg.Poll.ConfirmDelay = v.GetDuration("poll_confirm_delay")
	}

	if cfg.WSURL == "" {
		ws, err := DeriveWSURL(cfg.APIURL)
		if err != nil {
			return nil, err
		}
		cfg.WSURL = ws
	}
	if cfg.StoragePath == "" {
		cfg.StoragePath = defaultStoragePath()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api_url", DefaultAPIURL)
	v.SetDefault("environment", EnvProduction)
	v.SetDefault("http_timeout", 30*time.Second)
	v.SetDefault("storage", StorageFile)
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("redis_db", 0)
	v.SetDefault("cache_ttl", 5*time.Minute)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
}

func (c *Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid api url %q", c.APIURL)
	}
	switch c.Environment {
	case EnvProduction, EnvSandbox:
	default:
		return fmt.Errorf("unknown environment %q", c.Environment)
	}
	switch c.Storage {
	case StorageFile, StorageMemory, StorageRedis:
	case StoragePostgres:
		if c.DatabaseURL == "" {
			return errors.New("postgres storage needs ZAMGAS_DATABASE_URL")
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage)
	}
	if c.Poll.Interval <= 0 || c.Poll.Timeout < c.Poll.Interval {
		return fmt.Errorf("poll timeout %s must be at least the interval %s", c.Poll.Timeout, c.Poll.Interval)
	}
	return nil
}

// DeriveWSURL maps http(s)://host/base to ws(s)://host/base/ws.
func DeriveWSURL(apiURL string) (string, error) {
	u, err := url.Parse(apiURL)
	if err != nil {
		return "", fmt.Errorf("invalid api url %q: %w", apiURL, err)
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/ws"
	return u.String(), nil
}

func defaultStoragePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "zamgas", "session.json")
}
