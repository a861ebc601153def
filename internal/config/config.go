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
	"github.com/spf13/viper"
)

const (
	envPrefix  = "EVALDASH"
	configDir  = ".evaldash"
	configName = "config"
	configType = "toml"

	KeyAPIBaseURL       = "api.base_url"
	KeyAPITimeout       = "api.timeout"
	KeyAPICSRFCookie    = "api.csrf_cookie"
	KeyAPICSRFHeader    = "api.csrf_header"
	KeyDataPath         = "data.path"
	KeyCookiesPath      = "cookies.path"
	KeyLogLevel         = "log.level"
	KeyLogFormat        = "log.format"
	KeyCancelSuperseded = "coordinator.cancel_superseded"
	KeyMetricsTextfile  = "metrics.textfile"
)

type Config struct {
	API              APIConfig
	DataPath         string
	CookiesPath      string
	Log              LogConfig
	CancelSuperseded bool
	MetricsTextfile  string
}

type APIConfig struct {
	BaseURL    string
	Timeout    time.Duration
	CSRFCookie string
	CSRFHeader string
}

type LogConfig struct {
	Level  string
	Format string
}

// Load resolves configuration from (lowest to highest precedence) defaults,
// ~/.evaldash/config.toml, a .env file in the working directory and EVALDASH_*
// environment variables.
func Load(v *viper.Viper, homeDir string) (Config, error) {
	if v == nil {
		v = viper.New()
	}
	if err := loadEnvFile(".env"); err != nil {
		return Config{}, err
	}

	baseDir := filepath.Join(homeDir, configDir)
	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(baseDir)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyAPIBaseURL, "http://127.0.0.1:8000")
	v.SetDefault(KeyAPITimeout, 30*time.Second)
	v.SetDefault(KeyAPICSRFCookie, "csrftoken")
	v.SetDefault(KeyAPICSRFHeader, "X-CSRFToken")
	v.SetDefault(KeyDataPath, filepath.Join(baseDir, "dashboard.toml"))
	v.SetDefault(KeyCookiesPath, filepath.Join(baseDir, "cookies"))
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyCancelSuperseded, false)
	v.SetDefault(KeyMetricsTextfile, "")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		API: APIConfig{
			BaseURL:    strings.TrimSpace(v.GetString(KeyAPIBaseURL)),
			Timeout:    v.GetDuration(KeyAPITimeout),
			CSRFCookie: strings.TrimSpace(v.GetString(KeyAPICSRFCookie)),
			CSRFHeader: strings.TrimSpace(v.GetString(KeyAPICSRFHeader)),
		},
		DataPath:    expandHome(v.GetString(KeyDataPath), homeDir),
		CookiesPath: expandHome(v.GetString(KeyCookiesPath), homeDir),
		Log: LogConfig{
			Level:  v.GetString(KeyLogLevel),
			Format: v.GetString(KeyLogFormat),
		},
		CancelSuperseded: v.GetBool(KeyCancelSuperseded),
		MetricsTextfile:  expandHome(v.GetString(KeyMetricsTextfile), homeDir),
	}
	// Downstream readers of the same viper instance see the expanded path.
	v.Set(KeyDataPath, cfg.DataPath)

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c Config) validate() error {
	parsed, err := url.Parse(c.API.BaseURL)
	if err != nil {
		return fmt.Errorf("parse %s: %w", KeyAPIBaseURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%s must use http or https", KeyAPIBaseURL)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%s host is required", KeyAPIBaseURL)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("%s must be positive", KeyAPITimeout)
	}
	if c.API.CSRFCookie == "" || c.API.CSRFHeader == "" {
		return errors.New("csrf cookie and header names are required")
	}
	if c.DataPath == "" {
		return fmt.Errorf("%s is empty", KeyDataPath)
	}

	return nil
}

func loadEnvFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat env file: %w", err)
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}

	return nil
}

func expandHome(path, homeDir string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "~" {
		return homeDir
	}
	if strings.HasPrefix(trimmed, "~/") {
		return filepath.Join(homeDir, trimmed[2:])
	}

	return trimmed
}
