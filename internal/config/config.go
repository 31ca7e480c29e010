// Package config provides types for handling configuration parameters.
package config

import (
	"flag"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	// DefaultAPIEndpoint is the shortening endpoint used when nothing else is configured.
	DefaultAPIEndpoint = "https://moyashi.xyz/api/short"
	// ModeConsole runs the interactive terminal front-end.
	ModeConsole = "console"
	// ModeWeb runs the local web front-end.
	ModeWeb = "web"
)

// Config handles widget-related constants and parameters.
type Config struct {
	APIEndpoint    string        `env:"SHORTENER_API_URL" env-default:"https://moyashi.xyz/api/short" json:"api_endpoint" yaml:"api_endpoint"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" env-default:"0s" json:"request_timeout" yaml:"request_timeout"`
	MessageTTL     time.Duration `env:"MESSAGE_TTL" env-default:"3s" json:"message_ttl" yaml:"message_ttl"`
	WidgetAddress  string        `env:"WIDGET_ADDRESS" env-default:"127.0.0.1:8081" json:"widget_address" yaml:"widget_address"`
	TrustedSubnet  string        `env:"TRUSTED_SUBNET" env-default:"127.0.0.0/8,::1/128" json:"trusted_subnet" yaml:"trusted_subnet"`
	CSRFKey        string        `env:"CSRF_KEY" json:"csrf_key" yaml:"csrf_key"`
	LogLevel       string        `env:"LOG_LEVEL" env-default:"info" json:"log_level" yaml:"log_level"`
	Mode           string        `env:"WIDGET_MODE" env-default:"console" json:"mode" yaml:"mode"`
	ConfigPath     string        `env:"CONFIG" json:"-" yaml:"-"`
	Copy           bool          `json:"-" yaml:"-"`
	Args           []string      `json:"-" yaml:"-"`
}

// NewDefaultConfiguration sets up a configuration from defaults and environment.
func NewDefaultConfiguration() (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse parses command line arguments and overrides environment and file values with them.
func (cfg *Config) Parse(args []string) error {
	fs := flag.NewFlagSet("shortenerwidget", flag.ContinueOnError)
	var e, a, s, k, l, mode, c string
	var t, m time.Duration
	fs.StringVar(&e, "e", "", "Shortening API endpoint")
	fs.DurationVar(&t, "t", 0, "Request timeout")
	fs.DurationVar(&m, "m", 0, "Status message lifetime")
	fs.StringVar(&a, "a", "", "Web widget address")
	fs.StringVar(&s, "s", "", "Trusted subnets of the web widget, comma-separated CIDRs")
	fs.StringVar(&k, "k", "", "CSRF token key")
	fs.StringVar(&l, "l", "", "Log level")
	fs.StringVar(&mode, "mode", "", "Front-end: console or web")
	fs.StringVar(&c, "c", "", "Config file path")
	fs.BoolVar(&cfg.Copy, "copy", false, "Copy the shortened URL to the clipboard (one-shot mode)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg.Args = fs.Args()
	return cfg.assignValues(e, a, s, k, l, mode, c, t, m)
}

// assignValues applies the config file first and then non-empty flag values on top of it.
func (cfg *Config) assignValues(e, a, s, k, l, mode, c string, t, m time.Duration) error {
	if c != "" {
		cfg.ConfigPath = c
	}
	if cfg.ConfigPath != "" {
		if err := cleanenv.ReadConfig(cfg.ConfigPath, cfg); err != nil {
			return err
		}
	}
	if e != "" {
		cfg.APIEndpoint = e
	}
	if a != "" {
		cfg.WidgetAddress = a
	}
	if s != "" {
		cfg.TrustedSubnet = s
	}
	if k != "" {
		cfg.CSRFKey = k
	}
	if l != "" {
		cfg.LogLevel = l
	}
	if mode != "" {
		cfg.Mode = mode
	}
	if t != 0 {
		cfg.RequestTimeout = t
	}
	if m != 0 {
		cfg.MessageTTL = m
	}
	return nil
}

// StubConfig handles stub API server parameters.
type StubConfig struct {
	ServerAddress   string  `env:"STUB_ADDRESS" env-default:":8080"`
	BaseURL         string  `env:"STUB_BASE_URL" env-default:"http://localhost:8080"`
	RateLimitRPS    float64 `env:"STUB_RATE_LIMIT_RPS" env-default:"5"`
	RateLimitBurst  int     `env:"STUB_RATE_LIMIT_BURST" env-default:"10"`
	FileStoragePath string  `env:"STUB_FILE_STORAGE_PATH"`
	LogLevel        string  `env:"LOG_LEVEL" env-default:"info"`
}

// NewStubConfiguration sets up a stub server configuration from defaults and environment.
func NewStubConfiguration() (*StubConfig, error) {
	cfg := &StubConfig{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse parses command line arguments of the stub server.
func (cfg *StubConfig) Parse(args []string) error {
	fs := flag.NewFlagSet("stubshortener", flag.ContinueOnError)
	fs.StringVar(&cfg.ServerAddress, "a", cfg.ServerAddress, "Server address")
	fs.StringVar(&cfg.BaseURL, "b", cfg.BaseURL, "Base url")
	fs.Float64Var(&cfg.RateLimitRPS, "r", cfg.RateLimitRPS, "Requests per second")
	fs.IntVar(&cfg.RateLimitBurst, "burst", cfg.RateLimitBurst, "Request burst size")
	fs.StringVar(&cfg.FileStoragePath, "f", cfg.FileStoragePath, "File storage path, in-memory when empty")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "Log level")
	return fs.Parse(args)
}
