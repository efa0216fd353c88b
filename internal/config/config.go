package config

import (
	"flag"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Значения по умолчанию.
const (
	DefaultAuthSecret  = "dev-secret-key"
	DefaultBaseURL     = "localhost:8081"
	DefaultDatabaseDSN = "studenten.sqlite"
	DefaultSeedFile    = "seed/students.yaml"
	DefaultLogLevel    = "info"
	LogFormatConsole   = "console"
	LogFormatJSON      = "json"
)

var hostPortRe = regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)

type Config struct {
	// Server-side settings
	DatabaseDSN string `env:"DATABASE_URI"`
	AuthSecret  string `env:"AUTH_SECRET"`
	LogLevel    string `env:"LOG_LEVEL"`
	LogFormat   string `env:"LOG_FORMAT"`
	DBPopulate  bool   `env:"DB_POPULATE"`
	SeedFile    string `env:"SEED_FILE"`

	// Shared settings
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	// Client-side settings
	ServerURL    string `env:"-"`
	ClientDBPath string `env:"CLIENT_DB_PATH"`
	TokenFile    string `env:"TOKEN_FILE"`
	Version      bool   `env:"-"` // show client version and exit (flag only)
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	// Server flags
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД (postgres URL/DSN или файл SQLite)")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для проверки JWT")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "уровень логирования: debug, info, warn, error")
	flag.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "формат логов: console или json")
	flag.BoolVar(&cfg.DBPopulate, "populate", cfg.DBPopulate, "заполнить БД тестовыми данными при старте")
	flag.StringVar(&cfg.SeedFile, "seed", cfg.SeedFile, "YAML-файл с тестовыми данными")
	// Shared/client flags
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "address of the student server (host:port)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS (client: prefer https scheme for BaseURL)")
	// Client flags
	flag.StringVar(&cfg.ClientDBPath, "client-db", cfg.ClientDBPath, "path to client SQLite cache")
	flag.StringVar(&cfg.TokenFile, "token-file", cfg.TokenFile, "path to bearer token file (client)")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.AuthSecret == "" {
		c.AuthSecret = DefaultAuthSecret
	}
	if strings.TrimSpace(c.DatabaseDSN) == "" {
		c.DatabaseDSN = DefaultDatabaseDSN
	}
	if c.SeedFile == "" {
		c.SeedFile = DefaultSeedFile
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.LogFormat != LogFormatJSON {
		c.LogFormat = LogFormatConsole
	}

	// validate BaseURL: must be in "address:port" (no scheme, no path). Otherwise use default.
	if !hostPortRe.MatchString(c.BaseURL) {
		c.BaseURL = DefaultBaseURL
	}
	if c.EnableHTTPS {
		c.ServerURL = "https://" + c.BaseURL
	} else {
		c.ServerURL = "http://" + c.BaseURL
	}

	// Fill client defaults if empty
	home, _ := os.UserHomeDir()
	if c.ClientDBPath == "" {
		c.ClientDBPath = filepath.Join(home, "scli.db")
	}
	if c.TokenFile == "" {
		c.TokenFile = filepath.Join(home, ".scli_token")
	}
}
