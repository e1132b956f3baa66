package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DefaultQuestionFeedURL    = "https://zerotrac.github.io/leetcode_problem_rating/data.json"
	DefaultProblemURLTemplate = "https://leetcode.com/problems/{slug}/description/"
	DefaultMochiBaseURL       = "https://app.mochi.cards"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Mochi    MochiConfig    `mapstructure:"mochi"`
	Sync     SyncConfig     `mapstructure:"sync"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Port int        `mapstructure:"port" validate:"gt=0,lte=65535"`
	CORS CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type DatabaseConfig struct {
	Driver          string            `mapstructure:"driver" validate:"oneof=mysql sqlite"`
	Path            string            `mapstructure:"path" validate:"required_if=Driver sqlite"`
	Host            string            `mapstructure:"host" validate:"required_if=Driver mysql"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database" validate:"required_if=Driver mysql"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

type CatalogConfig struct {
	FeedURL            string        `mapstructure:"feed_url" validate:"required,url"`
	ProblemURLTemplate string        `mapstructure:"problem_url_template" validate:"required,slugtemplate"`
	RefreshInterval    time.Duration `mapstructure:"refresh_interval" validate:"gt=0"`
}

// MochiConfig configures the flashcard service. APIKey is only read from the
// MOCHI_API_KEY environment variable and is checked by the commands that need it.
type MochiConfig struct {
	BaseURL         string        `mapstructure:"base_url" validate:"required,url"`
	APIKey          string        `mapstructure:"api_key"`
	PageLimit       int           `mapstructure:"page_limit" validate:"gt=0"`
	RefreshInterval time.Duration `mapstructure:"refresh_interval" validate:"gt=0"`
}

// SyncConfig configures the task queue. QueueSize caps the number of pending
// tasks, delayed ones included.
type SyncConfig struct {
	SettleDelay   time.Duration `mapstructure:"settle_delay" validate:"gte=0"`
	Workers       int           `mapstructure:"workers" validate:"gt=0"`
	QueueSize     int           `mapstructure:"queue_size" validate:"gt=0"`
	RetryAttempts uint          `mapstructure:"retry_attempts"`
	RetryDelay    time.Duration `mapstructure:"retry_delay" validate:"gte=0"`
}

type LogConfig struct {
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
	envFile    string
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/lcsolved")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
		envFile:    ".env",
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	// Secrets may live in a local .env file; variables already set in the
	// environment win over it.
	if err := loadDotEnv(loader.envFile); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", loader.envFile, err)
	}

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors.allowed_origins", []string{"http://localhost:5173"})
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "lcsolved.db")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "lcsolved")
	v.SetDefault("database.username", "user")
	v.SetDefault("catalog.feed_url", DefaultQuestionFeedURL)
	v.SetDefault("catalog.problem_url_template", DefaultProblemURLTemplate)
	v.SetDefault("catalog.refresh_interval", 7*24*time.Hour)
	v.SetDefault("mochi.base_url", DefaultMochiBaseURL)
	v.SetDefault("mochi.page_limit", 100)
	v.SetDefault("mochi.refresh_interval", 24*time.Hour)
	v.SetDefault("sync.settle_delay", 30*time.Second)
	v.SetDefault("sync.workers", 4)
	v.SetDefault("sync.queue_size", 10000)
	v.SetDefault("sync.retry_attempts", 3)
	v.SetDefault("sync.retry_delay", time.Second)
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)

	// Bind the Mochi secret to an environment variable only (not from config file)
	if err := v.BindEnv("mochi.api_key", "MOCHI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind MOCHI_API_KEY environment variable: %w", err)
	}

	// Bind database password to environment variable
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}

func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return godotenv.Load(path)
}
