package config

import (
	"fmt"
	"path/filepath"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	StorageBackendYAML  = "yaml"
	StorageBackendMySQL = "mysql"
)

// DefaultPalette is the display palette assigned to emotions by first-seen order.
var DefaultPalette = []string{"#8B5CF6", "#F59E0B", "#EF4444", "#10B981", "#3B82F6", "#F97316"}

type Config struct {
	Storage   StorageConfig   `mapstructure:"storage"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Analytics AnalyticsConfig `mapstructure:"analytics"`
	Templates TemplatesConfig `mapstructure:"templates"`
	Outputs   OutputsConfig   `mapstructure:"outputs"`
	OpenAI    OpenAIConfig    `mapstructure:"openai"`
	Backup    BackupConfig    `mapstructure:"backup"`
	Server    ServerConfig    `mapstructure:"server"`
}

type StorageConfig struct {
	Backend       string `mapstructure:"backend" validate:"oneof=yaml mysql"`
	DataDirectory string `mapstructure:"data_directory" validate:"required,notfile"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

type AnalyticsConfig struct {
	StreakLookbackDays int      `mapstructure:"streak_lookback_days" validate:"min=1"`
	MoodWindowDays     int      `mapstructure:"mood_window_days" validate:"min=1,max=366"`
	AverageWindow      int      `mapstructure:"average_window" validate:"min=1"`
	Palette            []string `mapstructure:"palette" validate:"min=1,dive,hexcolor"`
}

// DefaultAnalyticsConfig returns the analytics windows used when the config file leaves them out.
func DefaultAnalyticsConfig() AnalyticsConfig {
	return AnalyticsConfig{
		StreakLookbackDays: 30,
		MoodWindowDays:     7,
		AverageWindow:      14,
		Palette:            DefaultPalette,
	}
}

type TemplatesConfig struct {
	ExportTemplate string `mapstructure:"export_template" validate:"omitempty,file"`
}

type OutputsConfig struct {
	ExportDirectory string `mapstructure:"export_directory" validate:"omitempty,notfile"`
}

type OpenAIConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

type BackupConfig struct {
	URL   string `mapstructure:"url" validate:"omitempty,url"`
	Token string `mapstructure:"token"`
}

type ServerConfig struct {
	Port int        `mapstructure:"port" validate:"min=1,max=65535"`
	CORS CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
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
		v.AddConfigPath("$HOME/.config/calmnight")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("storage.backend", StorageBackendYAML)
	v.SetDefault("storage.data_directory", filepath.Join("data"))
	analytics := DefaultAnalyticsConfig()
	v.SetDefault("analytics.streak_lookback_days", analytics.StreakLookbackDays)
	v.SetDefault("analytics.mood_window_days", analytics.MoodWindowDays)
	v.SetDefault("analytics.average_window", analytics.AverageWindow)
	v.SetDefault("analytics.palette", analytics.Palette)
	// Template is optional - if not specified, the embedded export template is used
	v.SetDefault("templates.export_template", "")
	v.SetDefault("outputs.export_directory", filepath.Join("outputs", "export"))
	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "calmnight")
	v.SetDefault("database.username", "user")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors.allowed_origins", []string{"http://localhost:3000"})

	// Secrets are bound to environment variables only
	if err := v.BindEnv("openai.api_key", "OPENAI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind OPENAI_API_KEY environment variable: %w", err)
	}
	if err := v.BindEnv("openai.model", "OPENAI_MODEL"); err != nil {
		return nil, fmt.Errorf("failed to bind OPENAI_MODEL environment variable: %w", err)
	}
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}
	if err := v.BindEnv("backup.token", "CALMNIGHT_BACKUP_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind CALMNIGHT_BACKUP_TOKEN environment variable: %w", err)
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
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
