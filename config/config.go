// Package config handles loading and validation of application configuration
// from environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/TickTockPlumbing/ticktock-backend/logger"
	"github.com/spf13/viper"
)

// Environment represents the application's running environment (development or production).
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	Environment    Environment `mapstructure:"ENVIRONMENT" yaml:"environment"`
	Port           string      `mapstructure:"PORT" yaml:"port"`
	AllowedOrigins []string    `mapstructure:"ALLOWED_ORIGINS" yaml:"allowed_origins"`
	Version        string      `mapstructure:"VERSION" yaml:"version"`
	// StaticDir is the directory holding the marketing site assets.
	// If empty, the server exposes the API only.
	StaticDir string `mapstructure:"STATIC_DIR" yaml:"static_dir"`
}

// EmailConfig holds configuration for sending notification emails through Resend.
type EmailConfig struct {
	FromAddress  string `mapstructure:"FROM_ADDRESS" yaml:"from_address"`
	FromName     string `mapstructure:"FROM_NAME" yaml:"from_name"`
	ResendAPIKey string `mapstructure:"RESEND_API_KEY" yaml:"resend_api_key"`
}

// QuoteConfig holds quote-request intake settings.
type QuoteConfig struct {
	// RecipientAddress is the business intake mailbox that receives quote notifications.
	RecipientAddress string `mapstructure:"RECIPIENT_ADDRESS" yaml:"recipient_address"`
	// FallbackPhone is shown to customers when a submission fails.
	FallbackPhone string `mapstructure:"FALLBACK_PHONE" yaml:"fallback_phone"`
}

// Config aggregates all application configuration sections.
type Config struct {
	Server ServerConfig `mapstructure:"SERVER" yaml:"server"`
	Email  EmailConfig  `mapstructure:"EMAIL" yaml:"email"`
	Quote  QuoteConfig  `mapstructure:"QUOTE" yaml:"quote"`
}

// IsDevelopment returns true if the application is running in development environment.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == EnvDevelopment
}

// IsProduction returns true if the application is running in production environment.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == EnvProduction
}

// bindEnvVars binds multiple environment variables to config keys.
// Format: []{configKey, envVar}
func bindEnvVars(v *viper.Viper, bindings [][2]string) error {
	for _, b := range bindings {
		if err := v.BindEnv(b[0], b[1]); err != nil {
			return fmt.Errorf("failed to bind %s: %w", b[0], err)
		}
	}
	return nil
}

// LoadConfig loads configuration from environment variables using Viper,
// sets default values, binds environment variables to config struct fields,
// unmarshals the configuration, and validates it.
func LoadConfig() (*Config, error) {
	v := viper.New()
	log := logger.GetLogger()

	v.SetDefault("SERVER.ENVIRONMENT", EnvDevelopment)
	v.SetDefault("SERVER.PORT", "8080")
	v.SetDefault("SERVER.ALLOWED_ORIGINS", []string{"*"})
	v.SetDefault("SERVER.VERSION", "dev")
	v.SetDefault("SERVER.STATIC_DIR", "")
	v.SetDefault("EMAIL.FROM_ADDRESS", "ernesto@maktubworkspace.com")
	v.SetDefault("EMAIL.FROM_NAME", "TickTock Plumbing")
	v.SetDefault("QUOTE.RECIPIENT_ADDRESS", "ticktockplumbing@yahoo.com")
	v.SetDefault("QUOTE.FALLBACK_PHONE", "(305) 766-5526")
	v.SetDefault("LOG_LEVEL", "info")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	envBindings := [][2]string{
		{"SERVER.ENVIRONMENT", "SERVER_ENVIRONMENT"},
		{"SERVER.PORT", "PORT"},
		{"SERVER.ALLOWED_ORIGINS", "ALLOWED_ORIGINS"},
		{"SERVER.VERSION", "VERSION"},
		{"SERVER.STATIC_DIR", "STATIC_DIR"},
		{"EMAIL.FROM_ADDRESS", "EMAIL_FROM_ADDRESS"},
		{"EMAIL.FROM_NAME", "EMAIL_FROM_NAME"},
		{"EMAIL.RESEND_API_KEY", "RESEND_API_KEY"},
		{"QUOTE.RECIPIENT_ADDRESS", "QUOTE_RECIPIENT_ADDRESS"},
		{"QUOTE.FALLBACK_PHONE", "QUOTE_FALLBACK_PHONE"},
	}

	if err := bindEnvVars(v, envBindings); err != nil {
		return nil, err
	}

	log.Infow("Configuration loaded",
		"environment", v.GetString("SERVER.ENVIRONMENT"),
		"server_port", v.GetString("SERVER.PORT"),
		"allowed_origins", v.GetString("SERVER.ALLOWED_ORIGINS"),
		"email_from", v.GetString("EMAIL.FROM_ADDRESS"),
		"quote_recipient", logger.MaskEmail(v.GetString("QUOTE.RECIPIENT_ADDRESS")),
		"resend_key", logger.MaskSensitiveString(v.GetString("EMAIL.RESEND_API_KEY"), 3, 2),
	)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal failed: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	switch cfg.Server.Environment {
	case EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("invalid environment: %s", cfg.Server.Environment)
	}

	if cfg.Email.FromAddress == "" {
		return fmt.Errorf("EMAIL_FROM_ADDRESS must not be empty")
	}
	if cfg.Quote.RecipientAddress == "" {
		return fmt.Errorf("QUOTE_RECIPIENT_ADDRESS must not be empty")
	}

	// The API key is only enforced in production so local development can run
	// against a fake mailer without credentials.
	if cfg.IsProduction() && cfg.Email.ResendAPIKey == "" {
		return fmt.Errorf("RESEND_API_KEY is required in production")
	}

	return nil
}
