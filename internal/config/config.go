package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Feed   FeedConfig   `mapstructure:"feed"`
	Apilo  ApiloConfig  `mapstructure:"apilo"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// FeedConfig selects and configures the upstream catalog source.
// Mode is one of "xml" (single catalog document), "dual" (catalog plus a
// separate stock/price document) or "apilo" (ERP REST API).
type FeedConfig struct {
	Mode       string `mapstructure:"mode"`
	CatalogURL string `mapstructure:"catalog_url"`
	StockURL   string `mapstructure:"stock_url"`
	Timeout    int    `mapstructure:"timeout"`
}

// ApiloConfig holds ERP API credentials. Credentials must come from config or
// the environment, never from source.
type ApiloConfig struct {
	BaseURL      string `mapstructure:"base_url"`
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	AuthCode     string `mapstructure:"auth_code"`
	RefreshToken string `mapstructure:"refresh_token"`
	PageLimit    int    `mapstructure:"page_limit"`
}

// Load loads configuration from an optional config.yaml with environment
// variable overrides (FEED_CATALOG_URL, APILO_CLIENT_SECRET, ...).
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		// config file is optional; environment variables alone are a valid setup
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.host", "")
	viper.SetDefault("server.port", 8080)

	viper.SetDefault("feed.mode", "xml")
	viper.SetDefault("feed.catalog_url", "")
	viper.SetDefault("feed.stock_url", "")
	viper.SetDefault("feed.timeout", 60)

	viper.SetDefault("apilo.base_url", "")
	viper.SetDefault("apilo.client_id", "")
	viper.SetDefault("apilo.client_secret", "")
	viper.SetDefault("apilo.auth_code", "")
	viper.SetDefault("apilo.refresh_token", "")
	viper.SetDefault("apilo.page_limit", 100)
}
