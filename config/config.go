package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server ServerConfig
	Gemini GeminiConfig
	Search SearchConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// GeminiConfig holds generative API configuration. A missing API key is a
// startup warning, not a fatal error: the server still serves saved looks.
type GeminiConfig struct {
	APIKey     string `mapstructure:"api_key"`
	TextModel  string `mapstructure:"text_model"`
	ImageModel string `mapstructure:"image_model"`
}

// SearchConfig holds the optional image-search provider keys. An unset key
// simply skips that tier of the lookup chain.
type SearchConfig struct {
	SerpAPIKey     string `mapstructure:"serpapi_key"`
	SerpAPIBaseURL string `mapstructure:"serpapi_base_url"`

	GoogleAPIKey   string `mapstructure:"google_api_key"`
	GoogleEngineID string `mapstructure:"google_engine_id"`
	GoogleBaseURL  string `mapstructure:"google_base_url"`

	PexelsAPIKey  string `mapstructure:"pexels_key"`
	PexelsBaseURL string `mapstructure:"pexels_base_url"`
}

// Load loads configuration from .env, environment variables and config files
func Load() (*Config, error) {
	// Pick up a .env next to the binary, the way the SPA's dev setup does
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/vybe/")

	// Environment variable settings
	v.SetEnvPrefix("VYBE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Honor the conventional unprefixed names too
	v.BindEnv("gemini.api_key", "VYBE_GEMINI_API_KEY", "GEMINI_API_KEY")
	v.BindEnv("search.serpapi_key", "VYBE_SEARCH_SERPAPI_KEY", "SERPAPI_KEY")
	v.BindEnv("search.google_api_key", "VYBE_SEARCH_GOOGLE_API_KEY", "GOOGLE_SEARCH_API_KEY")
	v.BindEnv("search.google_engine_id", "VYBE_SEARCH_GOOGLE_ENGINE_ID", "GOOGLE_SEARCH_ENGINE_ID")
	v.BindEnv("search.pexels_key", "VYBE_SEARCH_PEXELS_KEY", "PEXELS_API_KEY")
	v.BindEnv("server.port", "VYBE_SERVER_PORT", "PORT")

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "5001")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:*"})

	// Gemini defaults
	v.SetDefault("gemini.text_model", "gemini-2.0-flash")
	v.SetDefault("gemini.image_model", "gemini-2.5-flash-image")

	// Provider defaults
	v.SetDefault("search.serpapi_base_url", "https://serpapi.com")
	v.SetDefault("search.google_base_url", "https://www.googleapis.com")
	v.SetDefault("search.pexels_base_url", "https://api.pexels.com")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Search.GoogleAPIKey != "" && config.Search.GoogleEngineID == "" {
		return fmt.Errorf("google_engine_id is required when google_api_key is set")
	}

	env := config.Server.Environment
	if env != "development" && env != "production" && env != "test" {
		return fmt.Errorf("environment must be development, production or test, got: %s", env)
	}

	return nil
}
