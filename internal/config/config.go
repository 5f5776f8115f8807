// internal/config/config.go
package config

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"go_french_gapfill/internal/webutil"
)

type Config struct {
	Database struct {
		URL string `mapstructure:"url" validate:"required"`
	} `mapstructure:"database"`
	Server struct {
		Port string `mapstructure:"port" validate:"required"`
	} `mapstructure:"server"`
	Log struct {
		Level string `mapstructure:"level" validate:"omitempty,oneof=debug info warn warning error"`
	} `mapstructure:"log"`
	App struct {
		// CacheTTLSeconds bounds staleness of assembled article documents.
		// Content only changes via reseeding, so a short TTL is safe.
		CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" validate:"min=0"`
		// SeedOnEmpty seeds the canonical content at startup when the
		// article table is empty. Replaces the demo-data fallback constants
		// earlier variants baked into the process.
		SeedOnEmpty bool `mapstructure:"seed_on_empty"`
	} `mapstructure:"app"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("server.port", "PORT")
	viper.BindEnv("app.seed_on_empty", "SEED_ON_EMPTY")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using defaults and environment variables.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// Defaults before validation.
	if Cfg.Server.Port == "" {
		log.Printf("Server port not set, using default '%s'", DefaultServerPort)
		Cfg.Server.Port = DefaultServerPort
	}
	if Cfg.Log.Level == "" {
		Cfg.Log.Level = DefaultLogLevel
	}
	if Cfg.App.CacheTTLSeconds == 0 {
		Cfg.App.CacheTTLSeconds = DefaultCacheTTLSeconds
	}
	if len(Cfg.CORS.AllowedOrigins) == 0 {
		Cfg.CORS.AllowedOrigins = []string{"*"}
	}
	if len(Cfg.CORS.AllowedMethods) == 0 {
		Cfg.CORS.AllowedMethods = []string{"GET", "OPTIONS"}
	}
	if len(Cfg.CORS.AllowedHeaders) == 0 {
		Cfg.CORS.AllowedHeaders = []string{"Accept", "Content-Type"}
	}

	if err := webutil.Validator.Struct(&Cfg); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			return fmt.Errorf("invalid configuration: %s", webutil.TranslateValidationErrors(verrs))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Cache TTL: %ds", Cfg.App.CacheTTLSeconds)
	log.Printf("Seed On Empty: %t", Cfg.App.SeedOnEmpty)

	return nil
}
