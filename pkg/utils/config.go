package utils

import (
	"errors"
	"io/fs"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	Seed    SeedConfig
	Latency LatencyConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type SeedConfig struct {
	RandomBookings int
	RandomSeed     int64
}

type LatencyConfig struct {
	Enabled bool
	Scale   float64
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "campervan-calendar")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("SEED_RANDOM_BOOKINGS", 0)
	viper.SetDefault("SEED_RANDOM_SEED", 1)
	viper.SetDefault("LATENCY_ENABLED", true)
	viper.SetDefault("LATENCY_SCALE", 1.0)

	if err := viper.ReadInConfig(); err != nil {
		// A missing .env is fine; env vars and defaults still apply.
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Seed: SeedConfig{
			RandomBookings: viper.GetInt("SEED_RANDOM_BOOKINGS"),
			RandomSeed:     viper.GetInt64("SEED_RANDOM_SEED"),
		},
		Latency: LatencyConfig{
			Enabled: viper.GetBool("LATENCY_ENABLED"),
			Scale:   viper.GetFloat64("LATENCY_SCALE"),
		},
	}

	return config, nil
}
