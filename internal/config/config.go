package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".config/rooftop"
	envPrefix  = "ROOFTOP"

	usersKey       = "auth.users"
	passwordKey    = "auth.password"
	modelKey       = "gemini.model"
	wateringKey    = "reminders.watering"
	fertilizingKey = "reminders.fertilizing"
	logPathKey     = "log.path"
	secretsDirKey  = "secrets.dir"
)

// Config is everything injected into the app at startup. The login
// allow-list and shared password default to the community's well-known
// values but are configurable; the Gemini API key deliberately has no
// default and is resolved through the secret store instead.
type Config struct {
	AllowedUsers        []string
	Password            string
	GeminiModel         string
	WateringInterval    time.Duration
	FertilizingInterval time.Duration
	LogPath             string
	SecretsDir          string
}

// Load reads ~/.config/rooftop/config.toml plus ROOFTOP_* environment
// overrides. A missing config file falls back to defaults.
func Load(cfg *viper.Viper) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, configDir))
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	cfg.SetDefault(usersKey, []string{"sanketh", "nikhil", "karthik", "shiva"})
	cfg.SetDefault(passwordKey, "rooftop")
	cfg.SetDefault(modelKey, "gemini-1.5-flash")
	cfg.SetDefault(wateringKey, "24h")
	cfg.SetDefault(fertilizingKey, "48h")
	cfg.SetDefault(logPathKey, filepath.Join(homeDir, ".local", "state", "rooftop", "rooftop.log"))
	cfg.SetDefault(secretsDirKey, filepath.Join(homeDir, configDir, "secrets"))

	if err := cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	watering := cfg.GetDuration(wateringKey)
	if watering <= 0 {
		return Config{}, fmt.Errorf("invalid %s: %q", wateringKey, cfg.GetString(wateringKey))
	}
	fertilizing := cfg.GetDuration(fertilizingKey)
	if fertilizing <= 0 {
		return Config{}, fmt.Errorf("invalid %s: %q", fertilizingKey, cfg.GetString(fertilizingKey))
	}

	return Config{
		AllowedUsers:        cfg.GetStringSlice(usersKey),
		Password:            cfg.GetString(passwordKey),
		GeminiModel:         cfg.GetString(modelKey),
		WateringInterval:    watering,
		FertilizingInterval: fertilizing,
		LogPath:             cfg.GetString(logPathKey),
		SecretsDir:          cfg.GetString(secretsDirKey),
	}, nil
}
