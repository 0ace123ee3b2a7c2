package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	defaultTTLSeconds = 3
	defaultPlayerName = "org.mpris.MediaPlayer2.spotifyd"
	defaultCacheFile  = "spotify_manage_cache"
)

type Config struct {
	Cache struct {
		Path       string `mapstructure:"path"`
		TTLSeconds int    `mapstructure:"ttl_seconds"`
	} `mapstructure:"cache"`
	Player struct {
		Name string `mapstructure:"name"`
	} `mapstructure:"player"`
}

func (c Config) TTL() time.Duration {
	return time.Duration(c.Cache.TTLSeconds) * time.Second
}

// Load reads configuration from $XDG_CONFIG_HOME/spotify-manage/config.yaml
// and SPOTIFY_MANAGE_* environment variables, over built-in defaults. A
// missing config file is not an error.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("cache.path", filepath.Join(os.TempDir(), defaultCacheFile))
	v.SetDefault("cache.ttl_seconds", defaultTTLSeconds)
	v.SetDefault("player.name", defaultPlayerName)

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Check XDG_CONFIG_HOME first, fallback to ~/.config
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		if homeDir, homeErr := os.UserHomeDir(); homeErr == nil {
			configHome = filepath.Join(homeDir, ".config")
		}
	}
	if configHome != "" {
		v.AddConfigPath(filepath.Join(configHome, "spotify-manage"))
	}

	v.SetEnvPrefix("SPOTIFY_MANAGE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if readErr := v.ReadInConfig(); readErr != nil {
		if _, notFound := readErr.(viper.ConfigFileNotFoundError); !notFound {
			return Config{}, readErr
		}
	}

	var cfg Config
	if unmarshalErr := v.Unmarshal(&cfg); unmarshalErr != nil {
		return Config{}, unmarshalErr
	}
	return cfg, nil
}
