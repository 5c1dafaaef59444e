package config

import (
	"fmt"
	"reflect"
	"strings"

	"seedbox-mover/core/database"
	"seedbox-mover/core/logger"
	"seedbox-mover/core/reconcile"
	"seedbox-mover/core/server"
	"seedbox-mover/core/storage"
	"seedbox-mover/feature/prune"
	"seedbox-mover/feature/qbittorrent"
	"seedbox-mover/feature/radarr"
	"seedbox-mover/feature/rtorrent"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported download clients.
const (
	ClientRtorrent    = "rtorrent"
	ClientQBittorrent = "qbittorrent"
)

// ClientConfig selects the download client acting as torrent source.
type ClientConfig struct {
	// Kind is the download client (rtorrent, qbittorrent).
	Kind string `mapstructure:"kind" default:"rtorrent"`
}

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for report archiving (S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the Radarr database connection.
	Database database.Config `mapstructure:"database"`
	// Client selects the torrent source.
	Client ClientConfig `mapstructure:"client"`
	// Rtorrent holds configuration for the rTorrent XML-RPC endpoint.
	Rtorrent rtorrent.Config `mapstructure:"rtorrent"`
	// QBittorrent holds configuration for the qBittorrent Web API.
	QBittorrent qbittorrent.Config `mapstructure:"qbittorrent"`
	// Radarr holds configuration for the media source.
	Radarr radarr.Config `mapstructure:"radarr"`
	// Prune holds the default retention policy.
	Prune prune.Config `mapstructure:"prune"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. RTORRENT_URL -> rtorrent.url)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate rejects values the commands cannot act on.
func (c *Config) Validate() error {
	switch c.Client.Kind {
	case ClientRtorrent, ClientQBittorrent:
	default:
		return fmt.Errorf("unknown client kind %q", c.Client.Kind)
	}

	switch c.Radarr.Source {
	case radarr.SourceAPI, radarr.SourceDatabase:
	default:
		return fmt.Errorf("unknown radarr source %q", c.Radarr.Source)
	}

	if c.Radarr.Source == radarr.SourceDatabase {
		switch c.Database.Driver {
		case database.DriverSQLite, database.DriverPostgres:
		default:
			return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
		}
	}

	if _, err := reconcile.ParseMode(c.Prune.Mode); err != nil {
		return err
	}

	if c.Prune.Days < 0 {
		return fmt.Errorf("prune days must not be negative, got %d", c.Prune.Days)
	}

	return nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
