package database

// Config holds configuration for the Radarr database connection.
type Config struct {
	// Driver is the database driver (sqlite, postgres).
	Driver string `mapstructure:"driver" default:"sqlite"`
	// Path is the SQLite database file (e.g. /config/radarr.db).
	Path string `mapstructure:"path" default:"radarr.db"`
	// Host is the Postgres host.
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the Postgres port.
	Port int `mapstructure:"port" default:"5432"`
	// User is the Postgres user.
	User string `mapstructure:"user" default:"radarr"`
	// Password is the Postgres password.
	Password string `mapstructure:"password" default:""`
	// Name is the Postgres database name.
	Name string `mapstructure:"name" default:"radarr-main"`
	// SSLMode is the Postgres sslmode parameter.
	SSLMode string `mapstructure:"ssl_mode" default:"disable"`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
