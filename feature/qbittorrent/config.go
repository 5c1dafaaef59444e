package qbittorrent

// Config holds configuration for the qBittorrent Web API.
type Config struct {
	// URL is the Web UI address (e.g. http://localhost:8080).
	URL string `mapstructure:"url" default:"http://localhost:8080"`
	// Username for the Web UI login.
	Username string `mapstructure:"username" default:"admin"`
	// Password for the Web UI login.
	Password string `mapstructure:"password" default:""`
	// DeleteFiles also removes downloaded data when a torrent is erased.
	DeleteFiles bool `mapstructure:"delete_files" default:"false"`
	// TimeoutSeconds bounds each API call.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
