package radarr

// Media source kinds.
const (
	SourceAPI      = "api"
	SourceDatabase = "database"
)

// Config holds configuration for the Radarr media source.
type Config struct {
	// Source selects how the library is read (api, database).
	Source string `mapstructure:"source" default:"api"`
	// URL is the Radarr base URL (e.g. http://localhost:7878).
	URL string `mapstructure:"url" default:"http://localhost:7878"`
	// ApiKey is sent as X-Api-Key.
	ApiKey string `mapstructure:"api_key" default:""`
	// TimeoutSeconds bounds each API request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
