package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// MaxDays caps the retention threshold accepted from API callers.
	MaxDays int `mapstructure:"max_days" default:"3650"`
}

// ClampDays caps a caller-supplied threshold at MaxDays.
// Negative values are returned unchanged; callers reject them.
func (c Config) ClampDays(days int) int {
	if c.MaxDays > 0 && days > c.MaxDays {
		return c.MaxDays
	}
	return days
}
