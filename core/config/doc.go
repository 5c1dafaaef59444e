// Package config loads the application configuration.
//
// Values come from the process environment, optionally seeded from a .env
// file, with defaults declared on the partial config structs through
// `default` tags. Nested keys map to upper-case environment variables, so
// rtorrent.url is read from RTORRENT_URL and radarr.api_key from
// RADARR_API_KEY.
package config
