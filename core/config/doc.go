// Package config provides configuration management for the catalog service.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file, with defaults registered from struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: MySQL connection details (sqlite for tests)
//   - Log: Logging level and format
//   - Provider: external provider policy keys and credentials
//     (data_provider, genre_provider, homepage_genres, ...)
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
