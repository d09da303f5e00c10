// Package server holds the HTTP server configuration.
//
// The start command handles the actual server startup; this package only
// defines the configuration structure for server settings: the listen
// port and the API key protecting the write endpoints.
package server
