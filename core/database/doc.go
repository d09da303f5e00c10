// Package database handles database connections.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to properly configure
// connections based on the application's configuration.
//
// # Connect
//
// The Connect function establishes a connection for the configured driver:
// mysql for production deployments (with connection pooling and a
// ping-with-timeout on startup) and sqlite for tests and local setups,
// where Name is the database file path or ":memory:".
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
