// Package database handles the connection to the run history database.
//
// It provides a wrapper around GORM to configure either a local SQLite file
// (the default, zero setup) or a shared MySQL server.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
