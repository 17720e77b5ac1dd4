// Package config provides configuration management for the verifier.
//
// It utilizes Viper for loading configuration from environment variables,
// a .env file (via godotenv) and an optional verifier.yaml config file.
// Defaults come from `default` struct tags, registered by reflection so that
// every key can also be overridden from the environment.
//
// # Configuration Structure
//
//   - Compare: directory layout, tiers, document extensions and failure policy
//   - Server: HTTP API settings (port, API key)
//   - Storage: S3/MinIO report archive
//   - Database: run history database
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Compare.Tiers)
//
// Environment variables map to nested keys with underscores, e.g.
// COMPARE_ROOT=/srv/openshift, COMPARE_TIERS=free,starter, LOG_LEVEL=debug.
package config
