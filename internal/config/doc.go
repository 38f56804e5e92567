// Package config handles application configuration for the Carte API.
//
// Configuration is read from environment variables with defaults for
// everything except DB_HOST, which must be set explicitly. Load never
// fails on bad values; Validate reports every problem at once via
// errors.Join so a misconfigured deployment sees the full list.
//
// # Variables
//
//	SERVER_PORT, SERVER_ENV, SERVER_READ_TIMEOUT, SERVER_WRITE_TIMEOUT
//	CORS_ALLOWED_ORIGINS (comma-separated)
//	DB_HOST, DB_PORT, DB_NAMESPACE, DB_DATABASE, DB_USER, DB_PASSWORD
//	UNIQUE_NAMES - reject case-insensitive duplicate item names (default true)
package config
