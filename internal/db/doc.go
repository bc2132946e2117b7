// Package db establishes PostgreSQL connections for catalog export.
//
// The connector wraps pgxpool with pooling defaults, transient-failure
// retry and actionable error messages. Authentication is standard
// username/password; credentials come from the connection string or the
// usual libpq environment variables.
package db
