// Package sqlstore keeps the document snapshot in a SQL database. PostgreSQL
// is reached through the pgx driver and single-file deployments use SQLite.
// The schema is managed by goose migrations embedded in the binary and
// applied when the store is opened.
package sqlstore
