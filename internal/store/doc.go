// Package store defines the persistence contract for the document snapshot.
// The interfaces here keep the application's core logic independent of
// whether the snapshot lives in a file or a database, and the helpers are
// shared by the SQL-backed implementation.
package store
