// Package service contains the application's use cases. Trainer owns the
// in-memory document, serializes every operation on it, and writes a full
// snapshot through a store.DocumentStore after each mutation.
//
// Trainer coordinates the pure packages: domain for entities, srs for
// scheduling, schema for the persisted format, and training for pool
// selection, card picking and the drill session. It depends only on the
// store interfaces, never on a concrete storage backend.
//
// Error handling:
//   - expected conditions surface as sentinel errors from domain, training,
//     schema, srs and this package, checked with errors.Is
//   - storage failures are wrapped in *ServiceError
//   - the API layer maps both to HTTP status codes
package service
