// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting. It acts as an adapter between local clients and
// the trainer, translating HTTP concerns to operations on lists, pairs and
// the drill session.
package api
