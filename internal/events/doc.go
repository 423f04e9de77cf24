// Package events lets the trainer announce what happened without knowing who
// listens. Handlers are registered on an emitter and receive every event in
// registration order.
package events
