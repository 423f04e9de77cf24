// Package filestore keeps the document snapshot in a single file. It works
// against an afero filesystem so tests can run on memory.
package filestore
