package schema

import "errors"

// ErrMalformedDocument is returned when input cannot be read as a structured
// document at all. It is the only error the ingestion path produces.
var ErrMalformedDocument = errors.New("malformed document")
