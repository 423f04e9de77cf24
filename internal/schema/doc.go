// Package schema owns the persisted document format. It decodes documents of
// any historical shape into raw values, classifies each pair's schedule as
// canonical, legacy flat, or empty, and migrates everything into the
// canonical dual-direction shape. Normalization is total and idempotent; only
// Parse can fail, and only when the input is not a JSON object.
package schema
