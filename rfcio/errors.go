package rfcio

import "errors"

var (
	// ErrEmptyConfig is returned when a YAML document decodes with no
	// class count set at all.
	ErrEmptyConfig = errors.New("rfcio: config has no class parameters")

	// ErrBadConfig wraps a YAML document that decodes but fails
	// rfc.New's own argument validation (bad class count/width, etc.).
	ErrBadConfig = errors.New("rfcio: config rejected by rfc.New")
)
