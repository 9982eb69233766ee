package bmpsteg

import "errors"

var (
	ErrTruncatedInput  = errors.New("bmpsteg: truncated input")
	ErrCorruptFrame    = errors.New("bmpsteg: corrupt frame")
	ErrPayloadTooLarge = errors.New("bmpsteg: payload too large")
	ErrLimitExceeded   = errors.New("bmpsteg: limit exceeded")
	ErrIO              = errors.New("bmpsteg: I/O failure")
)
