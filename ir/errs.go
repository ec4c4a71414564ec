package ir

import "errors"

var (
	ErrFormat      = errors.New("bad tree format")
	ErrUnsupported = errors.New("unsupported value")
)
