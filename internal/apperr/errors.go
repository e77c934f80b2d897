// Package apperr holds the sentinel errors shared across packages.
package apperr

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrUnknownSection = errors.New("unknown section")
	ErrInvalidInput   = errors.New("invalid input")
	ErrDelivery       = errors.New("delivery failed")
)
