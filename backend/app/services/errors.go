package services

import "errors"

// Every operator-facing failure maps onto one of these. Controllers turn
// all of them into an empty 404 body; anything else is a 500.
var (
	ErrNotFound       = errors.New("not found")
	ErrAlreadyQueued  = errors.New("module already queued for agent")
	ErrAlreadyEnabled = errors.New("module already auto-enabled")
	ErrNotEnabled     = errors.New("module not auto-enabled")
	ErrInvalidInput   = errors.New("missing or malformed input")
	ErrUnknownModule  = errors.New("unknown module name")
	ErrDeliveryFailed = errors.New("push delivery failed")
)
