package core

import "errors"

var (
	// ErrUnknownStrategy specifies that a swap strategy name is not recognized.
	ErrUnknownStrategy = errors.New("unknown swap strategy")
)
