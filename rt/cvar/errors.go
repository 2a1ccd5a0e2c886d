package cvar

import "errors"

var (
	// ErrTypeMismatch indicates Set was given a Go value with no matching kind.
	ErrTypeMismatch = errors.New("cvar: type mismatch")
	// ErrReentrantWrite indicates a write API is called from an observer of the same Var.
	ErrReentrantWrite = errors.New("cvar: re-entrant write in observer")
)
