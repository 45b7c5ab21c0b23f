package seedmg

import "errors"

// ErrInvalidFEN is returned by ParseFEN for malformed or impossible positions.
var ErrInvalidFEN = errors.New("invalid FEN")
