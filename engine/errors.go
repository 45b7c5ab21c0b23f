package engine

import "errors"

var (
	ErrSearchInProgress = errors.New("search already in progress")
	ErrNoLegalAction    = errors.New("no legal action")
	ErrInvalidConfig    = errors.New("invalid engine config")
)
