package db

import "errors"

// Domain-level database error sentinels.
var (
	ErrKeyNotFound = errors.New("key not found")
	ErrEmptyKey    = errors.New("key must not be empty")
)
