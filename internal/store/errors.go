package store

import "errors"

var (
	// ErrStoreNotFound is returned when the given path does not resolve to a store file.
	ErrStoreNotFound = errors.New("store not found")
	// ErrConnectionFailed is returned when the store file exists but cannot be opened.
	ErrConnectionFailed = errors.New("store connection failed")
	// ErrVersionDetection is returned when schema introspection itself fails.
	// Nothing downstream can proceed without a detected version.
	ErrVersionDetection = errors.New("schema version detection failed")
	// ErrQuery is returned when a retrieval query against the store fails.
	// Queries are never retried; the caller decides whether to reopen.
	ErrQuery = errors.New("store query failed")
)
