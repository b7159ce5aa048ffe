// Package store holds the persistence-level sentinels shared by every
// repository implementation.
package store

import "errors"

var (
	ErrNotFound     = errors.New("store: record not found")
	ErrDuplicateKey = errors.New("store: duplicate key")
)
