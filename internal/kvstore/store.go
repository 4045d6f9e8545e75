// Package kvstore provides the durable key-value storage the controller uses
// to remember search history and the last queried place.
package kvstore

import "errors"

var (
	// ErrNotFound is returned when no value is stored under a key.
	ErrNotFound = errors.New("key not found")
)

// Store is the contract every key-value backend must satisfy.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}
