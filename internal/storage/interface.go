package storage

import "errors"

// ErrNotInitialized is returned by stores that have not been created with Init.
var ErrNotInitialized = errors.New("storage not initialized, run 'tranquil init' first")

// ErrNotLoaded is returned when a store is used before Load or Init.
var ErrNotLoaded = errors.New("storage not loaded")

// KV is the key-value contract the engines depend on. Values are JSON text.
type KV interface {
	// Get returns the value stored under key. found is false when the key is absent.
	Get(key string) (value string, found bool, err error)
	Set(key, value string) error
	Delete(key string) error
	// Keys lists stored keys in ascending order.
	Keys() ([]string, error)
}

// Provider is a KV backend with a lifecycle.
type Provider interface {
	KV

	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Utils
	GetConfigPath() string
}
