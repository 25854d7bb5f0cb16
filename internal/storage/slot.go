// Package storage persists the full task-list snapshot in a key-value slot.
// The slot holds an opaque UTF-8 blob addressed by a single fixed key; the
// codec in snapshot.go defines the blob's shape.
package storage

// Slot is the persistence contract: get-or-absent and full overwrite.
type Slot interface {
	// Get returns the stored value and whether the key was present.
	Get(key string) (string, bool, error)
	// Set overwrites the value for key.
	Set(key, value string) error
}
