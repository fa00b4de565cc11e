package bindb

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// ErrNotInitialized is returned by Global before InitGlobal succeeded
var ErrNotInitialized = errors.New("BIN database not initialized, call InitGlobal() first")

// globalDB is loaded once at startup and shared across the app
var globalDB atomic.Pointer[Database]

// InitGlobal loads the database at path and installs it as the global instance
// An empty path falls back to DefaultPath
//
// Should be called once from main before any lookup
func InitGlobal(path string) (*Database, error) {
	if path == "" {
		path = DefaultPath
	}

	db, err := Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load global BIN database: %w", err)
	}

	globalDB.Store(db)
	return db, nil
}

// Global returns the instance installed by InitGlobal
func Global() (*Database, error) {
	db := globalDB.Load()
	if db == nil {
		return nil, ErrNotInitialized
	}
	return db, nil
}
