package backend

import (
	"context"

	"tally/internal/core"
)

// Backend is the durable home of the expense sequence. Callers only ever
// append and read; records are never edited or deleted.
type Backend interface {
	Add(ctx context.Context, e core.Expense) error
	All(ctx context.Context) ([]core.Expense, error)
	Close() error
}

// CleanupFunc represents a cleanup function for resources
type CleanupFunc func() error

// Result contains the backend instance and optional cleanup function
type Result struct {
	Backend Backend
	Cleanup CleanupFunc
}

// Factory creates backends based on configuration
type Factory interface {
	// CreateBackend creates a backend instance based on the provided config
	CreateBackend(ctx context.Context, config Config) (*Result, error)
}

// Config holds configuration for backend creation
type Config struct {
	// Backend type
	Type Type

	// File backend specific
	LedgerPath string

	// SQLite specific
	SQLiteDBPath string
}

// Type represents the kind of backend
type Type string

const (
	FileBackend   Type = "file"
	SQLiteBackend Type = "sqlite"
)

// String implements fmt.Stringer
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is valid
func (t Type) IsValid() bool {
	switch t {
	case FileBackend, SQLiteBackend:
		return true
	default:
		return false
	}
}

// Types returns all valid backend types
func Types() []Type {
	return []Type{FileBackend, SQLiteBackend}
}
