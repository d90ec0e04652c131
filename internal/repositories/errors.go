package repositories

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound    = errors.New("record not found")
	ErrNilEntity   = errors.New("entity must not be nil")
	ErrPersistence = errors.New("persistence error")
	ErrClosed      = errors.New("unit of work is closed")
)

// NotFoundError names the entity and id that a lookup missed
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with ID %d", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// IsNotFoundError reports whether err is a repository lookup miss
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// Persistence failure kinds
const (
	KindConcurrency = "concurrency error"
	KindUpdate      = "database update error"
	KindUnknown     = "error"
)

// PersistenceError wraps a failed commit. Kind classifies the cause.
type PersistenceError struct {
	Kind string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}
