package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no task has the requested id
	ErrNotFound = errors.New("task not found")
	// ErrValidation matches every *ValidationError via errors.Is
	ErrValidation = errors.New("invalid task")
)

// ValidationError rejects an Add or Edit before anything is mutated
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrValidation, e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// PersistenceError wraps a failed read or write of the durable slot.
// The store logs and absorbs it; it never reaches the caller of a mutation.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, SlotKey, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
