// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means a referenced question or option does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation means the mutation input is malformed or semantically
	// invalid. Raised before any storage write.
	ErrValidation = errors.New("invalid input")
)

// PersistenceError wraps a storage failure. The triggering transaction has
// been rolled back in full; callers see the state as it was before the call.
type PersistenceError struct {
	Op  string // logical operation, e.g. "reorder questions"
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
