// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package model

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is wrapped by every IndexError.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrSetupNotRegistered is returned when a point is asked to drop a
	// setup it never registered.
	ErrSetupNotRegistered = errors.New("experiment setup not registered")

	// ErrSetupAlreadyRegistered is returned when the same setup is
	// registered twice on one point.
	ErrSetupAlreadyRegistered = errors.New("experiment setup already registered")

	// ErrSetupIDConflict is returned when a point already holds a different
	// setup with the same identifier.
	ErrSetupIDConflict = errors.New("experiment setup identifier already in use")

	// ErrSetupWithoutID is returned when a setup without an identifier is
	// registered on a point.
	ErrSetupWithoutID = errors.New("experiment setup has no identifier")

	// ErrUndefinedExposure is returned when an exposure time calculation
	// would divide by zero.
	ErrUndefinedExposure = errors.New("exposure time undefined")
)

// IndexError reports an index outside of a collection's bounds.
type IndexError struct {
	Collection string
	Index      int
	Len        int
}

// Error implements the error interface for IndexError.
func (e *IndexError) Error() string {
	return fmt.Sprintf("%s index %d out of range [0, %d)", e.Collection, e.Index, e.Len)
}

// Unwrap lets errors.Is match ErrIndexOutOfRange.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// CheckIndex returns an *IndexError when index is not within [0, length).
func CheckIndex(collection string, index, length int) error {
	if index < 0 || index >= length {
		return &IndexError{Collection: collection, Index: index, Len: length}
	}
	return nil
}
