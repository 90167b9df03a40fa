package model

import (
	"errors"
	"fmt"
)

var (
	// ErrConstruction is returned when a row cannot be built from the given input.
	ErrConstruction = errors.New("invalid disk row")
	// ErrIndexOutOfRange is returned when an index does not address a disk.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// ConstructionError describes a rejected row construction.
// Count is the requested light count, or the number of parsed disks.
type ConstructionError struct {
	Count  int
	Reason string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("%v: %s (got %d)", ErrConstruction, e.Reason, e.Count)
}

// Unwrap lets errors.Is match ErrConstruction.
func (e *ConstructionError) Unwrap() error {
	return ErrConstruction
}

// IndexError describes an access outside [0, Total).
type IndexError struct {
	Op    string
	Index int
	Total int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: %v: index %d, row length %d", e.Op, ErrIndexOutOfRange, e.Index, e.Total)
}

// Unwrap lets errors.Is match ErrIndexOutOfRange.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}
