package domain

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrValidation             = errors.New("validation failed")
	ErrCycleOverlap           = errors.New("cycle date range overlaps an existing cycle")
	ErrNotFound               = errors.New("not found")
	ErrInvalidActivation      = errors.New("cycle cannot be activated")
	ErrUnsupportedPeriodicity = errors.New("periodicity cannot be evaluated")
)

// ValidationError reports malformed construction input. It is never corrected silently.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// CycleOverlapError is returned when a cycle's date range would intersect an existing one.
type CycleOverlapError struct {
	ConflictingCycleID     primitive.ObjectID
	ConflictingCycleNumber int
}

func (e *CycleOverlapError) Error() string {
	return fmt.Sprintf("date range overlaps cycle #%d (%s)", e.ConflictingCycleNumber, e.ConflictingCycleID.Hex())
}

func (e *CycleOverlapError) Is(target error) bool { return target == ErrCycleOverlap }

// NotFoundError reports a reference to something the program does not contain.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// InvalidActivationError is returned when a cycle is completed or the reference date
// falls outside its range.
type InvalidActivationError struct {
	CycleID primitive.ObjectID
	Reason  string
}

func (e *InvalidActivationError) Error() string {
	return fmt.Sprintf("cannot activate cycle %s: %s", e.CycleID.Hex(), e.Reason)
}

func (e *InvalidActivationError) Is(target error) bool { return target == ErrInvalidActivation }
