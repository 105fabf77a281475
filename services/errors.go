package services

import (
	"errors"
	"fmt"
)

// Sentinel errors for outcomes that carry no extra data.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("caller is not allowed to perform this action")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserHasHotels      = errors.New("user still owns hotels and cannot be deleted")
)

// CapacityExceededError is returned when an incremental add or quantity update
// would push a hotel's aggregate room quantity above its declared total.
type CapacityExceededError struct {
	Limit uint
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("the total quantity of rooms exceeds the hotel's capacity of %d", e.Limit)
}

// CapacityMismatchError is returned when a full configuration replace does not
// sum exactly to the hotel's declared total.
type CapacityMismatchError struct {
	Expected uint
	Actual   uint
}

func (e *CapacityMismatchError) Error() string {
	return fmt.Sprintf("the sum of room quantities (%d) does not match the hotel's total of %d", e.Actual, e.Expected)
}

// InvalidCombinationError is returned when an accommodation category is not
// allowed for the given room type.
type InvalidCombinationError struct {
	RoomType      string
	Accommodation string
}

func (e *InvalidCombinationError) Error() string {
	return fmt.Sprintf("accommodation %q is not allowed for room type %q", e.Accommodation, e.RoomType)
}

// DuplicateConfigurationError is returned when a hotel already has a
// configuration for the same (room type, accommodation) pair.
type DuplicateConfigurationError struct {
	RoomTypeID      uint
	AccommodationID uint
}

func (e *DuplicateConfigurationError) Error() string {
	return fmt.Sprintf("hotel already has a configuration for room type %d and accommodation %d", e.RoomTypeID, e.AccommodationID)
}

// UnknownCatalogEntryError is returned when a room type, accommodation or city
// reference (by id or by name) does not resolve to a catalog entry.
type UnknownCatalogEntryError struct {
	Kind string
	Ref  string
}

func (e *UnknownCatalogEntryError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Ref)
}

// IsValidationError reports whether err is a deterministic business-rule
// violation, as opposed to a missing resource or a persistence failure.
func IsValidationError(err error) bool {
	var exceeded *CapacityExceededError
	var mismatch *CapacityMismatchError
	var combination *InvalidCombinationError
	var duplicate *DuplicateConfigurationError
	var unknown *UnknownCatalogEntryError
	return errors.As(err, &exceeded) ||
		errors.As(err, &mismatch) ||
		errors.As(err, &combination) ||
		errors.As(err, &duplicate) ||
		errors.As(err, &unknown)
}
