package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrHerdNotFound indicates that a herd with the given ID does not exist.
	ErrHerdNotFound = errors.New("herd not found")

	// ErrPriceNotFound indicates no market price record for a category.
	ErrPriceNotFound = errors.New("market price not found")

	// ErrSnapshotNotFound indicates that no portfolio snapshot has been computed yet.
	ErrSnapshotNotFound = errors.New("portfolio snapshot not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrHerdAlreadySold indicates that a sell operation targeted a herd
	// that is already marked sold.
	ErrHerdAlreadySold = errors.New("herd already sold")

	// ErrInvalidHeadCount indicates a head count below the minimum of one.
	ErrInvalidHeadCount = errors.New("head count must be at least 1")

	// ErrNegativeWeightGain indicates a negative daily weight gain rate.
	ErrNegativeWeightGain = errors.New("daily weight gain cannot be negative")

	// ErrInvalidCalvingRate indicates a calving/lambing rate outside [0,1].
	ErrInvalidCalvingRate = errors.New("calving rate must be between 0 and 1")

	// ErrInvalidDateRange indicates that the provided date range is invalid
	// (e.g., start date is after end date).
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrNegativeAmount indicates that an amount field has an invalid negative value.
	ErrNegativeAmount = errors.New("amount cannot be negative")
)

// Data integrity errors represent inconsistencies or corruption in the data.
var (
	// ErrMissingRequiredField indicates that a required field is missing or empty.
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrUnknownSpecies indicates a species outside the closed reference list.
	ErrUnknownSpecies = errors.New("unknown species")

	// ErrUnknownCategory indicates a category outside the species' reference list.
	ErrUnknownCategory = errors.New("unknown category for species")
)
