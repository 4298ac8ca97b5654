package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a field-syntax or business-rule violation.
// Field carries the offending field path so callers can report it.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Is enables errors.Is() comparison for ValidationError
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return e.Field == t.Field && e.Message == t.Message
}

// ReadOnlyModeError is returned by the snapshot backend for any mutation
type ReadOnlyModeError struct {
	Operation string
}

func (e *ReadOnlyModeError) Error() string {
	if e.Operation != "" {
		return fmt.Sprintf("storage is read-only: %s not allowed", e.Operation)
	}
	return "storage is read-only"
}

// Is enables errors.Is() comparison for ReadOnlyModeError regardless of operation
func (e *ReadOnlyModeError) Is(target error) bool {
	_, ok := target.(*ReadOnlyModeError)
	return ok
}

// StorageError wraps a backend failure not otherwise classified
type StorageError struct {
	Operation string
	Err       error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error during %s: %v", e.Operation, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrTurnoNotFound = &NotFoundError{Entity: "turno"}
)

// Validation Errors (business rules over a turno candidate)
var (
	ErrInvalidDate         = &ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"}
	ErrInvalidShiftType    = &ValidationError{Field: "shift_type", Message: "shift type must be morning, afternoon or night"}
	ErrInvalidTime         = &ValidationError{Field: "time", Message: "time must be in HH:MM format"}
	ErrConflictingState    = &ValidationError{Field: "is_vacation", Message: "a vacation day cannot also declare a shift"}
	ErrIncompleteTimeRange = &ValidationError{Field: "end_time", Message: "start and end time must both be present or both absent"}
	ErrInvalidTimeOrder    = &ValidationError{Field: "end_time", Message: "start time must be before end time"}
)

// Date Parsing Errors
var (
	ErrInvalidDateFormat = errors.New("invalid date format")
)

// Import Errors (fatal for the whole batch, unlike per-row warnings)
var (
	ErrEmptyFile       = errors.New("uploaded file is empty")
	ErrFileTooLarge    = errors.New("uploaded file exceeds the size limit")
	ErrInvalidFileType = errors.New("uploaded file must be an .xlsx spreadsheet")
	ErrNoDataRows      = errors.New("spreadsheet has no data rows")
	ErrMissingColumns  = errors.New("spreadsheet is missing the date column")
)

// Storage Errors
var (
	ErrReadOnlyMode = &ReadOnlyModeError{}
)

// Configuration Errors
var (
	ErrUnknownStorageBackend = &ConfigurationError{Message: "unknown storage backend, expected postgres or snapshot"}
	ErrSnapshotPathRequired  = &ConfigurationError{Message: "SNAPSHOT_PATH must be set for the snapshot backend"}
	ErrJWTSecretRequired     = &ConfigurationError{Message: "JWT_SECRET must be set when AUTH_ENABLED is true"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsReadOnlyMode checks if an error is a ReadOnlyModeError
func IsReadOnlyMode(err error) bool {
	var roErr *ReadOnlyModeError
	return errors.As(err, &roErr)
}

// IsStorage checks if an error is a StorageError
func IsStorage(err error) bool {
	var storageErr *StorageError
	return errors.As(err, &storageErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewReadOnlyModeError creates a ReadOnlyModeError naming the rejected operation
func NewReadOnlyModeError(operation string) error {
	return &ReadOnlyModeError{Operation: operation}
}

// NewStorageError wraps a backend failure with the operation that caused it
func NewStorageError(operation string, err error) error {
	return &StorageError{Operation: operation, Err: err}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
