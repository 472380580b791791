package serialization

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrChecksumMismatch   = errors.New("checksum mismatch: file may be corrupted")
	ErrInvalidMagic       = errors.New("invalid magic bytes")
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrHeaderTooLarge     = errors.New("header exceeds maximum size")
	ErrTooManyParams      = errors.New("too many parameters in file")
	ErrInvalidName        = errors.New("invalid parameter name")
	ErrDuplicateName      = errors.New("duplicate parameter name")
)

// ValidationError provides detailed information about validation failures.
type ValidationError struct {
	Type    string // Type of error (e.g., "duplicate_name", "invalid_name")
	Param   string // Parameter name involved
	Details string // Additional details
	Err     error  // Sentinel matched by errors.Is
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("%s: param %q: %s", e.Type, e.Param, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Details)
}

// Unwrap returns the sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
