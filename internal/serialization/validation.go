package serialization

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// ValidateNames checks that names is a usable parameter list: bounded in
// size, with non-empty, printable and unique names.
func ValidateNames(names []string) error {
	if len(names) > MaxParams {
		return fmt.Errorf("%w: %d > %d", ErrTooManyParams, len(names), MaxParams)
	}

	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if err := validateName(name); err != nil {
			return err
		}
		if _, dup := seen[name]; dup {
			return &ValidationError{Type: "duplicate_name", Param: name, Details: "name appears more than once", Err: ErrDuplicateName}
		}
		seen[name] = struct{}{}
	}
	return nil
}

func validateName(name string) error {
	if name == "" {
		return &ValidationError{Type: "invalid_name", Details: "empty name", Err: ErrInvalidName}
	}
	if len(name) > MaxNameLength {
		return &ValidationError{
			Type:    "invalid_name",
			Param:   truncate(name, 32) + "...",
			Details: fmt.Sprintf("length %d exceeds %d", len(name), MaxNameLength),
			Err:     ErrInvalidName,
		}
	}
	for _, r := range name {
		if !unicode.IsPrint(r) {
			return &ValidationError{Type: "invalid_name", Param: name, Details: "contains non-printable characters", Err: ErrInvalidName}
		}
	}
	return nil
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
