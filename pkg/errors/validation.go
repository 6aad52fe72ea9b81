package errors

import (
	"strings"
	"unicode"
)

// ValidateRange reports an INVALID_RANGE error when v lies outside [lo, hi].
func ValidateRange(field string, v, lo, hi int) error {
	if v < lo || v > hi {
		return New(ErrCodeInvalidRange, "%s must be between %d and %d, got %d", field, lo, hi, v)
	}
	return nil
}

// ValidateIdentifier validates a preset identifier from a catalog file.
//
// Identifiers are used as URL path segments and CLI flag values, so they
// must be non-empty, at most 64 characters and limited to lowercase
// letters, digits, '-' and '_'.
func ValidateIdentifier(id string) error {
	if id == "" {
		return New(ErrCodeInvalidPreset, "preset id cannot be empty")
	}
	if len(id) > 64 {
		return New(ErrCodeInvalidPreset, "preset id too long (max 64 characters)")
	}
	for _, r := range id {
		if unicode.IsLower(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			continue
		}
		return New(ErrCodeInvalidPreset, "preset id %q contains invalid character %q", id, r)
	}
	return nil
}

// ValidateOutputDir validates a directory given for exported files.
// It rejects empty values and control characters but allows any other path.
func ValidateOutputDir(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return New(ErrCodeInvalidInput, "output directory cannot be empty")
	}
	for _, r := range dir {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "output directory contains invalid control characters")
		}
	}
	return nil
}
