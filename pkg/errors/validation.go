package errors

import (
	"unicode"

	"github.com/google/uuid"
)

// Limits applied to user supplied maze requests.
const (
	MaxDimension = 512
	MaxCells     = 128 * 1024
	MaxMaskBytes = 1 << 20
)

// ValidateDimensions rejects grids that are empty or too large to generate
// interactively.
func ValidateDimensions(columns, rows int) error {
	if columns < 1 || rows < 1 {
		return New(ErrCodeInvalidDimensions, "dimensions must be at least 1x1, got %dx%d", columns, rows)
	}
	if columns > MaxDimension || rows > MaxDimension {
		return New(ErrCodeInvalidDimensions, "dimensions must not exceed %d, got %dx%d", MaxDimension, columns, rows)
	}
	if columns*rows > MaxCells {
		return New(ErrCodeInvalidDimensions, "grid too large (max %d cells)", MaxCells)
	}
	return nil
}

// ValidateMaskText performs cheap checks on a mask diagram before parsing.
//
// Validation rules:
//   - At most MaxMaskBytes bytes
//   - No null bytes or control characters other than tab, CR and LF
func ValidateMaskText(text string) error {
	if len(text) > MaxMaskBytes {
		return New(ErrCodeInvalidMask, "mask too large (max %d bytes)", MaxMaskBytes)
	}
	for _, r := range text {
		if r == '\n' || r == '\r' || r == '\t' {
			continue
		}
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidMask, "mask contains invalid control characters")
		}
	}
	return nil
}

// ValidateID checks that id is a UUID as issued by the maze store.
func ValidateID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidID, "id cannot be empty")
	}
	if _, err := uuid.Parse(id); err != nil {
		return Wrap(ErrCodeInvalidID, err, "invalid id %q", id)
	}
	return nil
}
