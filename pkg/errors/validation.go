package errors

import (
	"time"
	"unicode"
	"unicode/utf8"
)

// Grid and timing limits accepted by the validators.
const (
	MinDimension = 4
	MaxDimension = 64

	MinFallInterval = 50 * time.Millisecond
	MaxFallInterval = 5 * time.Second

	maxKeyLength = 32
)

// ValidateDimensions checks that a grid of columns x rows is playable.
// Every catalog piece must fit the spawn row, and the frame must fit a
// reasonable terminal.
func ValidateDimensions(columns, rows int) error {
	if columns < MinDimension || columns > MaxDimension {
		return New(ErrCodeInvalidDimensions, "columns must be between %d and %d, got %d", MinDimension, MaxDimension, columns)
	}
	if rows < MinDimension || rows > MaxDimension {
		return New(ErrCodeInvalidDimensions, "rows must be between %d and %d, got %d", MinDimension, MaxDimension, rows)
	}
	return nil
}

// ValidateFallInterval checks the automatic descent interval.
func ValidateFallInterval(d time.Duration) error {
	if d < MinFallInterval || d > MaxFallInterval {
		return New(ErrCodeInvalidInterval, "fall interval must be between %s and %s, got %s", MinFallInterval, MaxFallInterval, d)
	}
	return nil
}

// ValidateKeyName checks a key binding name such as "left", "ctrl+c" or
// " " (space).
//
// Validation rules:
//   - Key cannot be empty
//   - Maximum length of 32 bytes
//   - Must be valid UTF-8
//   - No control characters
func ValidateKeyName(key string) error {
	if key == "" {
		return New(ErrCodeInvalidKeyBinding, "key name cannot be empty")
	}
	if len(key) > maxKeyLength {
		return New(ErrCodeInvalidKeyBinding, "key name too long (max %d characters): %q", maxKeyLength, key)
	}
	if !utf8.ValidString(key) {
		return New(ErrCodeInvalidKeyBinding, "key name is not valid UTF-8: %q", key)
	}
	for _, r := range key {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidKeyBinding, "key name contains control characters: %q", key)
		}
	}
	return nil
}
