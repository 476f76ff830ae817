package errors

import (
	"testing"
	"time"
)

func TestValidateDimensions(t *testing.T) {
	tests := []struct {
		name    string
		columns int
		rows    int
		wantErr bool
	}{
		{"classic", 10, 22, false},
		{"minimum", 4, 4, false},
		{"maximum", 64, 64, false},

		{"too narrow", 3, 22, true},
		{"too short", 10, 3, true},
		{"too wide", 65, 22, true},
		{"too tall", 10, 65, true},
		{"zero", 0, 0, true},
		{"negative", -10, 22, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDimensions(tt.columns, tt.rows)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDimensions(%d, %d) error = %v, wantErr %v", tt.columns, tt.rows, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidDimensions) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidDimensions)
			}
		})
	}
}

func TestValidateFallInterval(t *testing.T) {
	tests := []struct {
		name    string
		input   time.Duration
		wantErr bool
	}{
		{"default", 500 * time.Millisecond, false},
		{"one second", time.Second, false},
		{"minimum", MinFallInterval, false},
		{"maximum", MaxFallInterval, false},

		{"zero", 0, true},
		{"negative", -time.Second, true},
		{"too fast", 10 * time.Millisecond, true},
		{"too slow", time.Minute, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFallInterval(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFallInterval(%s) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInterval) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidInterval)
			}
		})
	}
}

func TestValidateKeyName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"arrow", "left", false},
		{"letter", "z", false},
		{"space", " ", false},
		{"modifier", "ctrl+c", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 40)), true},
		{"control char", "a\x01", true},
		{"newline", "\n", true},
		{"invalid utf8", "\xff", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateKeyName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateKeyName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
