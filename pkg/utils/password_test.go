package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"too short", "short", ErrPasswordTooShort},
		{"no letter", "1234567", ErrPasswordNoLetter},
		{"no number", "abcdefg", ErrPasswordNoNumber},
		{"short digits only reports length first", "1234", ErrPasswordTooShort},
		{"valid simple", "Test123", nil},
		{"valid mixed", "GoodPwd9", nil},
		{"valid longer", "Complex1Pass", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
