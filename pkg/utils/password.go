package utils

import (
	"errors"
	"unicode"
)

var (
	ErrPasswordTooShort = errors.New("Password must be at least 6 characters long.")
	ErrPasswordNoLetter = errors.New("Password must contain at least one letter.")
	ErrPasswordNoNumber = errors.New("Password must contain at least one number.")
)

// ValidatePassword cek aturan password. Urutan cek: panjang → huruf → angka,
// pelanggaran pertama yang dikembalikan.
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return ErrPasswordTooShort
	}

	hasLetter := false
	hasNumber := false
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasNumber = true
		}
	}

	if !hasLetter {
		return ErrPasswordNoLetter
	}
	if !hasNumber {
		return ErrPasswordNoNumber
	}

	return nil
}
