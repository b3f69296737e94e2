package entity

import "time"

// EmailVerificationCode satu baris per email, kode lama ditimpa kode baru.
type EmailVerificationCode struct {
	Email      string    `db:"email"`
	Code       string    `db:"code"`
	ExpiryTime time.Time `db:"expiry_time"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}
