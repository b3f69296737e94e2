package entity

import "time"

type Teacher struct {
	Base
	TeacherName       string     `db:"teacher_name"`
	Email             string     `db:"email"`
	HashedPassword    string     `db:"hashed_password"`
	ResetPasswordCode *string    `db:"reset_password_code"`
	CodeExpiryTime    *time.Time `db:"code_expiry_time"`
}
