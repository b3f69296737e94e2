package entity

import (
	"time"

	"github.com/google/uuid"
)

// Student pakai rollno sebagai primary key, bukan UUID.
type Student struct {
	Rollno      string    `db:"rollno"`
	ClassroomID uuid.UUID `db:"classroom_id"`
	StudentName string    `db:"student_name"`
	DOB         time.Time `db:"dob"`
	Grade       int       `db:"grade"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
