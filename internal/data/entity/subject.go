package entity

import "github.com/google/uuid"

type Subject struct {
	Base
	ClassroomID uuid.UUID `db:"classroom_id"`
	SubjectName string    `db:"subject_name"`
}
