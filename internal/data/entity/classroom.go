package entity

import "github.com/google/uuid"

type Classroom struct {
	Base
	TeacherID     uuid.UUID `db:"teacher_id"`
	ClassroomName string    `db:"classroom_name"`
}
