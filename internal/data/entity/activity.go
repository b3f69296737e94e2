package entity

import "github.com/google/uuid"

type ActivityType string

const (
	ActivityTypeWorksheet  ActivityType = "worksheet"
	ActivityTypeQuiz       ActivityType = "quiz"
	ActivityTypeAssignment ActivityType = "assignment"
)

type Activity struct {
	Base
	SubjectID uuid.UUID    `db:"subject_id"`
	Title     string       `db:"title"`
	Type      ActivityType `db:"type"`
}
