package response

import (
	"time"

	"sudar-backend/internal/data/entity"
)

type StudentResponse struct {
	Rollno      string    `json:"rollno"`
	ClassroomID string    `json:"classroom_id"`
	StudentName string    `json:"student_name"`
	DOB         string    `json:"dob"`
	Grade       int       `json:"grade"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// StudentToResponse formats dob as plain date, tanpa komponen waktu
func StudentToResponse(student *entity.Student) StudentResponse {
	return StudentResponse{
		Rollno:      student.Rollno,
		ClassroomID: student.ClassroomID.String(),
		StudentName: student.StudentName,
		DOB:         student.DOB.Format("2006-01-02"),
		Grade:       student.Grade,
		CreatedAt:   student.CreatedAt,
		UpdatedAt:   student.UpdatedAt,
	}
}

func StudentsToResponse(students []*entity.Student) []StudentResponse {
	result := make([]StudentResponse, 0, len(students))
	for _, student := range students {
		result = append(result, StudentToResponse(student))
	}
	return result
}
