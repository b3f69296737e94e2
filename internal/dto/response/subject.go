package response

import (
	"time"

	"sudar-backend/internal/data/entity"
)

type SubjectResponse struct {
	SubjectID   string    `json:"subject_id"`
	ClassroomID string    `json:"classroom_id"`
	SubjectName string    `json:"subject_name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Helper converters
func SubjectToResponse(subject *entity.Subject) SubjectResponse {
	return SubjectResponse{
		SubjectID:   subject.ID.String(),
		ClassroomID: subject.ClassroomID.String(),
		SubjectName: subject.SubjectName,
		CreatedAt:   subject.CreatedAt,
		UpdatedAt:   subject.UpdatedAt,
	}
}

func SubjectsToResponse(subjects []*entity.Subject) []SubjectResponse {
	result := make([]SubjectResponse, 0, len(subjects))
	for _, subject := range subjects {
		result = append(result, SubjectToResponse(subject))
	}
	return result
}
