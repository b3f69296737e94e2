package response

import (
	"time"

	"sudar-backend/internal/data/entity"
)

type ClassroomResponse struct {
	ClassroomID   string    `json:"classroom_id"`
	TeacherID     string    `json:"teacher_id"`
	ClassroomName string    `json:"classroom_name"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Helper converters
func ClassroomToResponse(classroom *entity.Classroom) ClassroomResponse {
	return ClassroomResponse{
		ClassroomID:   classroom.ID.String(),
		TeacherID:     classroom.TeacherID.String(),
		ClassroomName: classroom.ClassroomName,
		CreatedAt:     classroom.CreatedAt,
		UpdatedAt:     classroom.UpdatedAt,
	}
}

func ClassroomsToResponse(classrooms []*entity.Classroom) []ClassroomResponse {
	result := make([]ClassroomResponse, 0, len(classrooms))
	for _, classroom := range classrooms {
		result = append(result, ClassroomToResponse(classroom))
	}
	return result
}
