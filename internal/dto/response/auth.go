package response

import "sudar-backend/internal/data/entity"

type TeacherResponse struct {
	TeacherID   string `json:"teacher_id"`
	Email       string `json:"email"`
	TeacherName string `json:"teacher_name"`
}

type VerificationCodeSentResponse struct {
	Email string `json:"email"`
}

// Helper converters
func TeacherToResponse(teacher *entity.Teacher) TeacherResponse {
	return TeacherResponse{
		TeacherID:   teacher.ID.String(),
		Email:       teacher.Email,
		TeacherName: teacher.TeacherName,
	}
}
