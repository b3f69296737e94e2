package adaptor

import (
	"sudar-backend/internal/usecase"
	"sudar-backend/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth      *AuthHandler
	Classroom *ClassroomHandler
	Student   *StudentHandler
	Subject   *SubjectHandler
	Activity  *ActivityHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, config, log),
		Classroom: NewClassroomHandler(service.Classroom, log),
		Student:   NewStudentHandler(service.Student, log),
		Subject:   NewSubjectHandler(service.Subject, log),
		Activity:  NewActivityHandler(service.Activity, log),
	}
}
