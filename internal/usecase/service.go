package usecase

import (
	"sudar-backend/internal/data/repository"
	"sudar-backend/pkg/mailer"
	"sudar-backend/pkg/token"
	"sudar-backend/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	Classroom ClassroomService
	Student   StudentService
	Subject   SubjectService
	Activity  ActivityService
}

func NewService(
	repo *repository.Repository,
	config *utils.Config,
	tokens *token.Manager,
	mail mailer.Mailer,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:      NewAuthService(repo, config, tokens, mail, log),
		Classroom: NewClassroomService(repo, log),
		Student:   NewStudentService(repo, log),
		Subject:   NewSubjectService(repo, log),
		Activity:  NewActivityService(repo, log),
	}
}
