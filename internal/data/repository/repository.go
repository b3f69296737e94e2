package repository

import (
	"sudar-backend/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Teacher          TeacherRepository
	VerificationCode VerificationCodeRepository
	Classroom        ClassroomRepository
	Student          StudentRepository
	Subject          SubjectRepository
	Activity         ActivityRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Teacher:          NewTeacherRepository(db, log),
		VerificationCode: NewVerificationCodeRepository(db, log),
		Classroom:        NewClassroomRepository(db, log),
		Student:          NewStudentRepository(db, log),
		Subject:          NewSubjectRepository(db, log),
		Activity:         NewActivityRepository(db, log),
	}
}
