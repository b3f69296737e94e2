package usecase

import (
	"context"
	"fmt"
	"time"

	"sudar-backend/internal/data/entity"
	"sudar-backend/internal/data/repository"
	"sudar-backend/internal/dto/request"
	"sudar-backend/internal/dto/response"
	"sudar-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SubjectService interface {
	CreateSubject(ctx context.Context, teacherID uuid.UUID, classroomID string, req *request.SubjectRequest) (*response.SubjectResponse, error)
	GetSubjects(ctx context.Context, teacherID uuid.UUID, classroomID string) ([]response.SubjectResponse, error)
	GetSubjectByID(ctx context.Context, teacherID uuid.UUID, classroomID, subjectID string) (*response.SubjectResponse, error)
	UpdateSubject(ctx context.Context, teacherID uuid.UUID, classroomID, subjectID string, req *request.SubjectRequest) (*response.SubjectResponse, error)
	DeleteSubject(ctx context.Context, teacherID uuid.UUID, classroomID, subjectID string) error
}

type subjectService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewSubjectService(repo *repository.Repository, log *zap.Logger) SubjectService {
	return &subjectService{
		repo: repo,
		log:  log.With(zap.String("service", "subject")),
	}
}

func (s *subjectService) CreateSubject(ctx context.Context, teacherID uuid.UUID, classroomID string, req *request.SubjectRequest) (*response.SubjectResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create subject validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Classroom harus milik teacher ini
	classroom, err := s.verifyClassroom(ctx, teacherID, classroomID)
	if err != nil {
		return nil, err
	}

	// Create subject entity
	now := time.Now()
	subject := &entity.Subject{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ClassroomID: classroom.ID,
		SubjectName: req.SubjectName,
	}

	if err := s.repo.Subject.Create(ctx, subject); err != nil {
		s.log.Error("Failed to create subject",
			zap.Error(err),
			zap.String("subject_name", req.SubjectName),
		)
		return nil, fmt.Errorf("create subject: %w", err)
	}

	s.log.Info("Subject created",
		zap.String("subject_id", subject.ID.String()),
		zap.String("classroom_id", classroom.ID.String()),
		zap.String("subject_name", subject.SubjectName),
	)

	subjectResp := response.SubjectToResponse(subject)
	return &subjectResp, nil
}

func (s *subjectService) GetSubjects(ctx context.Context, teacherID uuid.UUID, classroomID string) ([]response.SubjectResponse, error) {
	classroom, err := s.verifyClassroom(ctx, teacherID, classroomID)
	if err != nil {
		return nil, err
	}

	subjects, err := s.repo.Subject.FindAllByClassroom(ctx, classroom.ID)
	if err != nil {
		s.log.Error("Failed to get subjects",
			zap.Error(err),
			zap.String("classroom_id", classroomID),
		)
		return nil, fmt.Errorf("get subjects: %w", err)
	}

	return response.SubjectsToResponse(subjects), nil
}

func (s *subjectService) GetSubjectByID(ctx context.Context, teacherID uuid.UUID, classroomID, subjectID string) (*response.SubjectResponse, error) {
	classroom, err := s.verifyClassroom(ctx, teacherID, classroomID)
	if err != nil {
		return nil, err
	}

	// Parse subject ID
	id, err := uuid.Parse(subjectID)
	if err != nil {
		return nil, fmt.Errorf("invalid subject ID format %s: %w", subjectID, err)
	}

	subject, err := s.repo.Subject.FindByIDAndClassroom(ctx, id, classroom.ID)
	if err != nil {
		s.log.Error("Failed to get subject",
			zap.Error(err),
			zap.String("subject_id", subjectID),
		)
		return nil, fmt.Errorf("get subject %s: %w", subjectID, err)
	}

	if subject == nil {
		return nil, fmt.Errorf("subject %s not found", subjectID)
	}

	subjectResp := response.SubjectToResponse(subject)
	return &subjectResp, nil
}

func (s *subjectService) UpdateSubject(ctx context.Context, teacherID uuid.UUID, classroomID, subjectID string, req *request.SubjectRequest) (*response.SubjectResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update subject validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	classroom, err := s.verifyClassroom(ctx, teacherID, classroomID)
	if err != nil {
		return nil, err
	}

	// Parse subject ID
	id, err := uuid.Parse(subjectID)
	if err != nil {
		return nil, fmt.Errorf("invalid subject ID format %s: %w", subjectID, err)
	}

	// Get existing subject
	subject, err := s.repo.Subject.FindByIDAndClassroom(ctx, id, classroom.ID)
	if err != nil || subject == nil {
		return nil, fmt.Errorf("subject %s not found", subjectID)
	}

	subject.SubjectName = req.SubjectName
	subject.UpdatedAt = time.Now()

	if err := s.repo.Subject.Update(ctx, subject); err != nil {
		s.log.Error("Failed to update subject",
			zap.Error(err),
			zap.String("subject_id", subjectID),
		)
		return nil, fmt.Errorf("update subject %s: %w", subjectID, err)
	}

	s.log.Info("Subject updated",
		zap.String("subject_id", subjectID),
		zap.String("subject_name", subject.SubjectName),
	)

	subjectResp := response.SubjectToResponse(subject)
	return &subjectResp, nil
}

func (s *subjectService) DeleteSubject(ctx context.Context, teacherID uuid.UUID, classroomID, subjectID string) error {
	classroom, err := s.verifyClassroom(ctx, teacherID, classroomID)
	if err != nil {
		return err
	}

	// Parse subject ID
	id, err := uuid.Parse(subjectID)
	if err != nil {
		return fmt.Errorf("invalid subject ID format %s: %w", subjectID, err)
	}

	// Get subject first for logging
	subject, err := s.repo.Subject.FindByIDAndClassroom(ctx, id, classroom.ID)
	if err != nil {
		return fmt.Errorf("failed to find subject: %w", err)
	}
	if subject == nil {
		return fmt.Errorf("subject %s not found", subjectID)
	}

	// Hard delete beserta activities di bawahnya
	if err := s.repo.Subject.Delete(ctx, id, classroom.ID); err != nil {
		s.log.Error("Failed to delete subject",
			zap.Error(err),
			zap.String("subject_id", subjectID),
		)
		return fmt.Errorf("delete subject %s: %w", subjectID, err)
	}

	s.log.Info("Subject deleted",
		zap.String("subject_id", subjectID),
		zap.String("subject_name", subject.SubjectName),
	)

	return nil
}

// ==================== HELPER METHODS ====================

func (s *subjectService) verifyClassroom(ctx context.Context, teacherID uuid.UUID, classroomID string) (*entity.Classroom, error) {
	id, err := uuid.Parse(classroomID)
	if err != nil {
		return nil, fmt.Errorf("invalid classroom ID format %s: %w", classroomID, err)
	}

	classroom, err := s.repo.Classroom.FindByIDAndTeacher(ctx, id, teacherID)
	if err != nil {
		s.log.Error("Failed to verify classroom",
			zap.Error(err),
			zap.String("classroom_id", classroomID),
		)
		return nil, fmt.Errorf("failed to verify classroom")
	}
	if classroom == nil {
		return nil, fmt.Errorf("classroom %s not found", classroomID)
	}

	return classroom, nil
}
