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

type ClassroomService interface {
	CreateClassroom(ctx context.Context, teacherID uuid.UUID, req *request.ClassroomRequest) (*response.ClassroomResponse, error)
	GetClassrooms(ctx context.Context, teacherID uuid.UUID) ([]response.ClassroomResponse, error)
	GetClassroomByID(ctx context.Context, teacherID uuid.UUID, classroomID string) (*response.ClassroomResponse, error)
	UpdateClassroom(ctx context.Context, teacherID uuid.UUID, classroomID string, req *request.ClassroomRequest) (*response.ClassroomResponse, error)
	DeleteClassroom(ctx context.Context, teacherID uuid.UUID, classroomID string) error
}

type classroomService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewClassroomService(repo *repository.Repository, log *zap.Logger) ClassroomService {
	return &classroomService{
		repo: repo,
		log:  log.With(zap.String("service", "classroom")),
	}
}

func (s *classroomService) CreateClassroom(ctx context.Context, teacherID uuid.UUID, req *request.ClassroomRequest) (*response.ClassroomResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create classroom validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Create classroom entity
	now := time.Now()
	classroom := &entity.Classroom{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		TeacherID:     teacherID,
		ClassroomName: req.ClassroomName,
	}

	if err := s.repo.Classroom.Create(ctx, classroom); err != nil {
		s.log.Error("Failed to create classroom",
			zap.Error(err),
			zap.String("classroom_name", req.ClassroomName),
		)
		return nil, fmt.Errorf("create classroom: %w", err)
	}

	s.log.Info("Classroom created",
		zap.String("classroom_id", classroom.ID.String()),
		zap.String("teacher_id", teacherID.String()),
		zap.String("classroom_name", classroom.ClassroomName),
	)

	classroomResp := response.ClassroomToResponse(classroom)
	return &classroomResp, nil
}

func (s *classroomService) GetClassrooms(ctx context.Context, teacherID uuid.UUID) ([]response.ClassroomResponse, error) {
	classrooms, err := s.repo.Classroom.FindAllByTeacher(ctx, teacherID)
	if err != nil {
		s.log.Error("Failed to get classrooms",
			zap.Error(err),
			zap.String("teacher_id", teacherID.String()),
		)
		return nil, fmt.Errorf("get classrooms: %w", err)
	}

	return response.ClassroomsToResponse(classrooms), nil
}

func (s *classroomService) GetClassroomByID(ctx context.Context, teacherID uuid.UUID, classroomID string) (*response.ClassroomResponse, error) {
	// Parse classroom ID
	id, err := uuid.Parse(classroomID)
	if err != nil {
		s.log.Warn("Invalid classroom ID format",
			zap.String("classroom_id", classroomID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("invalid classroom ID format %s: %w", classroomID, err)
	}

	// Lookup scoped ke teacher, classroom orang lain = not found
	classroom, err := s.repo.Classroom.FindByIDAndTeacher(ctx, id, teacherID)
	if err != nil {
		s.log.Error("Failed to get classroom",
			zap.Error(err),
			zap.String("classroom_id", classroomID),
		)
		return nil, fmt.Errorf("get classroom %s: %w", classroomID, err)
	}

	if classroom == nil {
		return nil, fmt.Errorf("classroom %s not found", classroomID)
	}

	classroomResp := response.ClassroomToResponse(classroom)
	return &classroomResp, nil
}

func (s *classroomService) UpdateClassroom(ctx context.Context, teacherID uuid.UUID, classroomID string, req *request.ClassroomRequest) (*response.ClassroomResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update classroom validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Parse classroom ID
	id, err := uuid.Parse(classroomID)
	if err != nil {
		return nil, fmt.Errorf("invalid classroom ID format %s: %w", classroomID, err)
	}

	// Get existing classroom
	classroom, err := s.repo.Classroom.FindByIDAndTeacher(ctx, id, teacherID)
	if err != nil || classroom == nil {
		return nil, fmt.Errorf("classroom %s not found", classroomID)
	}

	classroom.ClassroomName = req.ClassroomName
	classroom.UpdatedAt = time.Now()

	if err := s.repo.Classroom.Update(ctx, classroom); err != nil {
		s.log.Error("Failed to update classroom",
			zap.Error(err),
			zap.String("classroom_id", classroomID),
		)
		return nil, fmt.Errorf("update classroom %s: %w", classroomID, err)
	}

	s.log.Info("Classroom updated",
		zap.String("classroom_id", classroomID),
		zap.String("classroom_name", classroom.ClassroomName),
	)

	classroomResp := response.ClassroomToResponse(classroom)
	return &classroomResp, nil
}

func (s *classroomService) DeleteClassroom(ctx context.Context, teacherID uuid.UUID, classroomID string) error {
	// Parse classroom ID
	id, err := uuid.Parse(classroomID)
	if err != nil {
		return fmt.Errorf("invalid classroom ID format %s: %w", classroomID, err)
	}

	// Get classroom first for logging
	classroom, err := s.repo.Classroom.FindByIDAndTeacher(ctx, id, teacherID)
	if err != nil {
		return fmt.Errorf("failed to find classroom: %w", err)
	}
	if classroom == nil {
		return fmt.Errorf("classroom %s not found", classroomID)
	}

	// Hard delete beserta students, subjects, dan activities di bawahnya
	if err := s.repo.Classroom.Delete(ctx, id, teacherID); err != nil {
		s.log.Error("Failed to delete classroom",
			zap.Error(err),
			zap.String("classroom_id", classroomID),
		)
		return fmt.Errorf("delete classroom %s: %w", classroomID, err)
	}

	s.log.Info("Classroom deleted",
		zap.String("classroom_id", classroomID),
		zap.String("classroom_name", classroom.ClassroomName),
	)

	return nil
}
