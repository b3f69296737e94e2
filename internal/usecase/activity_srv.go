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

type ActivityService interface {
	CreateActivity(ctx context.Context, teacherID uuid.UUID, classroomID, subjectID string, req *request.ActivityRequest) (*response.ActivityResponse, error)
	GetActivities(ctx context.Context, teacherID uuid.UUID, classroomID, subjectID string) ([]response.ActivityResponse, error)
	GetActivityByID(ctx context.Context, teacherID uuid.UUID, classroomID, subjectID, activityID string) (*response.ActivityResponse, error)
	UpdateActivity(ctx context.Context, teacherID uuid.UUID, classroomID, subjectID, activityID string, req *request.ActivityUpdateRequest) (*response.ActivityResponse, error)
	DeleteActivity(ctx context.Context, teacherID uuid.UUID, classroomID, subjectID, activityID string) error
}

type activityService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewActivityService(repo *repository.Repository, log *zap.Logger) ActivityService {
	return &activityService{
		repo: repo,
		log:  log.With(zap.String("service", "activity")),
	}
}

func (s *activityService) CreateActivity(ctx context.Context, teacherID uuid.UUID, classroomID, subjectID string, req *request.ActivityRequest) (*response.ActivityResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create activity validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Subject harus di classroom milik teacher ini
	subject, err := s.verifySubject(ctx, teacherID, classroomID, subjectID)
	if err != nil {
		return nil, err
	}

	// Create activity entity
	now := time.Now()
	activity := &entity.Activity{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		SubjectID: subject.ID,
		Title:     req.Title,
		Type:      entity.ActivityType(req.Type),
	}

	if err := s.repo.Activity.Create(ctx, activity); err != nil {
		s.log.Error("Failed to create activity",
			zap.Error(err),
			zap.String("title", req.Title),
		)
		return nil, fmt.Errorf("create activity: %w", err)
	}

	s.log.Info("Activity created",
		zap.String("activity_id", activity.ID.String()),
		zap.String("subject_id", subject.ID.String()),
		zap.String("title", activity.Title),
	)

	activityResp := response.ActivityToResponse(activity)
	return &activityResp, nil
}

func (s *activityService) GetActivities(ctx context.Context, teacherID uuid.UUID, classroomID, subjectID string) ([]response.ActivityResponse, error) {
	subject, err := s.verifySubject(ctx, teacherID, classroomID, subjectID)
	if err != nil {
		return nil, err
	}

	activities, err := s.repo.Activity.FindAllBySubject(ctx, subject.ID)
	if err != nil {
		s.log.Error("Failed to get activities",
			zap.Error(err),
			zap.String("subject_id", subjectID),
		)
		return nil, fmt.Errorf("get activities: %w", err)
	}

	return response.ActivitiesToResponse(activities), nil
}

func (s *activityService) GetActivityByID(ctx context.Context, teacherID uuid.UUID, classroomID, subjectID, activityID string) (*response.ActivityResponse, error) {
	subject, err := s.verifySubject(ctx, teacherID, classroomID, subjectID)
	if err != nil {
		return nil, err
	}

	// Parse activity ID
	id, err := uuid.Parse(activityID)
	if err != nil {
		return nil, fmt.Errorf("invalid activity ID format %s: %w", activityID, err)
	}

	activity, err := s.repo.Activity.FindByIDAndSubject(ctx, id, subject.ID)
	if err != nil {
		s.log.Error("Failed to get activity",
			zap.Error(err),
			zap.String("activity_id", activityID),
		)
		return nil, fmt.Errorf("get activity %s: %w", activityID, err)
	}

	if activity == nil {
		return nil, fmt.Errorf("activity %s not found", activityID)
	}

	activityResp := response.ActivityToResponse(activity)
	return &activityResp, nil
}

func (s *activityService) UpdateActivity(ctx context.Context, teacherID uuid.UUID, classroomID, subjectID, activityID string, req *request.ActivityUpdateRequest) (*response.ActivityResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update activity validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	subject, err := s.verifySubject(ctx, teacherID, classroomID, subjectID)
	if err != nil {
		return nil, err
	}

	// Parse activity ID
	id, err := uuid.Parse(activityID)
	if err != nil {
		return nil, fmt.Errorf("invalid activity ID format %s: %w", activityID, err)
	}

	// Get existing activity
	activity, err := s.repo.Activity.FindByIDAndSubject(ctx, id, subject.ID)
	if err != nil || activity == nil {
		return nil, fmt.Errorf("activity %s not found", activityID)
	}

	// Update fields if provided
	updated := false

	if req.Title != nil && *req.Title != activity.Title {
		activity.Title = *req.Title
		updated = true
	}

	if req.Type != nil && entity.ActivityType(*req.Type) != activity.Type {
		activity.Type = entity.ActivityType(*req.Type)
		updated = true
	}

	if updated {
		activity.UpdatedAt = time.Now()
		if err := s.repo.Activity.Update(ctx, activity); err != nil {
			s.log.Error("Failed to update activity",
				zap.Error(err),
				zap.String("activity_id", activityID),
			)
			return nil, fmt.Errorf("update activity %s: %w", activityID, err)
		}
	}

	s.log.Info("Activity updated",
		zap.String("activity_id", activityID),
		zap.Bool("was_updated", updated),
	)

	activityResp := response.ActivityToResponse(activity)
	return &activityResp, nil
}

func (s *activityService) DeleteActivity(ctx context.Context, teacherID uuid.UUID, classroomID, subjectID, activityID string) error {
	subject, err := s.verifySubject(ctx, teacherID, classroomID, subjectID)
	if err != nil {
		return err
	}

	// Parse activity ID
	id, err := uuid.Parse(activityID)
	if err != nil {
		return fmt.Errorf("invalid activity ID format %s: %w", activityID, err)
	}

	// Get activity first for logging
	activity, err := s.repo.Activity.FindByIDAndSubject(ctx, id, subject.ID)
	if err != nil {
		return fmt.Errorf("failed to find activity: %w", err)
	}
	if activity == nil {
		return fmt.Errorf("activity %s not found", activityID)
	}

	if err := s.repo.Activity.Delete(ctx, id, subject.ID); err != nil {
		s.log.Error("Failed to delete activity",
			zap.Error(err),
			zap.String("activity_id", activityID),
		)
		return fmt.Errorf("delete activity %s: %w", activityID, err)
	}

	s.log.Info("Activity deleted",
		zap.String("activity_id", activityID),
		zap.String("title", activity.Title),
	)

	return nil
}

// ==================== HELPER METHODS ====================

// verifySubject memastikan rantai kepemilikan teacher → classroom → subject
func (s *activityService) verifySubject(ctx context.Context, teacherID uuid.UUID, classroomID, subjectID string) (*entity.Subject, error) {
	classroomUUID, err := uuid.Parse(classroomID)
	if err != nil {
		return nil, fmt.Errorf("invalid classroom ID format %s: %w", classroomID, err)
	}

	classroom, err := s.repo.Classroom.FindByIDAndTeacher(ctx, classroomUUID, teacherID)
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

	subjectUUID, err := uuid.Parse(subjectID)
	if err != nil {
		return nil, fmt.Errorf("invalid subject ID format %s: %w", subjectID, err)
	}

	subject, err := s.repo.Subject.FindByIDAndClassroom(ctx, subjectUUID, classroom.ID)
	if err != nil {
		s.log.Error("Failed to verify subject",
			zap.Error(err),
			zap.String("subject_id", subjectID),
		)
		return nil, fmt.Errorf("failed to verify subject")
	}
	if subject == nil {
		return nil, fmt.Errorf("subject %s not found", subjectID)
	}

	return subject, nil
}
