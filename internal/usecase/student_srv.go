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

type StudentService interface {
	CreateStudent(ctx context.Context, teacherID uuid.UUID, classroomID string, req *request.StudentRequest) (*response.StudentResponse, error)
	GetStudents(ctx context.Context, teacherID uuid.UUID, classroomID string) ([]response.StudentResponse, error)
	GetStudentByRollno(ctx context.Context, teacherID uuid.UUID, classroomID, rollno string) (*response.StudentResponse, error)
	UpdateStudent(ctx context.Context, teacherID uuid.UUID, classroomID, rollno string, req *request.StudentUpdateRequest) (*response.StudentResponse, error)
	DeleteStudent(ctx context.Context, teacherID uuid.UUID, classroomID, rollno string) error
}

type studentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewStudentService(repo *repository.Repository, log *zap.Logger) StudentService {
	return &studentService{
		repo: repo,
		log:  log.With(zap.String("service", "student")),
	}
}

func (s *studentService) CreateStudent(ctx context.Context, teacherID uuid.UUID, classroomID string, req *request.StudentRequest) (*response.StudentResponse, error) {
	// 1. Validasi input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create student validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Classroom harus milik teacher ini
	classroom, err := s.verifyClassroom(ctx, teacherID, classroomID)
	if err != nil {
		return nil, err
	}

	// 3. Rollno unik di semua classroom, bukan cuma classroom ini
	existingStudent, err := s.repo.Student.FindByRollno(ctx, req.Rollno)
	if err != nil {
		s.log.Error("Failed to check rollno", zap.Error(err), zap.String("rollno", req.Rollno))
		return nil, fmt.Errorf("failed to check rollno")
	}
	if existingStudent != nil {
		return nil, fmt.Errorf("Student with rollno %s already exists", req.Rollno)
	}

	// 4. Parse date of birth
	dob, err := time.Parse("2006-01-02", req.DOB)
	if err != nil {
		return nil, fmt.Errorf("invalid date format %s: %w", req.DOB, err)
	}

	// 5. Create student entity
	now := time.Now()
	student := &entity.Student{
		Rollno:      req.Rollno,
		ClassroomID: classroom.ID,
		StudentName: req.StudentName,
		DOB:         dob,
		Grade:       req.Grade,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Student.Create(ctx, student); err != nil {
		s.log.Error("Failed to create student",
			zap.Error(err),
			zap.String("rollno", req.Rollno),
		)
		return nil, fmt.Errorf("create student: %w", err)
	}

	s.log.Info("Student created",
		zap.String("rollno", student.Rollno),
		zap.String("classroom_id", classroom.ID.String()),
	)

	studentResp := response.StudentToResponse(student)
	return &studentResp, nil
}

func (s *studentService) GetStudents(ctx context.Context, teacherID uuid.UUID, classroomID string) ([]response.StudentResponse, error) {
	classroom, err := s.verifyClassroom(ctx, teacherID, classroomID)
	if err != nil {
		return nil, err
	}

	students, err := s.repo.Student.FindAllByClassroom(ctx, classroom.ID)
	if err != nil {
		s.log.Error("Failed to get students",
			zap.Error(err),
			zap.String("classroom_id", classroomID),
		)
		return nil, fmt.Errorf("get students: %w", err)
	}

	return response.StudentsToResponse(students), nil
}

func (s *studentService) GetStudentByRollno(ctx context.Context, teacherID uuid.UUID, classroomID, rollno string) (*response.StudentResponse, error) {
	classroom, err := s.verifyClassroom(ctx, teacherID, classroomID)
	if err != nil {
		return nil, err
	}

	student, err := s.repo.Student.FindByRollnoAndClassroom(ctx, rollno, classroom.ID)
	if err != nil {
		s.log.Error("Failed to get student",
			zap.Error(err),
			zap.String("rollno", rollno),
		)
		return nil, fmt.Errorf("get student %s: %w", rollno, err)
	}

	if student == nil {
		return nil, fmt.Errorf("student %s not found", rollno)
	}

	studentResp := response.StudentToResponse(student)
	return &studentResp, nil
}

func (s *studentService) UpdateStudent(ctx context.Context, teacherID uuid.UUID, classroomID, rollno string, req *request.StudentUpdateRequest) (*response.StudentResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update student validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	classroom, err := s.verifyClassroom(ctx, teacherID, classroomID)
	if err != nil {
		return nil, err
	}

	// Get existing student
	student, err := s.repo.Student.FindByRollnoAndClassroom(ctx, rollno, classroom.ID)
	if err != nil {
		return nil, fmt.Errorf("get student %s: %w", rollno, err)
	}
	if student == nil {
		return nil, fmt.Errorf("student %s not found", rollno)
	}

	// Update fields if provided
	updated := false

	if req.StudentName != nil && *req.StudentName != student.StudentName {
		student.StudentName = *req.StudentName
		updated = true
	}

	if req.DOB != nil {
		dob, err := time.Parse("2006-01-02", *req.DOB)
		if err != nil {
			return nil, fmt.Errorf("invalid date format %s: %w", *req.DOB, err)
		}
		if !dob.Equal(student.DOB) {
			student.DOB = dob
			updated = true
		}
	}

	if req.Grade != nil && *req.Grade != student.Grade {
		student.Grade = *req.Grade
		updated = true
	}

	if updated {
		student.UpdatedAt = time.Now()
		if err := s.repo.Student.Update(ctx, student); err != nil {
			s.log.Error("Failed to update student",
				zap.Error(err),
				zap.String("rollno", rollno),
			)
			return nil, fmt.Errorf("update student %s: %w", rollno, err)
		}
	}

	s.log.Info("Student updated",
		zap.String("rollno", rollno),
		zap.Bool("was_updated", updated),
	)

	studentResp := response.StudentToResponse(student)
	return &studentResp, nil
}

func (s *studentService) DeleteStudent(ctx context.Context, teacherID uuid.UUID, classroomID, rollno string) error {
	classroom, err := s.verifyClassroom(ctx, teacherID, classroomID)
	if err != nil {
		return err
	}

	// Get student first for logging
	student, err := s.repo.Student.FindByRollnoAndClassroom(ctx, rollno, classroom.ID)
	if err != nil {
		return fmt.Errorf("failed to find student: %w", err)
	}
	if student == nil {
		return fmt.Errorf("student %s not found", rollno)
	}

	if err := s.repo.Student.Delete(ctx, rollno, classroom.ID); err != nil {
		s.log.Error("Failed to delete student",
			zap.Error(err),
			zap.String("rollno", rollno),
		)
		return fmt.Errorf("delete student %s: %w", rollno, err)
	}

	s.log.Info("Student deleted",
		zap.String("rollno", rollno),
		zap.String("classroom_id", classroom.ID.String()),
	)

	return nil
}

// ==================== HELPER METHODS ====================

// verifyClassroom memastikan classroom ada dan milik teacher yang login
func (s *studentService) verifyClassroom(ctx context.Context, teacherID uuid.UUID, classroomID string) (*entity.Classroom, error) {
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
