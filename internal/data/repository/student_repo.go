package repository

import (
	"context"
	"fmt"

	"sudar-backend/internal/data/entity"
	"sudar-backend/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type StudentRepository interface {
	Create(ctx context.Context, student *entity.Student) error
	FindByRollno(ctx context.Context, rollno string) (*entity.Student, error)
	FindByRollnoAndClassroom(ctx context.Context, rollno string, classroomID uuid.UUID) (*entity.Student, error)
	FindAllByClassroom(ctx context.Context, classroomID uuid.UUID) ([]*entity.Student, error)
	Update(ctx context.Context, student *entity.Student) error
	Delete(ctx context.Context, rollno string, classroomID uuid.UUID) error
}

type studentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewStudentRepository(db database.PgxIface, log *zap.Logger) StudentRepository {
	return &studentRepository{
		db:  db,
		log: log,
	}
}

func (sr *studentRepository) Create(ctx context.Context, student *entity.Student) error {
	query := `
		INSERT INTO students (rollno, classroom_id, student_name, dob, grade, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := sr.db.Exec(ctx, query,
		student.Rollno,
		student.ClassroomID,
		student.StudentName,
		student.DOB,
		student.Grade,
		student.CreatedAt,
		student.UpdatedAt,
	)

	if err != nil {
		sr.log.Error("Failed to create student",
			zap.Error(err),
			zap.String("rollno", student.Rollno),
			zap.String("classroom_id", student.ClassroomID.String()),
		)
		return fmt.Errorf("create student %s: %w", student.Rollno, err)
	}

	return nil
}

// FindByRollno checks the roll number across ALL classrooms, rollno unik global
func (sr *studentRepository) FindByRollno(ctx context.Context, rollno string) (*entity.Student, error) {
	query := `
		SELECT rollno, classroom_id, student_name, dob, grade, created_at, updated_at
		FROM students
		WHERE rollno = $1
	`

	var student entity.Student
	err := sr.db.QueryRow(ctx, query, rollno).Scan(
		&student.Rollno,
		&student.ClassroomID,
		&student.StudentName,
		&student.DOB,
		&student.Grade,
		&student.CreatedAt,
		&student.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		sr.log.Error("Failed to find student by rollno",
			zap.Error(err),
			zap.String("rollno", rollno),
		)
		return nil, fmt.Errorf("find student by rollno %s: %w", rollno, err)
	}

	return &student, nil
}

func (sr *studentRepository) FindByRollnoAndClassroom(ctx context.Context, rollno string, classroomID uuid.UUID) (*entity.Student, error) {
	query := `
		SELECT rollno, classroom_id, student_name, dob, grade, created_at, updated_at
		FROM students
		WHERE rollno = $1 AND classroom_id = $2
	`

	var student entity.Student
	// QueryRow returns at most one row
	err := sr.db.QueryRow(ctx, query, rollno, classroomID).Scan(
		&student.Rollno,
		&student.ClassroomID,
		&student.StudentName,
		&student.DOB,
		&student.Grade,
		&student.CreatedAt,
		&student.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		sr.log.Error("Failed to find student",
			zap.Error(err),
			zap.String("rollno", rollno),
			zap.String("classroom_id", classroomID.String()),
		)
		return nil, fmt.Errorf("find student %s in classroom %s: %w", rollno, classroomID.String(), err)
	}

	return &student, nil
}

func (sr *studentRepository) FindAllByClassroom(ctx context.Context, classroomID uuid.UUID) ([]*entity.Student, error) {
	query := `
		SELECT rollno, classroom_id, student_name, dob, grade, created_at, updated_at
		FROM students
		WHERE classroom_id = $1
		ORDER BY rollno
	`

	rows, err := sr.db.Query(ctx, query, classroomID)
	if err != nil {
		sr.log.Error("Failed to get students",
			zap.Error(err),
			zap.String("classroom_id", classroomID.String()),
		)
		return nil, fmt.Errorf("find students for classroom %s: %w", classroomID.String(), err)
	}
	defer rows.Close()

	var students []*entity.Student
	for rows.Next() {
		var student entity.Student
		err := rows.Scan(
			&student.Rollno,
			&student.ClassroomID,
			&student.StudentName,
			&student.DOB,
			&student.Grade,
			&student.CreatedAt,
			&student.UpdatedAt,
		)
		if err != nil {
			sr.log.Error("Failed to scan student row", zap.Error(err))
			return nil, fmt.Errorf("scan student row: %w", err)
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		sr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate student rows: %w", err)
	}

	return students, nil
}

func (sr *studentRepository) Update(ctx context.Context, student *entity.Student) error {
	query := `
		UPDATE students
		SET student_name = $3, dob = $4, grade = $5, updated_at = $6
		WHERE rollno = $1 AND classroom_id = $2
	`

	result, err := sr.db.Exec(ctx, query,
		student.Rollno,
		student.ClassroomID,
		student.StudentName,
		student.DOB,
		student.Grade,
		student.UpdatedAt,
	)

	if err != nil {
		sr.log.Error("Failed to update student",
			zap.Error(err),
			zap.String("rollno", student.Rollno),
		)
		return fmt.Errorf("update student %s: %w", student.Rollno, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("student %s not found", student.Rollno)
	}

	return nil
}

func (sr *studentRepository) Delete(ctx context.Context, rollno string, classroomID uuid.UUID) error {
	query := `DELETE FROM students WHERE rollno = $1 AND classroom_id = $2`

	result, err := sr.db.Exec(ctx, query, rollno, classroomID)
	if err != nil {
		sr.log.Error("Failed to delete student",
			zap.Error(err),
			zap.String("rollno", rollno),
		)
		return fmt.Errorf("delete student %s: %w", rollno, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("student %s not found", rollno)
	}

	sr.log.Info("Student deleted", zap.String("rollno", rollno))
	return nil
}
