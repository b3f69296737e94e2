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

type ClassroomRepository interface {
	Create(ctx context.Context, classroom *entity.Classroom) error
	FindByIDAndTeacher(ctx context.Context, id, teacherID uuid.UUID) (*entity.Classroom, error)
	FindAllByTeacher(ctx context.Context, teacherID uuid.UUID) ([]*entity.Classroom, error)
	Update(ctx context.Context, classroom *entity.Classroom) error
	Delete(ctx context.Context, id, teacherID uuid.UUID) error
}

type classroomRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewClassroomRepository(db database.PgxIface, log *zap.Logger) ClassroomRepository {
	return &classroomRepository{
		db:  db,
		log: log,
	}
}

// Create inserts a new classroom record into the database
func (cr *classroomRepository) Create(ctx context.Context, classroom *entity.Classroom) error {
	query := `
		INSERT INTO classrooms (id, teacher_id, classroom_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := cr.db.Exec(ctx, query,
		classroom.ID,
		classroom.TeacherID,
		classroom.ClassroomName,
		classroom.CreatedAt,
		classroom.UpdatedAt,
	)

	if err != nil {
		cr.log.Error("Failed to create classroom",
			zap.Error(err),
			zap.String("teacher_id", classroom.TeacherID.String()),
			zap.String("classroom_name", classroom.ClassroomName),
		)
		return fmt.Errorf("create classroom %s: %w", classroom.ClassroomName, err)
	}

	return nil
}

// FindByIDAndTeacher scopes lookup ke pemilik, classroom teacher lain dianggap tidak ada
func (cr *classroomRepository) FindByIDAndTeacher(ctx context.Context, id, teacherID uuid.UUID) (*entity.Classroom, error) {
	query := `
		SELECT id, teacher_id, classroom_name, created_at, updated_at
		FROM classrooms
		WHERE id = $1 AND teacher_id = $2
	`

	var classroom entity.Classroom
	// QueryRow returns at most one row
	err := cr.db.QueryRow(ctx, query, id, teacherID).Scan(
		&classroom.ID,
		&classroom.TeacherID,
		&classroom.ClassroomName,
		&classroom.CreatedAt,
		&classroom.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		cr.log.Error("Failed to find classroom by ID",
			zap.Error(err),
			zap.String("classroom_id", id.String()),
			zap.String("teacher_id", teacherID.String()),
		)
		return nil, fmt.Errorf("find classroom by ID %s: %w", id.String(), err)
	}

	return &classroom, nil
}

func (cr *classroomRepository) FindAllByTeacher(ctx context.Context, teacherID uuid.UUID) ([]*entity.Classroom, error) {
	query := `
		SELECT id, teacher_id, classroom_name, created_at, updated_at
		FROM classrooms
		WHERE teacher_id = $1
		ORDER BY created_at DESC
	`

	rows, err := cr.db.Query(ctx, query, teacherID)
	if err != nil {
		cr.log.Error("Failed to get classrooms",
			zap.Error(err),
			zap.String("teacher_id", teacherID.String()),
		)
		return nil, fmt.Errorf("find classrooms for teacher %s: %w", teacherID.String(), err)
	}
	defer rows.Close()

	var classrooms []*entity.Classroom
	for rows.Next() {
		var classroom entity.Classroom
		err := rows.Scan(
			&classroom.ID,
			&classroom.TeacherID,
			&classroom.ClassroomName,
			&classroom.CreatedAt,
			&classroom.UpdatedAt,
		)
		if err != nil {
			cr.log.Error("Failed to scan classroom row", zap.Error(err))
			return nil, fmt.Errorf("scan classroom row: %w", err)
		}
		classrooms = append(classrooms, &classroom)
	}

	if err := rows.Err(); err != nil {
		cr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate classroom rows: %w", err)
	}

	return classrooms, nil
}

func (cr *classroomRepository) Update(ctx context.Context, classroom *entity.Classroom) error {
	query := `
		UPDATE classrooms
		SET classroom_name = $3, updated_at = $4
		WHERE id = $1 AND teacher_id = $2
	`

	result, err := cr.db.Exec(ctx, query,
		classroom.ID,
		classroom.TeacherID,
		classroom.ClassroomName,
		classroom.UpdatedAt,
	)

	if err != nil {
		cr.log.Error("Failed to update classroom",
			zap.Error(err),
			zap.String("classroom_id", classroom.ID.String()),
		)
		return fmt.Errorf("update classroom %s: %w", classroom.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("classroom %s not found", classroom.ID.String())
	}

	return nil
}

// Delete removes the classroom and everything under it in one transaction:
// activities, subjects, students, then the classroom row itself.
func (cr *classroomRepository) Delete(ctx context.Context, id, teacherID uuid.UUID) error {
	tx, err := cr.db.Begin(ctx)
	if err != nil {
		cr.log.Error("Failed to begin transaction", zap.Error(err))
		return fmt.Errorf("begin delete classroom %s: %w", id.String(), err)
	}
	defer tx.Rollback(ctx)

	steps := []string{
		`DELETE FROM activities WHERE subject_id IN (SELECT id FROM subjects WHERE classroom_id = $1)`,
		`DELETE FROM subjects WHERE classroom_id = $1`,
		`DELETE FROM students WHERE classroom_id = $1`,
	}

	for _, step := range steps {
		if _, err := tx.Exec(ctx, step, id); err != nil {
			cr.log.Error("Failed to cascade delete classroom",
				zap.Error(err),
				zap.String("classroom_id", id.String()),
			)
			return fmt.Errorf("cascade delete classroom %s: %w", id.String(), err)
		}
	}

	result, err := tx.Exec(ctx, `DELETE FROM classrooms WHERE id = $1 AND teacher_id = $2`, id, teacherID)
	if err != nil {
		cr.log.Error("Failed to delete classroom",
			zap.Error(err),
			zap.String("classroom_id", id.String()),
		)
		return fmt.Errorf("delete classroom %s: %w", id.String(), err)
	}

	// Rollback via defer kalau classroom bukan milik teacher ini
	if result.RowsAffected() == 0 {
		return fmt.Errorf("classroom %s not found", id.String())
	}

	if err := tx.Commit(ctx); err != nil {
		cr.log.Error("Failed to commit classroom delete", zap.Error(err))
		return fmt.Errorf("commit delete classroom %s: %w", id.String(), err)
	}

	cr.log.Info("Classroom deleted", zap.String("classroom_id", id.String()))
	return nil
}
