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

type SubjectRepository interface {
	Create(ctx context.Context, subject *entity.Subject) error
	FindByIDAndClassroom(ctx context.Context, id, classroomID uuid.UUID) (*entity.Subject, error)
	FindAllByClassroom(ctx context.Context, classroomID uuid.UUID) ([]*entity.Subject, error)
	Update(ctx context.Context, subject *entity.Subject) error
	Delete(ctx context.Context, id, classroomID uuid.UUID) error
}

type subjectRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSubjectRepository(db database.PgxIface, log *zap.Logger) SubjectRepository {
	return &subjectRepository{
		db:  db,
		log: log.With(zap.String("repository", "subject")),
	}
}

func (r *subjectRepository) Create(ctx context.Context, subject *entity.Subject) error {
	query := `
		INSERT INTO subjects (id, classroom_id, subject_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		subject.ID,
		subject.ClassroomID,
		subject.SubjectName,
		subject.CreatedAt,
		subject.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create subject",
			zap.Error(err),
			zap.String("classroom_id", subject.ClassroomID.String()),
			zap.String("subject_name", subject.SubjectName),
		)
		return fmt.Errorf("create subject %s: %w", subject.SubjectName, err)
	}

	return nil
}

func (r *subjectRepository) FindByIDAndClassroom(ctx context.Context, id, classroomID uuid.UUID) (*entity.Subject, error) {
	query := `
		SELECT id, classroom_id, subject_name, created_at, updated_at
		FROM subjects
		WHERE id = $1 AND classroom_id = $2
	`

	var subject entity.Subject
	err := r.db.QueryRow(ctx, query, id, classroomID).Scan(
		&subject.ID,
		&subject.ClassroomID,
		&subject.SubjectName,
		&subject.CreatedAt,
		&subject.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find subject by ID",
			zap.Error(err),
			zap.String("subject_id", id.String()),
			zap.String("classroom_id", classroomID.String()),
		)
		return nil, fmt.Errorf("find subject by ID %s: %w", id.String(), err)
	}

	return &subject, nil
}

func (r *subjectRepository) FindAllByClassroom(ctx context.Context, classroomID uuid.UUID) ([]*entity.Subject, error) {
	query := `
		SELECT id, classroom_id, subject_name, created_at, updated_at
		FROM subjects
		WHERE classroom_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, classroomID)
	if err != nil {
		r.log.Error("Failed to get subjects",
			zap.Error(err),
			zap.String("classroom_id", classroomID.String()),
		)
		return nil, fmt.Errorf("find subjects for classroom %s: %w", classroomID.String(), err)
	}
	defer rows.Close()

	var subjects []*entity.Subject
	for rows.Next() {
		var subject entity.Subject
		err := rows.Scan(
			&subject.ID,
			&subject.ClassroomID,
			&subject.SubjectName,
			&subject.CreatedAt,
			&subject.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan subject row", zap.Error(err))
			return nil, fmt.Errorf("scan subject row: %w", err)
		}
		subjects = append(subjects, &subject)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate subject rows: %w", err)
	}

	return subjects, nil
}

func (r *subjectRepository) Update(ctx context.Context, subject *entity.Subject) error {
	query := `
		UPDATE subjects
		SET subject_name = $3, updated_at = $4
		WHERE id = $1 AND classroom_id = $2
	`

	result, err := r.db.Exec(ctx, query,
		subject.ID,
		subject.ClassroomID,
		subject.SubjectName,
		subject.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update subject",
			zap.Error(err),
			zap.String("subject_id", subject.ID.String()),
		)
		return fmt.Errorf("update subject %s: %w", subject.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("subject %s not found", subject.ID.String())
	}

	return nil
}

// Delete removes the subject and its activities in one transaction
func (r *subjectRepository) Delete(ctx context.Context, id, classroomID uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin transaction", zap.Error(err))
		return fmt.Errorf("begin delete subject %s: %w", id.String(), err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM activities WHERE subject_id = $1`, id); err != nil {
		r.log.Error("Failed to delete subject activities",
			zap.Error(err),
			zap.String("subject_id", id.String()),
		)
		return fmt.Errorf("delete activities for subject %s: %w", id.String(), err)
	}

	result, err := tx.Exec(ctx, `DELETE FROM subjects WHERE id = $1 AND classroom_id = $2`, id, classroomID)
	if err != nil {
		r.log.Error("Failed to delete subject",
			zap.Error(err),
			zap.String("subject_id", id.String()),
		)
		return fmt.Errorf("delete subject %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("subject %s not found", id.String())
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit subject delete", zap.Error(err))
		return fmt.Errorf("commit delete subject %s: %w", id.String(), err)
	}

	return nil
}
