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

type ActivityRepository interface {
	Create(ctx context.Context, activity *entity.Activity) error
	FindByIDAndSubject(ctx context.Context, id, subjectID uuid.UUID) (*entity.Activity, error)
	FindAllBySubject(ctx context.Context, subjectID uuid.UUID) ([]*entity.Activity, error)
	Update(ctx context.Context, activity *entity.Activity) error
	Delete(ctx context.Context, id, subjectID uuid.UUID) error
}

type activityRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewActivityRepository(db database.PgxIface, log *zap.Logger) ActivityRepository {
	return &activityRepository{
		db:  db,
		log: log,
	}
}

func (ar *activityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	query := `
		INSERT INTO activities (id, subject_id, title, type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := ar.db.Exec(ctx, query,
		activity.ID,
		activity.SubjectID,
		activity.Title,
		activity.Type,
		activity.CreatedAt,
		activity.UpdatedAt,
	)

	if err != nil {
		ar.log.Error("Failed to create activity",
			zap.Error(err),
			zap.String("subject_id", activity.SubjectID.String()),
			zap.String("title", activity.Title),
		)
		return fmt.Errorf("create activity %s: %w", activity.Title, err)
	}

	return nil
}

func (ar *activityRepository) FindByIDAndSubject(ctx context.Context, id, subjectID uuid.UUID) (*entity.Activity, error) {
	query := `
		SELECT id, subject_id, title, type, created_at, updated_at
		FROM activities
		WHERE id = $1 AND subject_id = $2
	`

	var activity entity.Activity
	// QueryRow returns at most one row
	err := ar.db.QueryRow(ctx, query, id, subjectID).Scan(
		&activity.ID,
		&activity.SubjectID,
		&activity.Title,
		&activity.Type,
		&activity.CreatedAt,
		&activity.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ar.log.Error("Failed to find activity by ID",
			zap.Error(err),
			zap.String("activity_id", id.String()),
			zap.String("subject_id", subjectID.String()),
		)
		return nil, fmt.Errorf("find activity by ID %s: %w", id.String(), err)
	}

	return &activity, nil
}

func (ar *activityRepository) FindAllBySubject(ctx context.Context, subjectID uuid.UUID) ([]*entity.Activity, error) {
	query := `
		SELECT id, subject_id, title, type, created_at, updated_at
		FROM activities
		WHERE subject_id = $1
		ORDER BY created_at DESC
	`

	rows, err := ar.db.Query(ctx, query, subjectID)
	if err != nil {
		ar.log.Error("Failed to get activities",
			zap.Error(err),
			zap.String("subject_id", subjectID.String()),
		)
		return nil, fmt.Errorf("find activities for subject %s: %w", subjectID.String(), err)
	}
	defer rows.Close()

	var activities []*entity.Activity
	for rows.Next() {
		var activity entity.Activity
		err := rows.Scan(
			&activity.ID,
			&activity.SubjectID,
			&activity.Title,
			&activity.Type,
			&activity.CreatedAt,
			&activity.UpdatedAt,
		)
		if err != nil {
			ar.log.Error("Failed to scan activity row", zap.Error(err))
			return nil, fmt.Errorf("scan activity row: %w", err)
		}
		activities = append(activities, &activity)
	}

	if err := rows.Err(); err != nil {
		ar.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate activity rows: %w", err)
	}

	return activities, nil
}

func (ar *activityRepository) Update(ctx context.Context, activity *entity.Activity) error {
	query := `
		UPDATE activities
		SET title = $3, type = $4, updated_at = $5
		WHERE id = $1 AND subject_id = $2
	`

	result, err := ar.db.Exec(ctx, query,
		activity.ID,
		activity.SubjectID,
		activity.Title,
		activity.Type,
		activity.UpdatedAt,
	)

	if err != nil {
		ar.log.Error("Failed to update activity",
			zap.Error(err),
			zap.String("activity_id", activity.ID.String()),
		)
		return fmt.Errorf("update activity %s: %w", activity.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("activity %s not found", activity.ID.String())
	}

	return nil
}

func (ar *activityRepository) Delete(ctx context.Context, id, subjectID uuid.UUID) error {
	query := `DELETE FROM activities WHERE id = $1 AND subject_id = $2`

	result, err := ar.db.Exec(ctx, query, id, subjectID)
	if err != nil {
		ar.log.Error("Failed to delete activity",
			zap.Error(err),
			zap.String("activity_id", id.String()),
		)
		return fmt.Errorf("delete activity %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("activity %s not found", id.String())
	}

	return nil
}
