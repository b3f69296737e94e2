package repository

import (
	"context"
	"fmt"
	"time"

	"sudar-backend/internal/data/entity"
	"sudar-backend/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TeacherRepository interface {
	Create(ctx context.Context, teacher *entity.Teacher) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Teacher, error)
	FindByEmail(ctx context.Context, email string) (*entity.Teacher, error)
	SetResetCode(ctx context.Context, id uuid.UUID, code string, expiry time.Time) error
	UpdatePassword(ctx context.Context, id uuid.UUID, hashedPassword string) error
}

type teacherRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTeacherRepository(db database.PgxIface, log *zap.Logger) TeacherRepository {
	return &teacherRepository{
		db:  db,
		log: log,
	}
}

// Create inserts a new teacher record into the database
func (tr *teacherRepository) Create(ctx context.Context, teacher *entity.Teacher) error {
	// SQL query
	query := `
		INSERT INTO teachers (id, teacher_name, email, hashed_password,
		                      reset_password_code, code_expiry_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	// Execute query
	_, err := tr.db.Exec(ctx, query,
		teacher.ID,
		teacher.TeacherName,
		teacher.Email,
		teacher.HashedPassword,
		teacher.ResetPasswordCode,
		teacher.CodeExpiryTime,
		teacher.CreatedAt,
		teacher.UpdatedAt,
	)

	if err != nil {
		tr.log.Error("Failed to create teacher",
			zap.Error(err),
			zap.String("email", teacher.Email),
		)
		return fmt.Errorf("create teacher %s: %w", teacher.Email, err)
	}

	return nil
}

func (tr *teacherRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Teacher, error) {
	query := `
		SELECT id, teacher_name, email, hashed_password,
		       reset_password_code, code_expiry_time, created_at, updated_at
		FROM teachers
		WHERE id = $1
	`

	var teacher entity.Teacher
	// QueryRow returns at most one row
	err := tr.db.QueryRow(ctx, query, id).Scan(
		&teacher.ID,
		&teacher.TeacherName,
		&teacher.Email,
		&teacher.HashedPassword,
		&teacher.ResetPasswordCode,
		&teacher.CodeExpiryTime,
		&teacher.CreatedAt,
		&teacher.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		tr.log.Error("Failed to find teacher by ID",
			zap.Error(err),
			zap.String("teacher_id", id.String()),
		)
		return nil, fmt.Errorf("find teacher by ID %s: %w", id.String(), err)
	}

	return &teacher, nil
}

func (tr *teacherRepository) FindByEmail(ctx context.Context, email string) (*entity.Teacher, error) {
	query := `
		SELECT id, teacher_name, email, hashed_password,
		       reset_password_code, code_expiry_time, created_at, updated_at
		FROM teachers
		WHERE email = $1
	`

	var teacher entity.Teacher
	// QueryRow returns at most one row
	err := tr.db.QueryRow(ctx, query, email).Scan(
		&teacher.ID,
		&teacher.TeacherName,
		&teacher.Email,
		&teacher.HashedPassword,
		&teacher.ResetPasswordCode,
		&teacher.CodeExpiryTime,
		&teacher.CreatedAt,
		&teacher.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		tr.log.Error("Failed to find teacher by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find teacher by email %s: %w", email, err)
	}

	return &teacher, nil
}

// SetResetCode stores the password reset code on the teacher row
func (tr *teacherRepository) SetResetCode(ctx context.Context, id uuid.UUID, code string, expiry time.Time) error {
	query := `
		UPDATE teachers
		SET reset_password_code = $2, code_expiry_time = $3, updated_at = NOW()
		WHERE id = $1
	`

	result, err := tr.db.Exec(ctx, query, id, code, expiry)
	if err != nil {
		tr.log.Error("Failed to set reset code",
			zap.Error(err),
			zap.String("teacher_id", id.String()),
		)
		return fmt.Errorf("set reset code for teacher %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("teacher %s not found", id.String())
	}

	return nil
}

// UpdatePassword replaces the password hash and clears any pending reset code
func (tr *teacherRepository) UpdatePassword(ctx context.Context, id uuid.UUID, hashedPassword string) error {
	query := `
		UPDATE teachers
		SET hashed_password = $2, reset_password_code = NULL,
		    code_expiry_time = NULL, updated_at = NOW()
		WHERE id = $1
	`

	result, err := tr.db.Exec(ctx, query, id, hashedPassword)
	if err != nil {
		tr.log.Error("Failed to update password",
			zap.Error(err),
			zap.String("teacher_id", id.String()),
		)
		return fmt.Errorf("update password for teacher %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("teacher %s not found", id.String())
	}

	return nil
}
