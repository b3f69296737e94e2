package repository

import (
	"context"
	"fmt"

	"sudar-backend/internal/data/entity"
	"sudar-backend/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type VerificationCodeRepository interface {
	Upsert(ctx context.Context, code *entity.EmailVerificationCode) error
	FindByEmail(ctx context.Context, email string) (*entity.EmailVerificationCode, error)
	DeleteByEmail(ctx context.Context, email string) error
}

type verificationCodeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewVerificationCodeRepository(db database.PgxIface, log *zap.Logger) VerificationCodeRepository {
	return &verificationCodeRepository{
		db:  db,
		log: log.With(zap.String("repository", "verification_code")),
	}
}

// Upsert menimpa kode lama kalau email sudah pernah minta kode
func (r *verificationCodeRepository) Upsert(ctx context.Context, code *entity.EmailVerificationCode) error {
	query := `
		INSERT INTO email_verification_codes (email, code, expiry_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO UPDATE
		SET code = EXCLUDED.code,
		    expiry_time = EXCLUDED.expiry_time,
		    updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.Exec(ctx, query,
		code.Email,
		code.Code,
		code.ExpiryTime,
		code.CreatedAt,
		code.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to upsert verification code",
			zap.Error(err),
			zap.String("email", code.Email),
		)
		return fmt.Errorf("upsert verification code for %s: %w", code.Email, err)
	}

	return nil
}

func (r *verificationCodeRepository) FindByEmail(ctx context.Context, email string) (*entity.EmailVerificationCode, error) {
	query := `
		SELECT email, code, expiry_time, created_at, updated_at
		FROM email_verification_codes
		WHERE email = $1
	`

	var code entity.EmailVerificationCode
	err := r.db.QueryRow(ctx, query, email).Scan(
		&code.Email,
		&code.Code,
		&code.ExpiryTime,
		&code.CreatedAt,
		&code.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find verification code",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find verification code for %s: %w", email, err)
	}

	return &code, nil
}

func (r *verificationCodeRepository) DeleteByEmail(ctx context.Context, email string) error {
	query := `DELETE FROM email_verification_codes WHERE email = $1`

	result, err := r.db.Exec(ctx, query, email)
	if err != nil {
		r.log.Error("Failed to delete verification code",
			zap.Error(err),
			zap.String("email", email),
		)
		return fmt.Errorf("delete verification code for %s: %w", email, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("verification code for %s not found", email)
	}

	return nil
}
