package usecase

import (
	"context"
	"fmt"
	"time"

	"sudar-backend/internal/data/entity"
	"sudar-backend/internal/data/repository"
	"sudar-backend/internal/dto/request"
	"sudar-backend/internal/dto/response"
	"sudar-backend/pkg/mailer"
	"sudar-backend/pkg/token"
	"sudar-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	SendVerificationCode(ctx context.Context, req *request.SendVerificationCodeRequest) (*response.VerificationCodeSentResponse, error)
	Signup(ctx context.Context, req *request.SignupRequest) (*response.TeacherResponse, *token.Pair, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.TeacherResponse, *token.Pair, error)
	GetMe(ctx context.Context, teacherID uuid.UUID) (*response.TeacherResponse, error)
	ForgotPassword(ctx context.Context, req *request.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error
}

type authService struct {
	repo   *repository.Repository // grouping teacherRepo & verificationCodeRepo
	config *utils.Config
	tokens *token.Manager
	mail   mailer.Mailer
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	tokens *token.Manager,
	mail mailer.Mailer,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		tokens: tokens,
		mail:   mail,
		log:    log,
	}
}

func (s *authService) SendVerificationCode(ctx context.Context, req *request.SendVerificationCodeRequest) (*response.VerificationCodeSentResponse, error) {
	// 1. Validasi input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Send verification code validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Cek email sudah terdaftar
	existingTeacher, err := s.repo.Teacher.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to check email")
	}
	if existingTeacher != nil {
		return nil, fmt.Errorf("Email already registered")
	}

	// 3. Generate kode verifikasi
	code, err := utils.GenerateVerificationCode(s.config.Verification.CodeLength)
	if err != nil {
		s.log.Error("Failed to generate verification code", zap.Error(err))
		return nil, fmt.Errorf("failed to generate code")
	}

	// 4. Upsert: satu baris per email, kode lama ditimpa
	now := time.Now()
	verification := &entity.EmailVerificationCode{
		Email:      req.Email,
		Code:       code,
		ExpiryTime: now.Add(time.Duration(s.config.Verification.ExpiryMinutes) * time.Minute),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.VerificationCode.Upsert(ctx, verification); err != nil {
		s.log.Error("Failed to save verification code", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to save code")
	}

	// 5. Kirim email, best-effort; kode tetap tersimpan kalau SMTP gagal
	if err := s.mail.SendVerificationCode(req.Email, req.TeacherName, code); err != nil {
		s.log.Warn("Failed to send verification email",
			zap.Error(err), zap.String("email", req.Email))
	}

	s.log.Info("Verification code issued",
		zap.String("email", req.Email),
		zap.Time("expires_at", verification.ExpiryTime))

	return &response.VerificationCodeSentResponse{Email: req.Email}, nil
}

func (s *authService) Signup(ctx context.Context, req *request.SignupRequest) (*response.TeacherResponse, *token.Pair, error) {
	// 1. Validasi input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Signup validation failed", zap.Any("errors", errs))
		return nil, nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Kode verifikasi harus ada untuk email ini
	verification, err := s.repo.VerificationCode.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check verification code", zap.Error(err), zap.String("email", req.Email))
		return nil, nil, fmt.Errorf("failed to check code")
	}
	if verification == nil {
		return nil, nil, fmt.Errorf("No verification code found for this email")
	}

	// 3. Kode harus cocok
	if verification.Code != req.VerificationCode {
		return nil, nil, fmt.Errorf("Invalid verification code")
	}

	// 4. Kode harus belum kedaluwarsa
	if time.Now().After(verification.ExpiryTime) {
		return nil, nil, fmt.Errorf("Verification code has expired")
	}

	// 5. Cek aturan password
	if err := utils.ValidatePassword(req.Password); err != nil {
		return nil, nil, err
	}

	// 6. Cek email belum dipakai teacher lain
	existingTeacher, err := s.repo.Teacher.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, nil, fmt.Errorf("failed to check email")
	}
	if existingTeacher != nil {
		return nil, nil, fmt.Errorf("Email already registered")
	}

	// 7. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, nil, fmt.Errorf("failed to process password")
	}

	// 8. Create teacher entity
	now := time.Now()
	teacher := &entity.Teacher{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		TeacherName:    req.TeacherName,
		Email:          req.Email,
		HashedPassword: hashedPassword,
	}

	if err := s.repo.Teacher.Create(ctx, teacher); err != nil {
		s.log.Error("Failed to create teacher", zap.Error(err), zap.String("email", req.Email))
		return nil, nil, fmt.Errorf("failed to create account")
	}

	// 9. Kode sekali pakai, hapus setelah dikonsumsi
	if err := s.repo.VerificationCode.DeleteByEmail(ctx, req.Email); err != nil {
		s.log.Warn("Failed to delete consumed verification code",
			zap.Error(err), zap.String("email", req.Email))
		// Continue anyway
	}

	// 10. Auto login setelah signup
	pair, err := s.tokens.IssuePair(teacher.ID.String())
	if err != nil {
		s.log.Error("Failed to issue tokens", zap.Error(err), zap.String("teacher_id", teacher.ID.String()))
		return nil, nil, fmt.Errorf("failed to create session")
	}

	s.log.Info("Teacher registered",
		zap.String("teacher_id", teacher.ID.String()),
		zap.String("email", teacher.Email))

	resp := response.TeacherToResponse(teacher)
	return &resp, pair, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.TeacherResponse, *token.Pair, error) {
	// 1. Validasi
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Find teacher by email
	teacher, err := s.repo.Teacher.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find teacher", zap.Error(err), zap.String("email", req.Email))
		return nil, nil, fmt.Errorf("failed to find teacher")
	}

	// 3. Pesan sama untuk email salah dan password salah
	if teacher == nil {
		s.log.Warn("Teacher not found for login", zap.String("email", req.Email))
		return nil, nil, fmt.Errorf("Invalid email or password")
	}

	if !utils.CheckPasswordHash(req.Password, teacher.HashedPassword) {
		s.log.Warn("Invalid password", zap.String("teacher_id", teacher.ID.String()))
		return nil, nil, fmt.Errorf("Invalid email or password")
	}

	// 4. Issue token pair
	pair, err := s.tokens.IssuePair(teacher.ID.String())
	if err != nil {
		s.log.Error("Failed to issue tokens", zap.Error(err), zap.String("teacher_id", teacher.ID.String()))
		return nil, nil, fmt.Errorf("failed to create session")
	}

	s.log.Info("Teacher logged in",
		zap.String("teacher_id", teacher.ID.String()),
		zap.String("email", teacher.Email))

	resp := response.TeacherToResponse(teacher)
	return &resp, pair, nil
}

func (s *authService) GetMe(ctx context.Context, teacherID uuid.UUID) (*response.TeacherResponse, error) {
	teacher, err := s.repo.Teacher.FindByID(ctx, teacherID)
	if err != nil {
		s.log.Error("Failed to find teacher", zap.Error(err), zap.String("teacher_id", teacherID.String()))
		return nil, fmt.Errorf("failed to find teacher")
	}
	if teacher == nil {
		return nil, fmt.Errorf("Teacher not found")
	}

	resp := response.TeacherToResponse(teacher)
	return &resp, nil
}

func (s *authService) ForgotPassword(ctx context.Context, req *request.ForgotPasswordRequest) error {
	// 1. Validasi
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Forgot password validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Jangan bocorkan email terdaftar atau tidak, selalu sukses
	teacher, err := s.repo.Teacher.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find teacher", zap.Error(err), zap.String("email", req.Email))
		return fmt.Errorf("failed to find teacher")
	}
	if teacher == nil {
		s.log.Info("Forgot password for unknown email", zap.String("email", req.Email))
		return nil
	}

	// 3. Generate reset code
	code, err := utils.GenerateVerificationCode(s.config.Verification.CodeLength)
	if err != nil {
		s.log.Error("Failed to generate reset code", zap.Error(err))
		return fmt.Errorf("failed to generate reset code")
	}

	// 4. Simpan di baris teacher, bukan tabel verifikasi
	expiry := time.Now().Add(time.Duration(s.config.Verification.ExpiryMinutes) * time.Minute)
	if err := s.repo.Teacher.SetResetCode(ctx, teacher.ID, code, expiry); err != nil {
		s.log.Error("Failed to store reset code", zap.Error(err), zap.String("teacher_id", teacher.ID.String()))
		return fmt.Errorf("failed to store reset code")
	}

	// 5. Kirim email, best-effort
	if err := s.mail.SendResetCode(req.Email, code); err != nil {
		s.log.Warn("Failed to send reset email",
			zap.Error(err), zap.String("email", req.Email))
	}

	s.log.Info("Reset code issued",
		zap.String("teacher_id", teacher.ID.String()),
		zap.Time("expires_at", expiry))

	return nil
}

func (s *authService) ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error {
	// 1. Validasi
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Reset password validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Pesan sama untuk email tak dikenal dan kode salah
	teacher, err := s.repo.Teacher.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find teacher", zap.Error(err), zap.String("email", req.Email))
		return fmt.Errorf("failed to find teacher")
	}
	if teacher == nil {
		return fmt.Errorf("Invalid email or code")
	}

	if teacher.ResetPasswordCode == nil || *teacher.ResetPasswordCode != req.Code {
		return fmt.Errorf("Invalid email or code")
	}

	// 3. Kode harus belum kedaluwarsa
	if teacher.CodeExpiryTime == nil || time.Now().After(*teacher.CodeExpiryTime) {
		return fmt.Errorf("Reset code has expired")
	}

	// 4. Cek aturan password baru
	if err := utils.ValidatePassword(req.NewPassword); err != nil {
		return err
	}

	// 5. Hash dan simpan, reset code otomatis dibersihkan
	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return fmt.Errorf("failed to process password")
	}

	if err := s.repo.Teacher.UpdatePassword(ctx, teacher.ID, hashedPassword); err != nil {
		s.log.Error("Failed to update password", zap.Error(err), zap.String("teacher_id", teacher.ID.String()))
		return fmt.Errorf("failed to update password")
	}

	s.log.Info("Password reset", zap.String("teacher_id", teacher.ID.String()))
	return nil
}
