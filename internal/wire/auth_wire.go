package wire

import (
	"sudar-backend/internal/adaptor"
	"sudar-backend/internal/data/repository"
	"sudar-backend/pkg/middleware"
	"sudar-backend/pkg/token"
	"sudar-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	tokens *token.Manager,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Public routes (tanpa auth middleware)
	r.Post("/auth/send-verification-code", authHandler.SendVerificationCode)
	r.Post("/auth/signup", authHandler.Signup)
	r.Post("/auth/login", authHandler.Login)
	r.Post("/auth/forgot-password", authHandler.ForgotPassword)
	r.Post("/auth/reset-password", authHandler.ResetPassword)

	// ==================== PROTECTED ROUTES ====================
	// Logout dan profil - PROTECTED (butuh auth)
	r.With(middleware.AuthTeacher(repo.Teacher, tokens, log)).Post("/auth/logout", authHandler.Logout)
	r.With(middleware.AuthTeacher(repo.Teacher, tokens, log)).Get("/auth/me", authHandler.Me)
}
