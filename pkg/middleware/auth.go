package middleware

import (
	"net/http"

	"sudar-backend/internal/data/repository"
	"sudar-backend/pkg/token"
	"sudar-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthTeacher middleware untuk validasi access token JWT dari cookie
func AuthTeacher(teacherRepo repository.TeacherRepository, tokens *token.Manager, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// 1. Extract access token dari cookie
			cookie, err := r.Cookie(utils.AccessTokenCookie)
			if err != nil || cookie.Value == "" {
				utils.ResponseUnauthorized(w, "Not authenticated")
				return
			}

			// 2. Verify signature + expiry
			claims, err := tokens.Verify(cookie.Value)
			if err != nil {
				logger.Warn("Invalid access token", zap.Error(err))
				utils.ResponseUnauthorized(w, "Could not validate credentials")
				return
			}

			// 3. Refresh token tidak boleh dipakai sebagai access token
			if claims.Type != string(token.KindAccess) {
				utils.ResponseUnauthorized(w, "Invalid token type")
				return
			}

			// 4. Subject harus teacher ID yang valid
			if claims.Subject == "" {
				utils.ResponseUnauthorized(w, "Could not validate credentials")
				return
			}

			teacherID, err := uuid.Parse(claims.Subject)
			if err != nil {
				logger.Warn("Invalid teacher ID in token", zap.String("subject", claims.Subject))
				utils.ResponseUnauthorized(w, "Invalid teacher ID format")
				return
			}

			// 5. Teacher harus masih ada di database
			teacher, err := teacherRepo.FindByID(r.Context(), teacherID)
			if err != nil {
				logger.Error("Failed to load teacher for auth",
					zap.String("teacher_id", teacherID.String()),
					zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if teacher == nil {
				logger.Warn("Token references missing teacher", zap.String("teacher_id", teacherID.String()))
				utils.ResponseUnauthorized(w, "Teacher not found")
				return
			}

			// Set context dengan teacher ID
			ctx := utils.SetTeacherContext(r.Context(), teacherID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
