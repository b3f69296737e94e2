package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"sudar-backend/internal/dto/request"
	"sudar-backend/internal/usecase"
	"sudar-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SubjectHandler struct {
	service usecase.SubjectService
	log     *zap.Logger
}

func NewSubjectHandler(service usecase.SubjectService, log *zap.Logger) *SubjectHandler {
	return &SubjectHandler{
		service: service,
		log:     log.With(zap.String("handler", "subject")),
	}
}

// CreateSubject handles POST /classrooms/{classroomID}/subjects
func (h *SubjectHandler) CreateSubject(w http.ResponseWriter, r *http.Request) {
	teacherID, ok := utils.GetTeacherIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Not authenticated")
		return
	}

	classroomID := chi.URLParam(r, "classroomID")
	if classroomID == "" {
		utils.ResponseBadRequest(w, "Classroom ID is required", nil)
		return
	}

	var req request.SubjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	subject, err := h.service.CreateSubject(r.Context(), teacherID, classroomID, &req)
	if err != nil {
		h.handleServiceError(w, err, "create subject")
		return
	}

	utils.ResponseCreated(w, "success", subject)
}

// GetSubjects handles GET /classrooms/{classroomID}/subjects
func (h *SubjectHandler) GetSubjects(w http.ResponseWriter, r *http.Request) {
	teacherID, ok := utils.GetTeacherIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Not authenticated")
		return
	}

	classroomID := chi.URLParam(r, "classroomID")
	if classroomID == "" {
		utils.ResponseBadRequest(w, "Classroom ID is required", nil)
		return
	}

	subjects, err := h.service.GetSubjects(r.Context(), teacherID, classroomID)
	if err != nil {
		h.handleServiceError(w, err, "get subjects")
		return
	}

	utils.ResponseSuccess(w, "success", subjects)
}

// GetSubjectByID handles GET /classrooms/{classroomID}/subjects/{subjectID}
func (h *SubjectHandler) GetSubjectByID(w http.ResponseWriter, r *http.Request) {
	teacherID, ok := utils.GetTeacherIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Not authenticated")
		return
	}

	classroomID := chi.URLParam(r, "classroomID")
	subjectID := chi.URLParam(r, "subjectID")
	if classroomID == "" || subjectID == "" {
		utils.ResponseBadRequest(w, "Classroom ID and subject ID are required", nil)
		return
	}

	subject, err := h.service.GetSubjectByID(r.Context(), teacherID, classroomID, subjectID)
	if err != nil {
		h.handleServiceError(w, err, "get subject by ID")
		return
	}

	utils.ResponseSuccess(w, "success", subject)
}

// UpdateSubject handles PUT /classrooms/{classroomID}/subjects/{subjectID}
func (h *SubjectHandler) UpdateSubject(w http.ResponseWriter, r *http.Request) {
	teacherID, ok := utils.GetTeacherIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Not authenticated")
		return
	}

	classroomID := chi.URLParam(r, "classroomID")
	subjectID := chi.URLParam(r, "subjectID")
	if classroomID == "" || subjectID == "" {
		utils.ResponseBadRequest(w, "Classroom ID and subject ID are required", nil)
		return
	}

	var req request.SubjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	subject, err := h.service.UpdateSubject(r.Context(), teacherID, classroomID, subjectID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update subject")
		return
	}

	utils.ResponseSuccess(w, "success", subject)
}

// DeleteSubject handles DELETE /classrooms/{classroomID}/subjects/{subjectID}
func (h *SubjectHandler) DeleteSubject(w http.ResponseWriter, r *http.Request) {
	teacherID, ok := utils.GetTeacherIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Not authenticated")
		return
	}

	classroomID := chi.URLParam(r, "classroomID")
	subjectID := chi.URLParam(r, "subjectID")
	if classroomID == "" || subjectID == "" {
		utils.ResponseBadRequest(w, "Classroom ID and subject ID are required", nil)
		return
	}

	if err := h.service.DeleteSubject(r.Context(), teacherID, classroomID, subjectID); err != nil {
		h.handleServiceError(w, err, "delete subject")
		return
	}

	utils.ResponseNoContent(w)
}

// handleServiceError handles errors untuk subject operations
func (h *SubjectHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid"):
		h.log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
