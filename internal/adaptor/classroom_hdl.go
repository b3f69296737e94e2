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

type ClassroomHandler struct {
	service usecase.ClassroomService
	log     *zap.Logger
}

func NewClassroomHandler(service usecase.ClassroomService, log *zap.Logger) *ClassroomHandler {
	return &ClassroomHandler{
		service: service,
		log:     log.With(zap.String("handler", "classroom")),
	}
}

// CreateClassroom handles POST /classrooms
func (h *ClassroomHandler) CreateClassroom(w http.ResponseWriter, r *http.Request) {
	teacherID, ok := utils.GetTeacherIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Not authenticated")
		return
	}

	var req request.ClassroomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	classroom, err := h.service.CreateClassroom(r.Context(), teacherID, &req)
	if err != nil {
		h.handleServiceError(w, err, "create classroom")
		return
	}

	utils.ResponseCreated(w, "success", classroom)
}

// GetClassrooms handles GET /classrooms
func (h *ClassroomHandler) GetClassrooms(w http.ResponseWriter, r *http.Request) {
	teacherID, ok := utils.GetTeacherIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Not authenticated")
		return
	}

	classrooms, err := h.service.GetClassrooms(r.Context(), teacherID)
	if err != nil {
		h.handleServiceError(w, err, "get classrooms")
		return
	}

	utils.ResponseSuccess(w, "success", classrooms)
}

// GetClassroomByID handles GET /classrooms/{classroomID}
func (h *ClassroomHandler) GetClassroomByID(w http.ResponseWriter, r *http.Request) {
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

	classroom, err := h.service.GetClassroomByID(r.Context(), teacherID, classroomID)
	if err != nil {
		h.handleServiceError(w, err, "get classroom by ID")
		return
	}

	utils.ResponseSuccess(w, "success", classroom)
}

// UpdateClassroom handles PUT /classrooms/{classroomID}
func (h *ClassroomHandler) UpdateClassroom(w http.ResponseWriter, r *http.Request) {
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

	var req request.ClassroomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	classroom, err := h.service.UpdateClassroom(r.Context(), teacherID, classroomID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update classroom")
		return
	}

	utils.ResponseSuccess(w, "success", classroom)
}

// DeleteClassroom handles DELETE /classrooms/{classroomID}
func (h *ClassroomHandler) DeleteClassroom(w http.ResponseWriter, r *http.Request) {
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

	if err := h.service.DeleteClassroom(r.Context(), teacherID, classroomID); err != nil {
		h.handleServiceError(w, err, "delete classroom")
		return
	}

	utils.ResponseNoContent(w)
}

// handleServiceError handles errors untuk classroom operations
func (h *ClassroomHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
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
