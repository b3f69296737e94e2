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

type ActivityHandler struct {
	service usecase.ActivityService
	log     *zap.Logger
}

func NewActivityHandler(service usecase.ActivityService, log *zap.Logger) *ActivityHandler {
	return &ActivityHandler{
		service: service,
		log:     log.With(zap.String("handler", "activity")),
	}
}

// CreateActivity handles POST /classrooms/{classroomID}/subjects/{subjectID}/activities
func (h *ActivityHandler) CreateActivity(w http.ResponseWriter, r *http.Request) {
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

	var req request.ActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	activity, err := h.service.CreateActivity(r.Context(), teacherID, classroomID, subjectID, &req)
	if err != nil {
		h.handleServiceError(w, err, "create activity")
		return
	}

	utils.ResponseCreated(w, "success", activity)
}

// GetActivities handles GET /classrooms/{classroomID}/subjects/{subjectID}/activities
func (h *ActivityHandler) GetActivities(w http.ResponseWriter, r *http.Request) {
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

	activities, err := h.service.GetActivities(r.Context(), teacherID, classroomID, subjectID)
	if err != nil {
		h.handleServiceError(w, err, "get activities")
		return
	}

	utils.ResponseSuccess(w, "success", activities)
}

// GetActivityByID handles GET /classrooms/{classroomID}/subjects/{subjectID}/activities/{activityID}
func (h *ActivityHandler) GetActivityByID(w http.ResponseWriter, r *http.Request) {
	teacherID, ok := utils.GetTeacherIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Not authenticated")
		return
	}

	classroomID := chi.URLParam(r, "classroomID")
	subjectID := chi.URLParam(r, "subjectID")
	activityID := chi.URLParam(r, "activityID")
	if classroomID == "" || subjectID == "" || activityID == "" {
		utils.ResponseBadRequest(w, "Classroom ID, subject ID and activity ID are required", nil)
		return
	}

	activity, err := h.service.GetActivityByID(r.Context(), teacherID, classroomID, subjectID, activityID)
	if err != nil {
		h.handleServiceError(w, err, "get activity by ID")
		return
	}

	utils.ResponseSuccess(w, "success", activity)
}

// UpdateActivity handles PUT /classrooms/{classroomID}/subjects/{subjectID}/activities/{activityID}
func (h *ActivityHandler) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	teacherID, ok := utils.GetTeacherIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Not authenticated")
		return
	}

	classroomID := chi.URLParam(r, "classroomID")
	subjectID := chi.URLParam(r, "subjectID")
	activityID := chi.URLParam(r, "activityID")
	if classroomID == "" || subjectID == "" || activityID == "" {
		utils.ResponseBadRequest(w, "Classroom ID, subject ID and activity ID are required", nil)
		return
	}

	var req request.ActivityUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	activity, err := h.service.UpdateActivity(r.Context(), teacherID, classroomID, subjectID, activityID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update activity")
		return
	}

	utils.ResponseSuccess(w, "success", activity)
}

// DeleteActivity handles DELETE /classrooms/{classroomID}/subjects/{subjectID}/activities/{activityID}
func (h *ActivityHandler) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	teacherID, ok := utils.GetTeacherIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Not authenticated")
		return
	}

	classroomID := chi.URLParam(r, "classroomID")
	subjectID := chi.URLParam(r, "subjectID")
	activityID := chi.URLParam(r, "activityID")
	if classroomID == "" || subjectID == "" || activityID == "" {
		utils.ResponseBadRequest(w, "Classroom ID, subject ID and activity ID are required", nil)
		return
	}

	if err := h.service.DeleteActivity(r.Context(), teacherID, classroomID, subjectID, activityID); err != nil {
		h.handleServiceError(w, err, "delete activity")
		return
	}

	utils.ResponseNoContent(w)
}

// handleServiceError handles errors untuk activity operations
func (h *ActivityHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
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
