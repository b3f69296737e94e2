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

type StudentHandler struct {
	service usecase.StudentService
	log     *zap.Logger
}

func NewStudentHandler(service usecase.StudentService, log *zap.Logger) *StudentHandler {
	return &StudentHandler{
		service: service,
		log:     log.With(zap.String("handler", "student")),
	}
}

// CreateStudent handles POST /classrooms/{classroomID}/students
func (h *StudentHandler) CreateStudent(w http.ResponseWriter, r *http.Request) {
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

	var req request.StudentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	student, err := h.service.CreateStudent(r.Context(), teacherID, classroomID, &req)
	if err != nil {
		h.handleServiceError(w, err, "create student")
		return
	}

	utils.ResponseCreated(w, "success", student)
}

// GetStudents handles GET /classrooms/{classroomID}/students
func (h *StudentHandler) GetStudents(w http.ResponseWriter, r *http.Request) {
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

	students, err := h.service.GetStudents(r.Context(), teacherID, classroomID)
	if err != nil {
		h.handleServiceError(w, err, "get students")
		return
	}

	utils.ResponseSuccess(w, "success", students)
}

// GetStudentByRollno handles GET /classrooms/{classroomID}/students/{rollno}
func (h *StudentHandler) GetStudentByRollno(w http.ResponseWriter, r *http.Request) {
	teacherID, ok := utils.GetTeacherIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Not authenticated")
		return
	}

	classroomID := chi.URLParam(r, "classroomID")
	rollno := chi.URLParam(r, "rollno")
	if classroomID == "" || rollno == "" {
		utils.ResponseBadRequest(w, "Classroom ID and rollno are required", nil)
		return
	}

	student, err := h.service.GetStudentByRollno(r.Context(), teacherID, classroomID, rollno)
	if err != nil {
		h.handleServiceError(w, err, "get student")
		return
	}

	utils.ResponseSuccess(w, "success", student)
}

// UpdateStudent handles PUT /classrooms/{classroomID}/students/{rollno}
func (h *StudentHandler) UpdateStudent(w http.ResponseWriter, r *http.Request) {
	teacherID, ok := utils.GetTeacherIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Not authenticated")
		return
	}

	classroomID := chi.URLParam(r, "classroomID")
	rollno := chi.URLParam(r, "rollno")
	if classroomID == "" || rollno == "" {
		utils.ResponseBadRequest(w, "Classroom ID and rollno are required", nil)
		return
	}

	var req request.StudentUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	student, err := h.service.UpdateStudent(r.Context(), teacherID, classroomID, rollno, &req)
	if err != nil {
		h.handleServiceError(w, err, "update student")
		return
	}

	utils.ResponseSuccess(w, "success", student)
}

// DeleteStudent handles DELETE /classrooms/{classroomID}/students/{rollno}
func (h *StudentHandler) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	teacherID, ok := utils.GetTeacherIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Not authenticated")
		return
	}

	classroomID := chi.URLParam(r, "classroomID")
	rollno := chi.URLParam(r, "rollno")
	if classroomID == "" || rollno == "" {
		utils.ResponseBadRequest(w, "Classroom ID and rollno are required", nil)
		return
	}

	if err := h.service.DeleteStudent(r.Context(), teacherID, classroomID, rollno); err != nil {
		h.handleServiceError(w, err, "delete student")
		return
	}

	utils.ResponseNoContent(w)
}

// handleServiceError handles errors untuk student operations
func (h *StudentHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "already exists"):
		h.log.Warn(operation+" failed - already exists",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

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
