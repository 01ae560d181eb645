package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/campushq/college-portal-api/internal/model"
	"github.com/campushq/college-portal-api/internal/usecase"
)

// HODHandler serves the head-of-department administration endpoints.
type HODHandler struct {
	approvalUsecase     usecase.ApprovalUsecase
	academicUsecase     usecase.AcademicUsecase
	notificationUsecase usecase.NotificationUsecase
	validator           *requestValidator
}

// NewHODHandler creates a new HODHandler instance.
func NewHODHandler(
	approvalUsecase usecase.ApprovalUsecase,
	academicUsecase usecase.AcademicUsecase,
	notificationUsecase usecase.NotificationUsecase,
) *HODHandler {
	return &HODHandler{
		approvalUsecase:     approvalUsecase,
		academicUsecase:     academicUsecase,
		notificationUsecase: notificationUsecase,
		validator:           newRequestValidator(),
	}
}

type approveTeacherRequest struct {
	TeacherID string `json:"teacherId" validate:"required"`
}

type registerStudentsRequest struct {
	Students []studentEntry `json:"students" validate:"required,min=1,dive"`
}

type studentEntry struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type upsertTimetableRequest struct {
	Semester int                   `json:"semester" validate:"required,min=1,max=12"`
	Schedule []timetableEntryInput `json:"schedule" validate:"required,dive"`
}

type timetableEntryInput struct {
	Day       string `json:"day"       validate:"required,oneof=monday tuesday wednesday thursday friday saturday"`
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime"   validate:"required"`
	PaperID   string `json:"paperId"   validate:"required"`
	Room      string `json:"room"`
}

type addPaperRequest struct {
	Name string `json:"name" validate:"required"`
	Code string `json:"code" validate:"required,alphanum"`
}

type sendNotificationRequest struct {
	Message    string   `json:"message"    validate:"required"`
	StudentIDs []string `json:"studentIds" validate:"required,min=1"`
}

// ApproveTeacher handles POST /api/hod/approve-teacher.
func (h *HODHandler) ApproveTeacher(w http.ResponseWriter, r *http.Request) {
	var req approveTeacherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	if msg := h.validator.Check(req); msg != "" {
		renderError(w, r, http.StatusBadRequest, msg)
		return
	}

	user, err := h.approvalUsecase.ApproveTeacher(r.Context(), req.TeacherID)
	if err != nil {
		if errors.Is(err, usecase.ErrNotPendingTeacher) {
			renderError(w, r, http.StatusNotFound, "No pending teacher found with that id")
			return
		}

		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to approve teacher")
		renderError(w, r, http.StatusInternalServerError, "Failed to approve teacher")
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]any{
		"success": true,
		"message": "Teacher approved successfully",
		"user":    user.Projection(),
	})
}

// PendingTeachers handles GET /api/hod/pending-teachers.
func (h *HODHandler) PendingTeachers(w http.ResponseWriter, r *http.Request) {
	users, err := h.approvalUsecase.ListPendingTeachers(r.Context())
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to list pending teachers")
		renderError(w, r, http.StatusInternalServerError, "Failed to list pending teachers")
		return
	}

	projections := make([]model.UserProjection, 0, len(users))
	for _, u := range users {
		projections = append(projections, u.Projection())
	}

	renderJSON(w, r, http.StatusOK, map[string]any{
		"success":  true,
		"teachers": projections,
	})
}

// RegisterStudents handles POST /api/hod/students.
func (h *HODHandler) RegisterStudents(w http.ResponseWriter, r *http.Request) {
	var req registerStudentsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	if msg := h.validator.Check(req); msg != "" {
		renderError(w, r, http.StatusBadRequest, msg)
		return
	}

	params := make([]usecase.StudentParams, 0, len(req.Students))
	for _, s := range req.Students {
		params = append(params, usecase.StudentParams{
			Name:     s.Name,
			Email:    s.Email,
			Password: s.Password,
		})
	}

	created, err := h.approvalUsecase.RegisterStudents(r.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailTaken):
			renderError(w, r, http.StatusConflict, "Email already registered")
		case errors.Is(err, usecase.ErrMissingFields),
			errors.Is(err, usecase.ErrInvalidEmail),
			errors.Is(err, usecase.ErrWeakPassword):
			renderError(w, r, http.StatusBadRequest, err.Error())
		default:
			zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to register students")
			renderError(w, r, http.StatusInternalServerError, "Failed to register students")
		}
		return
	}

	renderJSON(w, r, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Students registered successfully",
		"created": created,
	})
}

// UpsertTimetable handles POST /api/hod/timetable.
func (h *HODHandler) UpsertTimetable(w http.ResponseWriter, r *http.Request) {
	var req upsertTimetableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	if msg := h.validator.Check(req); msg != "" {
		renderError(w, r, http.StatusBadRequest, msg)
		return
	}

	schedule := make([]model.TimetableEntry, 0, len(req.Schedule))
	for _, e := range req.Schedule {
		schedule = append(schedule, model.TimetableEntry{
			Day:       e.Day,
			StartTime: e.StartTime,
			EndTime:   e.EndTime,
			PaperID:   e.PaperID,
			Room:      e.Room,
		})
	}

	err := h.academicUsecase.UpsertTimetable(r.Context(), &model.Timetable{
		Semester: req.Semester,
		Schedule: schedule,
	})
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to update timetable")
		renderError(w, r, http.StatusInternalServerError, "Failed to update timetable")
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]any{
		"success": true,
		"message": "Timetable updated successfully",
	})
}

// AddPaper handles POST /api/hod/papers.
func (h *HODHandler) AddPaper(w http.ResponseWriter, r *http.Request) {
	var req addPaperRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	if msg := h.validator.Check(req); msg != "" {
		renderError(w, r, http.StatusBadRequest, msg)
		return
	}

	paper, err := h.academicUsecase.AddPaper(r.Context(), req.Name, req.Code)
	if err != nil {
		if errors.Is(err, usecase.ErrPaperCodeTaken) {
			renderError(w, r, http.StatusConflict, "Paper code already exists")
			return
		}

		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to add paper")
		renderError(w, r, http.StatusInternalServerError, "Failed to add paper")
		return
	}

	renderJSON(w, r, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Paper added successfully",
		"paper":   paper,
	})
}

// Papers handles GET /api/hod/papers.
func (h *HODHandler) Papers(w http.ResponseWriter, r *http.Request) {
	papers, err := h.academicUsecase.ListPapers(r.Context())
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to list papers")
		renderError(w, r, http.StatusInternalServerError, "Failed to list papers")
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]any{
		"success": true,
		"papers":  papers,
	})
}

// SendNotification handles POST /api/hod/notifications.
func (h *HODHandler) SendNotification(w http.ResponseWriter, r *http.Request) {
	var req sendNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	if msg := h.validator.Check(req); msg != "" {
		renderError(w, r, http.StatusBadRequest, msg)
		return
	}

	notification, err := h.notificationUsecase.SendNotification(r.Context(), req.Message, req.StudentIDs)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to send notification")
		renderError(w, r, http.StatusInternalServerError, "Failed to send notification")
		return
	}

	renderJSON(w, r, http.StatusCreated, map[string]any{
		"success":      true,
		"message":      "Notification sent successfully",
		"notification": notification,
	})
}
