package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/campushq/college-portal-api/internal/model"
	"github.com/campushq/college-portal-api/internal/usecase"
)

// TeacherHandler serves the teacher-only record entry endpoints.
type TeacherHandler struct {
	academicUsecase usecase.AcademicUsecase
	validator       *requestValidator
}

// NewTeacherHandler creates a new TeacherHandler instance.
func NewTeacherHandler(academicUsecase usecase.AcademicUsecase) *TeacherHandler {
	return &TeacherHandler{
		academicUsecase: academicUsecase,
		validator:       newRequestValidator(),
	}
}

type addMarksRequest struct {
	StudentID string `json:"studentId" validate:"required"`
	PaperID   string `json:"paperId"   validate:"required"`
	Marks     int    `json:"marks"     validate:"min=0,max=100"`
}

type addAttendanceRequest struct {
	StudentID string `json:"studentId" validate:"required"`
	PaperID   string `json:"paperId"   validate:"required"`
	Date      string `json:"date"      validate:"required,datetime=2006-01-02"`
	Status    string `json:"status"    validate:"required,oneof=present absent"`
}

type addNoteRequest struct {
	PaperID string `json:"paperId" validate:"required"`
	Title   string `json:"title"   validate:"required"`
	Content string `json:"content" validate:"required"`
}

// AddMarks handles POST /api/teacher/marks.
func (h *TeacherHandler) AddMarks(w http.ResponseWriter, r *http.Request) {
	var req addMarksRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	if msg := h.validator.Check(req); msg != "" {
		renderError(w, r, http.StatusBadRequest, msg)
		return
	}

	err := h.academicUsecase.AddMarks(r.Context(), &model.Marks{
		StudentID: req.StudentID,
		PaperID:   req.PaperID,
		Marks:     req.Marks,
	})
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to add marks")
		renderError(w, r, http.StatusInternalServerError, "Failed to add marks")
		return
	}

	renderJSON(w, r, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Marks added successfully",
	})
}

// AddAttendance handles POST /api/teacher/attendance.
func (h *TeacherHandler) AddAttendance(w http.ResponseWriter, r *http.Request) {
	var req addAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	if msg := h.validator.Check(req); msg != "" {
		renderError(w, r, http.StatusBadRequest, msg)
		return
	}

	err := h.academicUsecase.AddAttendance(r.Context(), &model.Attendance{
		StudentID: req.StudentID,
		PaperID:   req.PaperID,
		Date:      req.Date,
		Status:    req.Status,
	})
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to add attendance")
		renderError(w, r, http.StatusInternalServerError, "Failed to add attendance")
		return
	}

	renderJSON(w, r, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Attendance added successfully",
	})
}

// AddNote handles POST /api/teacher/notes.
func (h *TeacherHandler) AddNote(w http.ResponseWriter, r *http.Request) {
	var req addNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	if msg := h.validator.Check(req); msg != "" {
		renderError(w, r, http.StatusBadRequest, msg)
		return
	}

	err := h.academicUsecase.AddNote(r.Context(), &model.Note{
		PaperID: req.PaperID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to add notes")
		renderError(w, r, http.StatusInternalServerError, "Failed to add notes")
		return
	}

	renderJSON(w, r, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Notes added successfully",
	})
}
