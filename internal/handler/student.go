package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/campushq/college-portal-api/internal/usecase"
)

// StudentHandler serves the student-only read endpoints. The student id
// always comes from the verified token claims, never from the request.
type StudentHandler struct {
	academicUsecase     usecase.AcademicUsecase
	notificationUsecase usecase.NotificationUsecase
}

// NewStudentHandler creates a new StudentHandler instance.
func NewStudentHandler(
	academicUsecase usecase.AcademicUsecase,
	notificationUsecase usecase.NotificationUsecase,
) *StudentHandler {
	return &StudentHandler{
		academicUsecase:     academicUsecase,
		notificationUsecase: notificationUsecase,
	}
}

// Marks handles GET /api/student/marks.
func (h *StudentHandler) Marks(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		renderError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	marks, err := h.academicUsecase.ListMarksByStudent(r.Context(), claims.UserID)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to fetch marks")
		renderError(w, r, http.StatusInternalServerError, "Failed to fetch marks")
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]any{
		"success": true,
		"marks":   marks,
	})
}

// Attendance handles GET /api/student/attendance.
func (h *StudentHandler) Attendance(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		renderError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	records, err := h.academicUsecase.ListAttendanceByStudent(r.Context(), claims.UserID)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to fetch attendance")
		renderError(w, r, http.StatusInternalServerError, "Failed to fetch attendance")
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]any{
		"success":    true,
		"attendance": records,
	})
}

// Notes handles GET /api/student/notes with an optional paperId filter.
func (h *StudentHandler) Notes(w http.ResponseWriter, r *http.Request) {
	var paperID *string
	if v := r.URL.Query().Get("paperId"); v != "" {
		paperID = &v
	}

	notes, err := h.academicUsecase.ListNotes(r.Context(), paperID)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to fetch notes")
		renderError(w, r, http.StatusInternalServerError, "Failed to fetch notes")
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]any{
		"success": true,
		"notes":   notes,
	})
}

// Timetable handles GET /api/student/timetable?semester=N.
func (h *StudentHandler) Timetable(w http.ResponseWriter, r *http.Request) {
	semester, err := strconv.Atoi(r.URL.Query().Get("semester"))
	if err != nil || semester < 1 {
		renderError(w, r, http.StatusBadRequest, "A valid semester is required")
		return
	}

	timetable, err := h.academicUsecase.GetTimetableBySemester(r.Context(), semester)
	if err != nil {
		if errors.Is(err, usecase.ErrTimetableNotFound) {
			renderError(w, r, http.StatusNotFound, "Timetable not found")
			return
		}

		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to fetch timetable")
		renderError(w, r, http.StatusInternalServerError, "Failed to fetch timetable")
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]any{
		"success":   true,
		"timetable": timetable,
	})
}

// Notifications handles GET /api/student/notifications.
func (h *StudentHandler) Notifications(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		renderError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	notifications, err := h.notificationUsecase.ListNotificationsForStudent(r.Context(), claims.UserID)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to fetch notifications")
		renderError(w, r, http.StatusInternalServerError, "Failed to fetch notifications")
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]any{
		"success":       true,
		"notifications": notifications,
	})
}
