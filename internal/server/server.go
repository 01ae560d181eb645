package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/campushq/college-portal-api/internal/config"
	"github.com/campushq/college-portal-api/internal/handler"
	"github.com/campushq/college-portal-api/internal/model"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth    *handler.AuthHandler
	Teacher *handler.TeacherHandler
	Student *handler.StudentHandler
	HOD     *handler.HODHandler
	Gate    *handler.RoleGate
}

// Server is the HTTP front of the portal.
type Server struct {
	httpServer *http.Server
	cfg        *config.Config
	logger     *zerolog.Logger
}

// New builds the router and wraps it in an http.Server.
func New(cfg *config.Config, logger *zerolog.Logger, h Handlers) *Server {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(handler.RequestID(logger))
	r.Use(middleware.Recoverer)

	r.Get("/api/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", h.Auth.Register)
		r.Post("/login", h.Auth.Login)
		r.Post("/logout", h.Auth.Logout)
	})

	r.Route("/api/teacher", func(r chi.Router) {
		r.Use(h.Gate.Authenticate)
		r.Use(handler.RequireRole(model.RoleTeacher, model.RoleHOD))

		r.Post("/marks", h.Teacher.AddMarks)
		r.Post("/attendance", h.Teacher.AddAttendance)
		r.Post("/notes", h.Teacher.AddNote)
	})

	r.Route("/api/student", func(r chi.Router) {
		r.Use(h.Gate.Authenticate)
		r.Use(handler.RequireRole(model.RoleStudent))

		r.Get("/marks", h.Student.Marks)
		r.Get("/attendance", h.Student.Attendance)
		r.Get("/notes", h.Student.Notes)
		r.Get("/timetable", h.Student.Timetable)
		r.Get("/notifications", h.Student.Notifications)
	})

	r.Route("/api/hod", func(r chi.Router) {
		r.Use(h.Gate.Authenticate)
		r.Use(handler.RequireRole(model.RoleHOD))

		r.Post("/approve-teacher", h.HOD.ApproveTeacher)
		r.Get("/pending-teachers", h.HOD.PendingTeachers)
		r.Post("/students", h.HOD.RegisterStudents)
		r.Post("/timetable", h.HOD.UpsertTimetable)
		r.Post("/papers", h.HOD.AddPaper)
		r.Get("/papers", h.HOD.Papers)
		r.Post("/notifications", h.HOD.SendNotification)
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		},
		cfg:    cfg,
		logger: logger,
	}
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info().Str("addr", s.cfg.HTTPAddr).Msg("http server listening")

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	s.logger.Info().Msg("shutting down http server")

	return s.httpServer.Shutdown(shutdownCtx)
}
