package usecase

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/campushq/college-portal-api/internal/model"
	"github.com/campushq/college-portal-api/internal/repository"
)

// AcademicUsecase defines the academic record operations around the auth
// core: papers, marks, attendance, notes and timetables.
type AcademicUsecase interface {
	AddPaper(ctx context.Context, name, code string) (*model.Paper, error)
	ListPapers(ctx context.Context) ([]*model.Paper, error)

	AddMarks(ctx context.Context, marks *model.Marks) error
	ListMarksByStudent(ctx context.Context, studentID string) ([]*model.Marks, error)

	AddAttendance(ctx context.Context, record *model.Attendance) error
	ListAttendanceByStudent(ctx context.Context, studentID string) ([]*model.Attendance, error)

	AddNote(ctx context.Context, note *model.Note) error
	ListNotes(ctx context.Context, paperID *string) ([]*model.Note, error)

	UpsertTimetable(ctx context.Context, timetable *model.Timetable) error
	GetTimetableBySemester(ctx context.Context, semester int) (*model.Timetable, error)
}

// Sentinel errors for the academic flows.
var (
	ErrPaperCodeTaken    = errors.New("paper code already exists")
	ErrTimetableNotFound = errors.New("timetable not found")
)

type academicUsecase struct {
	paperRepo      repository.PaperRepository
	marksRepo      repository.MarksRepository
	attendanceRepo repository.AttendanceRepository
	noteRepo       repository.NoteRepository
	timetableRepo  repository.TimetableRepository
}

// NewAcademicUsecase creates a new instance of AcademicUsecase.
func NewAcademicUsecase(
	paperRepo repository.PaperRepository,
	marksRepo repository.MarksRepository,
	attendanceRepo repository.AttendanceRepository,
	noteRepo repository.NoteRepository,
	timetableRepo repository.TimetableRepository,
) AcademicUsecase {
	return &academicUsecase{
		paperRepo:      paperRepo,
		marksRepo:      marksRepo,
		attendanceRepo: attendanceRepo,
		noteRepo:       noteRepo,
		timetableRepo:  timetableRepo,
	}
}

func (u *academicUsecase) AddPaper(ctx context.Context, name, code string) (*model.Paper, error) {
	if _, err := u.paperRepo.GetPaperByCode(ctx, code); err == nil {
		return nil, ErrPaperCodeTaken
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	paper, err := u.paperRepo.CreatePaper(ctx, &model.Paper{Name: name, Code: code})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrPaperCodeTaken
		}

		return nil, err
	}

	return paper, nil
}

func (u *academicUsecase) ListPapers(ctx context.Context) ([]*model.Paper, error) {
	return u.paperRepo.ListPapers(ctx)
}

func (u *academicUsecase) AddMarks(ctx context.Context, marks *model.Marks) error {
	return u.marksRepo.AddMarks(ctx, marks)
}

func (u *academicUsecase) ListMarksByStudent(ctx context.Context, studentID string) ([]*model.Marks, error) {
	return u.marksRepo.ListMarksByStudent(ctx, studentID)
}

func (u *academicUsecase) AddAttendance(ctx context.Context, record *model.Attendance) error {
	return u.attendanceRepo.AddAttendance(ctx, record)
}

func (u *academicUsecase) ListAttendanceByStudent(
	ctx context.Context,
	studentID string,
) ([]*model.Attendance, error) {
	return u.attendanceRepo.ListAttendanceByStudent(ctx, studentID)
}

func (u *academicUsecase) AddNote(ctx context.Context, note *model.Note) error {
	return u.noteRepo.AddNote(ctx, note)
}

func (u *academicUsecase) ListNotes(ctx context.Context, paperID *string) ([]*model.Note, error) {
	return u.noteRepo.ListNotes(ctx, paperID)
}

func (u *academicUsecase) UpsertTimetable(ctx context.Context, timetable *model.Timetable) error {
	return u.timetableRepo.UpsertTimetable(ctx, timetable)
}

func (u *academicUsecase) GetTimetableBySemester(ctx context.Context, semester int) (*model.Timetable, error) {
	timetable, err := u.timetableRepo.GetTimetableBySemester(ctx, semester)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrTimetableNotFound
		}

		return nil, err
	}

	return timetable, nil
}
