package usecase

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/campushq/college-portal-api/internal/model"
)

func duplicateKeyError() error {
	return mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "duplicate key error"}},
	}
}

// fakeUserRepo is an in-memory credential store mirroring the Mongo
// repository's error surface, including the unique email index.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*model.User

	createErr      error
	recordLoginErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User)}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *model.User) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return nil, f.createErr
	}

	for _, existing := range f.users {
		if existing.Email == user.Email {
			return nil, duplicateKeyError()
		}
	}

	user.ID = bson.NewObjectID()
	copied := *user
	f.users[user.ID.Hex()] = &copied

	return user, nil
}

func (f *fakeUserRepo) GetUser(_ context.Context, id string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}

	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}

	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserRepo) GetUsersByIDs(_ context.Context, ids []string) ([]*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var users []*model.User
	for _, id := range ids {
		if user, ok := f.users[id]; ok {
			copied := *user
			users = append(users, &copied)
		}
	}

	return users, nil
}

func (f *fakeUserRepo) ListUsersByRole(_ context.Context, role model.Role) ([]*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var users []*model.User
	for _, user := range f.users {
		if user.Role == role {
			copied := *user
			users = append(users, &copied)
		}
	}

	return users, nil
}

func (f *fakeUserRepo) RecordLogin(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.recordLoginErr != nil {
		return f.recordLoginErr
	}

	user, ok := f.users[id]
	if !ok {
		return mongo.ErrNoDocuments
	}

	user.LoginCount++
	return nil
}

func (f *fakeUserRepo) ApproveTeacher(_ context.Context, id string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[id]
	if !ok || user.Role != model.RolePendingTeacher {
		return nil, mongo.ErrNoDocuments
	}

	user.Role = model.RoleTeacher
	if user.TeacherDetails != nil {
		user.TeacherDetails.Status = model.TeacherStatusApproved
	}

	copied := *user
	return &copied, nil
}

// fakePaperRepo is an in-memory paper store with unique codes.
type fakePaperRepo struct {
	papers map[string]*model.Paper
}

func newFakePaperRepo() *fakePaperRepo {
	return &fakePaperRepo{papers: make(map[string]*model.Paper)}
}

func (f *fakePaperRepo) CreatePaper(_ context.Context, paper *model.Paper) (*model.Paper, error) {
	if _, ok := f.papers[paper.Code]; ok {
		return nil, duplicateKeyError()
	}

	paper.ID = bson.NewObjectID()
	f.papers[paper.Code] = paper

	return paper, nil
}

func (f *fakePaperRepo) GetPaperByCode(_ context.Context, code string) (*model.Paper, error) {
	paper, ok := f.papers[code]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}

	return paper, nil
}

func (f *fakePaperRepo) ListPapers(_ context.Context) ([]*model.Paper, error) {
	var papers []*model.Paper
	for _, paper := range f.papers {
		papers = append(papers, paper)
	}

	return papers, nil
}

// fakeTimetableRepo stores one timetable per semester.
type fakeTimetableRepo struct {
	timetables map[int]*model.Timetable
}

func newFakeTimetableRepo() *fakeTimetableRepo {
	return &fakeTimetableRepo{timetables: make(map[int]*model.Timetable)}
}

func (f *fakeTimetableRepo) UpsertTimetable(_ context.Context, timetable *model.Timetable) error {
	f.timetables[timetable.Semester] = timetable
	return nil
}

func (f *fakeTimetableRepo) GetTimetableBySemester(_ context.Context, semester int) (*model.Timetable, error) {
	timetable, ok := f.timetables[semester]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}

	return timetable, nil
}

// fakeNotificationRepo is an in-memory notification store.
type fakeNotificationRepo struct {
	notifications []*model.Notification
}

func (f *fakeNotificationRepo) CreateNotification(
	_ context.Context,
	notification *model.Notification,
) (*model.Notification, error) {
	notification.ID = bson.NewObjectID()
	f.notifications = append(f.notifications, notification)

	return notification, nil
}

func (f *fakeNotificationRepo) ListNotificationsForStudent(
	_ context.Context,
	studentID string,
) ([]*model.Notification, error) {
	var result []*model.Notification
	for _, n := range f.notifications {
		for _, id := range n.StudentIDs {
			if id == studentID {
				result = append(result, n)
				break
			}
		}
	}

	return result, nil
}
