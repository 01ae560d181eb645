package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/campushq/college-portal-api/internal/auth"
	"github.com/campushq/college-portal-api/internal/config"
	"github.com/campushq/college-portal-api/internal/model"
	"github.com/campushq/college-portal-api/internal/usecase"
)

// fakeUserRepo is a minimal in-memory credential store for handler tests.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User)}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *model.User) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.users {
		if existing.Email == user.Email {
			return nil, mongo.WriteException{
				WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "duplicate key error"}},
			}
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

func (f *fakeUserRepo) GetUsersByIDs(_ context.Context, _ []string) ([]*model.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) ListUsersByRole(_ context.Context, _ model.Role) ([]*model.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) RecordLogin(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if user, ok := f.users[id]; ok {
		user.LoginCount++
	}

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
	copied := *user
	return &copied, nil
}

func newTestAuthHandler(repo *fakeUserRepo) *AuthHandler {
	logger := zerolog.Nop()
	cfg := &config.Config{
		JWTSecret:   "test-secret-0123456789",
		TokenIssuer: "college-portal-api",
		SessionTTL:  24 * time.Hour,
		RememberTTL: 720 * time.Hour,
	}

	jwtAuth := auth.NewJWTAuthenticator(cfg.JWTSecret, cfg.TokenIssuer)
	cookies := auth.NewCookieManager(false)
	authUsecase := usecase.NewAuthUsecase(repo, jwtAuth, cfg, &logger)

	return NewAuthHandler(authUsecase, cookies, &logger)
}

func postJSON(t *testing.T, handlerFunc http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()

	r := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handlerFunc(w, r)
	return w
}

func TestRegisterEndpoint(t *testing.T) {
	h := newTestAuthHandler(newFakeUserRepo())

	w := postJSON(t, h.Register, `{"name":"A","email":"a@b.com","password":"secret1","role":"student"}`)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool                 `json:"success"`
		Message string               `json:"message"`
		User    model.UserProjection `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Equal(t, model.RoleStudent, resp.User.Role)
	assert.NotEmpty(t, resp.User.ID)

	// The response must never carry the credential in any form.
	assert.NotContains(t, w.Body.String(), "secret1")
	assert.NotContains(t, w.Body.String(), "password")
}

func TestRegisterEndpoint_ValidationMessages(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantError  string
	}{
		{
			name:       "missing fields",
			body:       `{"email":"a@b.com","password":"secret1","role":"student"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Name, email and password are required",
		},
		{
			name:       "invalid email",
			body:       `{"name":"A","email":"nope","password":"secret1","role":"student"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Please provide a valid email address",
		},
		{
			name:       "weak password",
			body:       `{"name":"A","email":"a@b.com","password":"12345","role":"student"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Password must be at least 6 characters long",
		},
		{
			name:       "invalid role",
			body:       `{"name":"A","email":"a@b.com","password":"secret1","role":"hod"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid role specified",
		},
		{
			name:       "bad json",
			body:       `{`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestAuthHandler(newFakeUserRepo())

			w := postJSON(t, h.Register, tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)

			var resp errorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantError, resp.Error)
		})
	}
}

func TestRegisterEndpoint_DuplicateEmail(t *testing.T) {
	h := newTestAuthHandler(newFakeUserRepo())
	body := `{"name":"A","email":"a@b.com","password":"secret1","role":"student"}`

	w := postJSON(t, h.Register, body)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, h.Register, body)
	assert.Equal(t, http.StatusConflict, w.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Email already registered", resp.Error)
}

func TestLoginEndpoint(t *testing.T) {
	h := newTestAuthHandler(newFakeUserRepo())

	w := postJSON(t, h.Register, `{"name":"A","email":"a@b.com","password":"secret1","role":"student"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, h.Login, `{"email":"a@b.com","password":"secret1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, auth.CookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.NotEmpty(t, cookies[0].Value)

	var resp struct {
		Success bool                 `json:"success"`
		User    model.UserProjection `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, model.RoleStudent, resp.User.Role)

	assert.NotContains(t, w.Body.String(), "secret1")
	assert.NotContains(t, w.Body.String(), "password")
}

func TestLoginEndpoint_EnumerationResistance(t *testing.T) {
	h := newTestAuthHandler(newFakeUserRepo())

	w := postJSON(t, h.Register, `{"name":"A","email":"a@b.com","password":"secret1","role":"student"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	unknown := postJSON(t, h.Login, `{"email":"nobody@b.com","password":"secret1"}`)
	wrong := postJSON(t, h.Login, `{"email":"a@b.com","password":"wrong-password"}`)

	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wrong.Code)

	// Byte-identical responses: the client cannot tell which field was
	// wrong.
	assert.Equal(t, unknown.Body.String(), wrong.Body.String())
}

func TestLoginEndpoint_PendingTeacher(t *testing.T) {
	h := newTestAuthHandler(newFakeUserRepo())

	w := postJSON(t, h.Register, `{"name":"T","email":"t@c.com","password":"secret1","role":"pending_teacher"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "pending approval")

	w = postJSON(t, h.Login, `{"email":"t@c.com","password":"secret1"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Your teacher account is pending approval by the HOD", resp.Error)
}

func TestLoginEndpoint_AfterApproval(t *testing.T) {
	repo := newFakeUserRepo()
	h := newTestAuthHandler(repo)

	w := postJSON(t, h.Register, `{"name":"T","email":"t@c.com","password":"secret1","role":"pending_teacher"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	pending, err := repo.GetUserByEmail(context.Background(), "t@c.com")
	require.NoError(t, err)
	_, err = repo.ApproveTeacher(context.Background(), pending.ID.Hex())
	require.NoError(t, err)

	w = postJSON(t, h.Login, `{"email":"t@c.com","password":"secret1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), string(model.RoleTeacher))
}

func TestLogoutEndpoint(t *testing.T) {
	h := newTestAuthHandler(newFakeUserRepo())

	w := postJSON(t, h.Logout, "")

	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, auth.CookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestLoginEndpoint_MissingFields(t *testing.T) {
	h := newTestAuthHandler(newFakeUserRepo())

	w := postJSON(t, h.Login, `{"email":"a@b.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "Email and password are required"))
}
