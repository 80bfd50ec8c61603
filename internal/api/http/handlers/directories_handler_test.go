package handlers

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/study-tracker/internal/domain"
	"github.com/spec-kit/study-tracker/pkg/util/errorutil"
)

type directoryCall struct {
	op          string
	userID      string
	directoryID string
	name        string
}

type spyDirectories struct {
	mu    sync.Mutex
	calls []directoryCall
	err   error
	list  []domain.Directory
}

func (s *spyDirectories) record(call directoryCall) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, call)
}

func (s *spyDirectories) Calls() []directoryCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]directoryCall(nil), s.calls...)
}

func (s *spyDirectories) Create(_ context.Context, userID, name string) (*domain.Directory, error) {
	s.record(directoryCall{op: "create", userID: userID, name: name})
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Directory{ID: "dir-1", UserID: userID, Name: name, Active: true}, nil
}

func (s *spyDirectories) Rename(_ context.Context, userID, directoryID, name string) (*domain.Directory, error) {
	s.record(directoryCall{op: "rename", userID: userID, directoryID: directoryID, name: name})
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Directory{ID: directoryID, UserID: userID, Name: name, Active: true}, nil
}

func (s *spyDirectories) Deactivate(_ context.Context, userID, directoryID string) (*domain.Directory, error) {
	s.record(directoryCall{op: "deactivate", userID: userID, directoryID: directoryID})
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Directory{ID: directoryID, UserID: userID, Active: false}, nil
}

func (s *spyDirectories) TouchAccess(_ context.Context, userID, directoryID string) (*domain.Directory, error) {
	s.record(directoryCall{op: "touch", userID: userID, directoryID: directoryID})
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Directory{ID: directoryID, UserID: userID, Active: true, LastAccessedAt: time.Now()}, nil
}

func (s *spyDirectories) ListRecent(_ context.Context, userID string) ([]domain.Directory, error) {
	s.record(directoryCall{op: "list", userID: userID})
	if s.err != nil {
		return nil, s.err
	}
	return s.list, nil
}

func newDirectoryServer(t *testing.T, spy *spyDirectories) *testServer {
	t.Helper()
	srv := newTestServer(t)
	srv.register(t, NewDirectoriesHandler(spy, srv.valid, srv.protect).Routes()...)
	return srv
}

func TestDirectories_CreateReturns201WithID(t *testing.T) {
	t.Parallel()

	spy := &spyDirectories{}
	srv := newDirectoryServer(t, spy)

	resp := srv.do(t, http.MethodPost, "/u1/directory", srv.token(t, "u1"), map[string]string{"directoryName": "Projetos"})

	assert.Equal(t, http.StatusCreated, resp.status)
	assert.Equal(t, "dir-1", resp.body["idDirectory"])
	assert.Equal(t, "Projetos", resp.body["directoryName"])
	assert.Equal(t, []directoryCall{{op: "create", userID: "u1", name: "Projetos"}}, spy.Calls())
}

func TestDirectories_MissingTokenNeverReachesUseCase(t *testing.T) {
	t.Parallel()

	spy := &spyDirectories{}
	srv := newDirectoryServer(t, spy)

	paths := []struct{ method, path string }{
		{http.MethodPost, "/u1/directory"},
		{http.MethodGet, "/u1/directory/recents"},
		{http.MethodPatch, "/directory/d1/rename"},
		{http.MethodPatch, "/directory/d1/deactivate"},
		{http.MethodPatch, "/directory/d1/updateLastAccess"},
	}
	for _, p := range paths {
		resp := srv.do(t, p.method, p.path, "", map[string]string{"newDirectoryName": "x", "directoryName": "x"})
		assert.Equal(t, http.StatusUnauthorized, resp.status, p.path)
		assert.Equal(t, map[string]any{"error": "Unauthorized access"}, resp.body, p.path)
	}
	assert.Empty(t, spy.Calls())
}

func TestDirectories_RenameRejectsUnsafeName(t *testing.T) {
	t.Parallel()

	spy := &spyDirectories{}
	srv := newDirectoryServer(t, spy)
	token := srv.token(t, "u1")

	for _, name := range []string{"<script>alert(1)</script>", "x'; DROP TABLE directories; --", "   "} {
		resp := srv.do(t, http.MethodPatch, "/directory/d1/rename", token, map[string]string{"newDirectoryName": name})
		assert.Equal(t, http.StatusBadRequest, resp.status, name)
		assert.Equal(t, "The new directory name is invalid or unsafe.", resp.body["error"], name)
	}

	resp := srv.do(t, http.MethodPatch, "/directory/d1/rename", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.status)

	assert.Empty(t, spy.Calls())
}

func TestDirectories_RenamePassesTokenSubject(t *testing.T) {
	t.Parallel()

	spy := &spyDirectories{}
	srv := newDirectoryServer(t, spy)

	resp := srv.do(t, http.MethodPatch, "/directory/d1/rename", srv.token(t, "user-77"), map[string]string{"newDirectoryName": "novoDiretório123"})

	assert.Equal(t, http.StatusOK, resp.status)
	assert.Equal(t, map[string]any{"idDirectory": "d1", "newDirectoryName": "novoDiretório123"}, resp.body)
	assert.Equal(t, []directoryCall{{op: "rename", userID: "user-77", directoryID: "d1", name: "novoDiretório123"}}, spy.Calls())
}

func TestDirectories_DeactivateAndTouch(t *testing.T) {
	t.Parallel()

	spy := &spyDirectories{}
	srv := newDirectoryServer(t, spy)
	token := srv.token(t, "u1")

	resp := srv.do(t, http.MethodPatch, "/directory/d1/deactivate", token, nil)
	assert.Equal(t, http.StatusOK, resp.status)
	assert.Equal(t, map[string]any{"idDirectory": "d1", "status": false}, resp.body)

	resp = srv.do(t, http.MethodPatch, "/directory/d1/updateLastAccess", token, nil)
	assert.Equal(t, http.StatusOK, resp.status)
	assert.Equal(t, map[string]any{"idDirectory": "d1"}, resp.body)
}

func TestDirectories_ListRecent(t *testing.T) {
	t.Parallel()

	accessed := time.Date(2025, 5, 20, 14, 30, 0, 0, time.UTC)
	spy := &spyDirectories{list: []domain.Directory{{ID: "d9", Name: "ProjetosRecentes", LastAccessedAt: accessed}}}
	srv := newDirectoryServer(t, spy)

	resp := srv.do(t, http.MethodGet, "/u1/directory/recents", srv.token(t, "u1"), nil)
	assert.Equal(t, http.StatusOK, resp.status)
	dirs, ok := resp.body["directories"].([]any)
	if assert.True(t, ok) && assert.Len(t, dirs, 1) {
		first := dirs[0].(map[string]any)
		assert.Equal(t, "d9", first["id"])
		assert.Equal(t, "ProjetosRecentes", first["name"])
		assert.Equal(t, "2025-05-20T14:30:00Z", first["lastAccessedAt"])
	}

	empty := newDirectoryServer(t, &spyDirectories{})
	resp = empty.do(t, http.MethodGet, "/u1/directory/recents", empty.token(t, "u1"), nil)
	assert.Equal(t, http.StatusOK, resp.status)
	assert.Equal(t, []any{}, resp.body["directories"])
}

func TestDirectories_OwnerMismatch(t *testing.T) {
	t.Parallel()

	spy := &spyDirectories{}
	srv := newDirectoryServer(t, spy)

	resp := srv.do(t, http.MethodGet, "/u2/directory/recents", srv.token(t, "u1"), nil)
	assert.Equal(t, http.StatusUnauthorized, resp.status)
	assert.Equal(t, "Unauthorized access", resp.body["error"])
	assert.Empty(t, spy.Calls())
}

func TestDirectories_ErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"use case unauthorized", errorutil.NewUnauthorized("Directory belongs to another user"), http.StatusUnauthorized, "Directory belongs to another user"},
		{"not found", errorutil.NewNotFound("Directory"), http.StatusNotFound, "Directory not found"},
		{"unexpected", errors.New("pq: connection refused at 10.0.0.3"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := newDirectoryServer(t, &spyDirectories{err: tt.err})
			resp := srv.do(t, http.MethodPatch, "/directory/d1/deactivate", srv.token(t, "u1"), nil)

			assert.Equal(t, tt.wantStatus, resp.status)
			assert.Equal(t, map[string]any{"error": tt.wantMsg}, resp.body)
			assert.NotContains(t, resp.raw, "10.0.0.3")
		})
	}
}
