package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/study-tracker/internal/domain"
	"github.com/spec-kit/study-tracker/pkg/util/errorutil"
)

type stubProgress struct {
	track *domain.Progress
	stats domain.ProgressStatistics
}

func (s *stubProgress) Create(_ context.Context, userID, title string, totalItems int) (*domain.Progress, error) {
	s.track = &domain.Progress{ID: "p1", UserID: userID, Title: title, TotalItems: totalItems}
	return s.track, nil
}

func (s *stubProgress) Increase(_ context.Context, userID, progressID string) (*domain.Progress, error) {
	if s.track == nil || s.track.ID != progressID {
		return nil, errorutil.NewNotFound("Progress")
	}
	if !s.track.OwnedBy(userID) {
		return nil, errorutil.NewUnauthorized(errorutil.UnauthorizedMessage)
	}
	if !s.track.Completed() {
		s.track.CompletedItems++
	}
	return s.track, nil
}

func (s *stubProgress) Statistics(_ context.Context, userID string) (domain.ProgressStatistics, error) {
	s.stats.UserID = userID
	return s.stats, nil
}

func TestProgress_CreateAndIncrease(t *testing.T) {
	t.Parallel()

	stub := &stubProgress{}
	srv := newTestServer(t)
	srv.register(t, NewProgressHandler(stub, srv.valid, srv.protect).Routes()...)
	owner := srv.token(t, "u1")

	resp := srv.do(t, http.MethodPost, "/u1/progress", owner, map[string]any{"title": "Algebra", "totalItems": 0})
	assert.Equal(t, http.StatusBadRequest, resp.status)

	resp = srv.do(t, http.MethodPost, "/u1/progress", owner, map[string]any{"title": "Algebra", "totalItems": 1})
	assert.Equal(t, http.StatusCreated, resp.status)
	assert.Equal(t, "p1", resp.body["idProgress"])

	resp = srv.do(t, http.MethodPatch, "/progress/p1/increase", owner, nil)
	assert.Equal(t, http.StatusOK, resp.status)
	assert.Equal(t, float64(1), resp.body["completedItems"])

	resp = srv.do(t, http.MethodPatch, "/progress/p1/increase", owner, nil)
	assert.Equal(t, float64(1), resp.body["completedItems"])

	resp = srv.do(t, http.MethodPatch, "/progress/p1/increase", srv.token(t, "u2"), nil)
	assert.Equal(t, http.StatusUnauthorized, resp.status)
	assert.Equal(t, "Unauthorized access", resp.body["error"])

	resp = srv.do(t, http.MethodPatch, "/progress/missing/increase", owner, nil)
	assert.Equal(t, http.StatusNotFound, resp.status)
}

func TestProgress_Statistics(t *testing.T) {
	t.Parallel()

	stub := &stubProgress{stats: domain.ProgressStatistics{Tracks: 2, TotalItems: 3, CompletedItems: 1}}
	srv := newTestServer(t)
	srv.register(t, NewProgressHandler(stub, srv.valid, srv.protect).Routes()...)

	resp := srv.do(t, http.MethodGet, "/u1/progress/statistics", srv.token(t, "u1"), nil)

	assert.Equal(t, http.StatusOK, resp.status)
	assert.Equal(t, map[string]any{
		"idUser":         "u1",
		"tracks":         float64(2),
		"totalItems":     float64(3),
		"completedItems": float64(1),
		"completionRate": 33.33,
	}, resp.body)
}
