package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/study-tracker/internal/domain"
)

type fakeUsers struct {
	mu      sync.Mutex
	byID    map[string]domain.User
	failGet error
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: map[string]domain.User{}}
}

func (f *fakeUsers) Create(_ context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	f.byID[user.ID] = *user
	return nil
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &u, nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failGet != nil {
		return nil, f.failGet
	}
	for _, u := range f.byID {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type fakeTokens struct {
	issued []string
}

func (f *fakeTokens) Issue(userID string) (string, time.Time, error) {
	if userID == "" {
		return "", time.Time{}, errors.New("empty subject")
	}
	f.issued = append(f.issued, userID)
	return "token-for-" + userID, time.Unix(1700000000, 0), nil
}

type fakeDirectories struct {
	mu      sync.Mutex
	byID    map[string]domain.Directory
	updates int
}

func newFakeDirectories(dirs ...domain.Directory) *fakeDirectories {
	f := &fakeDirectories{byID: map[string]domain.Directory{}}
	for _, d := range dirs {
		f.byID[d.ID] = d
	}
	return f
}

func (f *fakeDirectories) Create(_ context.Context, dir *domain.Directory) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	dir.ID = uuid.NewString()
	dir.LastAccessedAt = time.Now()
	f.byID[dir.ID] = *dir
	return nil
}

func (f *fakeDirectories) Update(_ context.Context, dir *domain.Directory) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[dir.ID]; !ok {
		return pgx.ErrNoRows
	}
	f.updates++
	f.byID[dir.ID] = *dir
	return nil
}

func (f *fakeDirectories) GetByID(_ context.Context, id string) (*domain.Directory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &d, nil
}

func (f *fakeDirectories) ListRecentByUser(_ context.Context, userID string, limit int) ([]domain.Directory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Directory, 0)
	for _, d := range f.byID {
		if d.UserID == userID && d.Active {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LastAccessedAt.After(out[j].LastAccessedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeSettings struct {
	mu     sync.Mutex
	byUser map[string]domain.Settings
}

func newFakeSettings() *fakeSettings {
	return &fakeSettings{byUser: map[string]domain.Settings{}}
}

func (f *fakeSettings) Create(_ context.Context, s *domain.Settings) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byUser[s.UserID] = *s
	return nil
}

func (f *fakeSettings) Update(_ context.Context, s *domain.Settings) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byUser[s.UserID]; !ok {
		return pgx.ErrNoRows
	}
	f.byUser[s.UserID] = *s
	return nil
}

func (f *fakeSettings) GetByUser(_ context.Context, userID string) (*domain.Settings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.byUser[userID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &s, nil
}

type fakeProgress struct {
	mu   sync.Mutex
	byID map[string]domain.Progress
}

func newFakeProgress() *fakeProgress {
	return &fakeProgress{byID: map[string]domain.Progress{}}
}

func (f *fakeProgress) Create(_ context.Context, p *domain.Progress) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p.ID = uuid.NewString()
	f.byID[p.ID] = *p
	return nil
}

func (f *fakeProgress) IncrementCompleted(_ context.Context, id, userID string) (*domain.Progress, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.byID[id]
	if !ok || p.UserID != userID || p.CompletedItems >= p.TotalItems {
		return nil, pgx.ErrNoRows
	}
	p.CompletedItems++
	f.byID[id] = p
	return &p, nil
}

func (f *fakeProgress) GetByID(_ context.Context, id string) (*domain.Progress, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &p, nil
}

func (f *fakeProgress) StatisticsByUser(_ context.Context, userID string) (domain.ProgressStatistics, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stats := domain.ProgressStatistics{UserID: userID}
	for _, p := range f.byID {
		if p.UserID != userID {
			continue
		}
		stats.Tracks++
		stats.TotalItems += p.TotalItems
		stats.CompletedItems += p.CompletedItems
	}
	return stats, nil
}

type fakeJourneys struct {
	mu   sync.Mutex
	seq  int
	byID map[string]domain.Journey
}

func newFakeJourneys() *fakeJourneys {
	return &fakeJourneys{byID: map[string]domain.Journey{}}
}

func (f *fakeJourneys) Create(_ context.Context, j *domain.Journey) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	j.ID = uuid.NewString()
	j.CreatedAt = time.Unix(int64(f.seq), 0)
	f.byID[j.ID] = *j
	return nil
}

func (f *fakeJourneys) Rename(_ context.Context, j *domain.Journey) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[j.ID]; !ok {
		return pgx.ErrNoRows
	}
	f.byID[j.ID] = *j
	return nil
}

func (f *fakeJourneys) GetByID(_ context.Context, id string) (*domain.Journey, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &j, nil
}

func (f *fakeJourneys) ListByDirectory(_ context.Context, directoryID string) ([]domain.Journey, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Journey, 0)
	for _, j := range f.byID {
		if j.DirectoryID == directoryID {
			out = append(out, j)
		}
	}
	sort.Slice(out, func(i, k int) bool { return out[i].CreatedAt.Before(out[k].CreatedAt) })
	return out, nil
}

func (f *fakeJourneys) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.byID, id)
	return nil
}
