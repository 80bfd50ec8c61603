package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/study-tracker/internal/auth"
	"github.com/spec-kit/study-tracker/internal/domain"
	"github.com/spec-kit/study-tracker/internal/events"
	"github.com/spec-kit/study-tracker/internal/repository"
	"github.com/spec-kit/study-tracker/pkg/util/errorutil"
)

// TokenIssuer signs bearer tokens for a user id.
type TokenIssuer interface {
	Issue(userID string) (string, time.Time, error)
}

// LoginLimiter counts failed logins per email.
type LoginLimiter interface {
	Blocked(ctx context.Context, key string) (bool, error)
	RecordFailure(ctx context.Context, key string) error
	Reset(ctx context.Context, key string) error
}

// RegisterInput carries the fields needed to create an account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// UserService coordinates registration, login and profile lookup.
type UserService struct {
	users      repository.UserRepository
	tokens     TokenIssuer
	bcryptCost int
	events     publisher
	limiter    LoginLimiter
	logger     *zap.Logger
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository, tokens TokenIssuer, bcryptCost int) *UserService {
	return &UserService{users: users, tokens: tokens, bcryptCost: bcryptCost, logger: zap.NewNop()}
}

// WithLoginLimiter rejects logins for an email once limiter reports it
// blocked. Limiter failures are logged and do not block logins.
func (s *UserService) WithLoginLimiter(limiter LoginLimiter, logger *zap.Logger) *UserService {
	s.limiter = limiter
	if logger != nil {
		s.logger = logger
	}
	return s
}

// WithEvents publishes EventUserRegistered to dispatcher after each signup.
func (s *UserService) WithEvents(dispatcher events.Dispatcher, logger *zap.Logger) *UserService {
	s.events = newPublisher(dispatcher, logger)
	return s
}

// Register creates a new account and issues its first token.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*domain.User, string, time.Time, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, "", time.Time{}, errorutil.NewConflict("Email already registered")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, "", time.Time{}, err
	}

	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	user := &domain.User{
		Username:     strings.TrimSpace(in.Username),
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if isUniqueViolation(err) {
			return nil, "", time.Time{}, errorutil.NewConflict("Email already registered")
		}
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	s.events.publish(ctx, events.EventUserRegistered, user.ID, events.UserRegisteredPayload{Username: user.Username})
	return user, token, exp, nil
}

// Login authenticates a user by email and password.
func (s *UserService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if s.throttled(ctx, email) {
		return nil, "", time.Time{}, errorutil.NewTooManyRequests("Too many login attempts")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.recordFailure(ctx, email)
			return nil, "", time.Time{}, errorutil.NewUnauthorized("Invalid credentials")
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		s.recordFailure(ctx, email)
		return nil, "", time.Time{}, errorutil.NewUnauthorized("Invalid credentials")
	}
	token, exp, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, email); err != nil {
			s.logger.Warn("reset login failures", zap.Error(err))
		}
	}
	return user, token, exp, nil
}

func (s *UserService) throttled(ctx context.Context, email string) bool {
	if s.limiter == nil {
		return false
	}
	blocked, err := s.limiter.Blocked(ctx, email)
	if err != nil {
		s.logger.Warn("login limiter unavailable", zap.Error(err))
		return false
	}
	return blocked
}

func (s *UserService) recordFailure(ctx context.Context, email string) {
	if s.limiter == nil {
		return
	}
	if err := s.limiter.RecordFailure(ctx, email); err != nil {
		s.logger.Warn("record login failure", zap.Error(err))
	}
}

// Get returns the profile of the given user.
func (s *UserService) Get(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, errorutil.MapNotFound(err, "User")
	}
	return user, nil
}
