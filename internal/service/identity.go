package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/kestrelworks/messagely/internal/domain"
)

// DefaultBcryptCost is the work factor used when the caller has no opinion.
// It is a tunable, not a secret.
const DefaultBcryptCost = 12

// IdentityService handles user registration, credential checks, and profile
// lookups. It holds no state of its own between calls.
type IdentityService struct {
	users      domain.UserRepository
	bcryptCost int
}

// NewIdentityService creates a new IdentityService over the given repository.
func NewIdentityService(users domain.UserRepository, bcryptCost int) *IdentityService {
	return &IdentityService{
		users:      users,
		bcryptCost: bcryptCost,
	}
}

// Register creates a new user account after validating inputs. The returned
// user carries the stored hash and the timestamps the store recorded.
func (s *IdentityService) Register(ctx context.Context, in domain.RegisterInput) (*domain.User, error) {
	if in.Username == "" || in.Password == "" || in.FirstName == "" || in.LastName == "" || in.Phone == "" {
		return nil, fmt.Errorf("%w: please complete all required fields", domain.ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username:     in.Username,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Phone:        in.Phone,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Authenticate reports whether the username/password pair is valid. An
// unknown username and a wrong password both come back as plain false so the
// caller cannot tell which usernames exist. On success it bumps the user's
// last_login_at before returning.
func (s *IdentityService) Authenticate(ctx context.Context, username, password string) (bool, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return false, nil
	}

	if err := s.users.TouchLastLogin(ctx, username); err != nil {
		return false, fmt.Errorf("update last login: %w", err)
	}
	return true, nil
}

// Get returns one user's public profile, or domain.ErrNotFound.
func (s *IdentityService) Get(ctx context.Context, username string) (*domain.Profile, error) {
	return s.users.Profile(ctx, username)
}

// All returns every user's public profile, ordered by username.
func (s *IdentityService) All(ctx context.Context) ([]domain.Profile, error) {
	return s.users.All(ctx)
}
