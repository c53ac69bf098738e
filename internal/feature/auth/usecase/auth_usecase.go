package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"cafe_backend/internal/feature/auth/domain/entity"
	"cafe_backend/internal/platform/hash"
)

const (
	// sessionTTL is how long an established session stays valid.
	sessionTTL = 7 * 24 * time.Hour
)

// dummyHash is verified against when the email is unknown so that the
// login path always pays the KDF cost (timing-attack mitigation).
var dummyHash = func() string {
	h, _ := hash.Hash("timing-equalizer")
	return h
}()

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user to storage.
	// Returns ErrEmailAlreadyExists if a user with the same email exists.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves the user matching the given email address.
	// Returns ErrUserNotFound if no such user exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves the user matching the given ID.
	// Returns ErrUserNotFound if no such user exists.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// Count returns the total number of registered users.
	Count(ctx context.Context) (int64, error)
}

// authUsecase implements the sign-up, login, logout and session
// resolution flows.
type authUsecase struct {
	users    UserRepository
	sessions SessionRepository
}

// NewAuthUsecase creates a new instance of authUsecase.
func NewAuthUsecase(users UserRepository, sessions SessionRepository) *authUsecase {
	return &authUsecase{users: users, sessions: sessions}
}

// SignUp registers a new user and establishes a session for them.
// The duplicate-email check happens here, before the insert, so the
// handler can surface a user-facing notice; the store's unique index is
// only a backstop. The first user ever registered becomes the admin.
func (u *authUsecase) SignUp(ctx context.Context, name, email, password string, meta entity.SessionMeta) (*entity.User, *entity.Session, error) {
	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return nil, nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, nil, fmt.Errorf("lookup existing email: %w", err)
	}

	hashed, err := hash.Hash(password)
	if err != nil {
		return nil, nil, fmt.Errorf("hash password: %w", err)
	}

	role := entity.RoleMember
	count, err := u.users.Count(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("count users: %w", err)
	}
	if count == 0 {
		role = entity.RoleAdmin
	}

	user := &entity.User{Name: name, Email: email, Password: hashed, Role: role}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	session, err := u.establish(ctx, user.ID, meta)
	if err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

// Login authenticates a user by email and password and establishes a
// session on success. Unknown email and wrong password are reported as
// distinct errors so the handlers can flash the matching notice.
func (u *authUsecase) Login(ctx context.Context, email, password string, meta entity.SessionMeta) (*entity.User, *entity.Session, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		// Burn the same KDF time as the happy path.
		hash.Verify(password, dummyHash)
		if errors.Is(err, ErrUserNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, fmt.Errorf("lookup user: %w", err)
	}

	if !hash.Verify(password, user.Password) {
		return nil, nil, ErrInvalidCredentials
	}

	session, err := u.establish(ctx, user.ID, meta)
	if err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

// Logout revokes the given session. Revoking an already-gone session is
// not an error for the caller's purposes, but the sentinel is passed
// through so it can be logged.
func (u *authUsecase) Logout(ctx context.Context, sessionID string) error {
	return u.sessions.Revoke(ctx, sessionID)
}

// Resolve maps a session id to the live user it belongs to.
// Any failure (missing session, expired, revoked, deleted user) comes
// back as a sentinel error; the caller downgrades to anonymous.
func (u *authUsecase) Resolve(ctx context.Context, sessionID string) (*entity.User, error) {
	session, err := u.sessions.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.IsValid() {
		return nil, ErrSessionInvalid
	}
	return u.users.FindByID(ctx, session.UserID)
}

// establish creates and persists a fresh session for the user.
func (u *authUsecase) establish(ctx context.Context, userID uint, meta entity.SessionMeta) (*entity.Session, error) {
	now := time.Now()
	session := &entity.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		UserAgent: meta.UserAgent,
		IPAddress: meta.IPAddress,
		CreatedAt: now,
		ExpiresAt: now.Add(sessionTTL),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	return session, nil
}
