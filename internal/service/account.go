package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/grigorv/snackshop/internal/database"
	"github.com/grigorv/snackshop/internal/model"

	"golang.org/x/crypto/bcrypt"
)

type Account struct {
	logger   *slog.Logger
	users    UserStore
	sessions SessionRegistry
}

func NewAccount(logger *slog.Logger, users UserStore, sessions SessionRegistry) *Account {
	return &Account{
		logger:   logger.With("service", "account"),
		users:    users,
		sessions: sessions,
	}
}

// Login verifies the credential pair and binds the client key to the user.
// An unknown login and a wrong password both fail with model.ErrUnauthorized.
func (s *Account) Login(ctx context.Context, clientKey, login, password string) error {
	user, err := s.users.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewError("account", model.ErrUnauthorized)
		}

		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return model.NewError("account", model.ErrUnauthorized)
	}

	s.sessions.Establish(clientKey, user.ID)

	s.logger.Debug("session established", "userId", user.ID)

	return nil
}

// Logout drops the client's session. Always succeeds, logged in or not.
func (s *Account) Logout(clientKey string) {
	s.sessions.Revoke(clientKey)
}

// Register creates a user with the given credentials and logs it in. A taken
// login fails with model.ErrExists.
func (s *Account) Register(ctx context.Context, clientKey, login, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	id, err := s.users.Insert(ctx, database.InsertUserDTO{
		Login:        login,
		PasswordHash: string(hash),
	})
	if err != nil {
		return err
	}

	s.sessions.Establish(clientKey, id)

	s.logger.Debug("user registered", "userId", id)

	return nil
}

// Profile applies the given partial update to the session user's profile and
// returns the resulting profile fields. Fails with model.ErrUnauthorized when
// the client has no active session.
func (s *Account) Profile(ctx context.Context, clientKey string, updates database.UpdateProfileDTO) (model.Profile, error) {
	user, ok := s.sessions.Lookup(clientKey)
	if !ok {
		return model.Profile{}, model.NewError("account", model.ErrUnauthorized)
	}

	if err := s.users.UpdateProfile(ctx, user, updates); err != nil {
		return model.Profile{}, err
	}

	profile, err := s.users.GetProfile(ctx, user)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			// The session pointed at a user that no longer exists; nothing
			// sensible can be returned, so surface an internal failure.
			return model.Profile{}, errors.New("account: user row missing after profile update")
		}

		return model.Profile{}, err
	}

	return profile, nil
}
