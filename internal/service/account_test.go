package service

import (
	"context"
	"testing"

	"github.com/grigorv/snackshop/internal/database"
	"github.com/grigorv/snackshop/internal/model"
	"github.com/grigorv/snackshop/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const _clientKey = "10.0.0.1"

func newAccountService() (*Account, *fakeUserStore, *session.Registry) {
	users := newFakeUserStore()
	sessions := session.NewRegistry()
	return NewAccount(testLogger(), users, sessions), users, sessions
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAccount_Login(t *testing.T) {
	svc, users, sessions := newAccountService()
	ctx := context.Background()

	users.users["alice"] = model.User{ID: 7, Login: "alice", PasswordHash: mustHash(t, "pw1")}

	err := svc.Login(ctx, _clientKey, "alice", "pw1")
	require.NoError(t, err)

	user, ok := sessions.Lookup(_clientKey)
	assert.True(t, ok)
	assert.EqualValues(t, 7, user)
}

func TestAccount_Login_WrongPassword(t *testing.T) {
	svc, users, sessions := newAccountService()
	ctx := context.Background()

	users.users["alice"] = model.User{ID: 7, Login: "alice", PasswordHash: mustHash(t, "pw1")}

	err := svc.Login(ctx, _clientKey, "alice", "wrong")
	assert.ErrorIs(t, err, model.ErrUnauthorized)

	_, ok := sessions.Lookup(_clientKey)
	assert.False(t, ok)
}

func TestAccount_Login_UnknownLogin(t *testing.T) {
	svc, _, _ := newAccountService()

	err := svc.Login(context.Background(), _clientKey, "nobody", "pw1")
	assert.ErrorIs(t, err, model.ErrUnauthorized)
}

func TestAccount_RegisterThenLogin(t *testing.T) {
	svc, _, sessions := newAccountService()
	ctx := context.Background()

	err := svc.Register(ctx, _clientKey, "alice", "pw1")
	require.NoError(t, err)

	// registration logs the client in
	_, ok := sessions.Lookup(_clientKey)
	assert.True(t, ok)

	// and the stored credentials work for a later login
	sessions.Revoke(_clientKey)
	err = svc.Login(ctx, _clientKey, "alice", "pw1")
	require.NoError(t, err)
}

func TestAccount_Register_DuplicateLogin(t *testing.T) {
	svc, _, _ := newAccountService()
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, _clientKey, "alice", "pw1"))

	err := svc.Register(ctx, "10.0.0.2", "alice", "pw2")
	assert.ErrorIs(t, err, model.ErrExists)
}

func TestAccount_Register_HashesPassword(t *testing.T) {
	svc, users, _ := newAccountService()

	require.NoError(t, svc.Register(context.Background(), _clientKey, "alice", "pw1"))

	stored := users.users["alice"].PasswordHash
	assert.NotEqual(t, "pw1", stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte("pw1")))
}

func TestAccount_Logout(t *testing.T) {
	svc, _, sessions := newAccountService()

	sessions.Establish(_clientKey, 7)
	svc.Logout(_clientKey)

	_, ok := sessions.Lookup(_clientKey)
	assert.False(t, ok)

	// logging out an anonymous client is fine too
	svc.Logout("10.9.9.9")
}

func TestAccount_Profile_RequiresSession(t *testing.T) {
	svc, _, _ := newAccountService()

	_, err := svc.Profile(context.Background(), _clientKey, database.UpdateProfileDTO{})
	assert.ErrorIs(t, err, model.ErrUnauthorized)
}

func TestAccount_Profile_PartialUpdate(t *testing.T) {
	svc, users, sessions := newAccountService()
	ctx := context.Background()

	users.users["alice"] = model.User{ID: 7, Login: "alice"}
	sessions.Establish(_clientKey, 7)

	first := "Alice"
	profile, err := svc.Profile(ctx, _clientKey, database.UpdateProfileDTO{FirstName: &first})
	require.NoError(t, err)
	require.NotNil(t, profile.FirstName)
	assert.Equal(t, "Alice", *profile.FirstName)
	assert.Nil(t, profile.LastName)

	// a later update to another field keeps the first one
	email := "alice@example.com"
	profile, err = svc.Profile(ctx, _clientKey, database.UpdateProfileDTO{Email: &email})
	require.NoError(t, err)
	require.NotNil(t, profile.FirstName)
	assert.Equal(t, "Alice", *profile.FirstName)
	require.NotNil(t, profile.Email)
	assert.Equal(t, "alice@example.com", *profile.Email)
}

func TestAccount_Profile_UserRowVanished(t *testing.T) {
	svc, users, sessions := newAccountService()

	users.users["alice"] = model.User{ID: 7, Login: "alice"}
	sessions.Establish(_clientKey, 7)
	users.getProfileErr = model.NewError("user", model.ErrNotFound)

	_, err := svc.Profile(context.Background(), _clientKey, database.UpdateProfileDTO{})
	require.Error(t, err)

	// the failure is internal, not a not-found the router would map to 404
	assert.NotErrorIs(t, err, model.ErrNotFound)
	assert.NotErrorIs(t, err, model.ErrUnauthorized)
}
