package usecase_test

import (
	"testing"

	"hospital-dashboard/internal/delivery/dto"
	"hospital-dashboard/internal/domain/entity"
	"hospital-dashboard/internal/infrastructure/session"
	"hospital-dashboard/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_InfersRole(t *testing.T) {
	cases := map[string]string{
		"drSmith":      entity.RoleDoctor,
		"Dr.House":     entity.RoleDoctor,
		"dr_grey":      entity.RoleDoctor,
		"house.doctor": entity.RoleDoctor,
		"DoctorWho":    entity.RoleDoctor,
		"admin":        entity.RoleAdmin,
		"nurse.joy":    entity.RoleAdmin,
		"drew":         entity.RoleAdmin,
		"drake":        entity.RoleAdmin,
		"dr":           entity.RoleAdmin,
	}
	for username, role := range cases {
		f := newFixture(t)
		resp, err := f.auth.Login(ctx(), &dto.LoginRequest{Username: username, Password: "x"})
		require.NoError(t, err, username)
		assert.Equal(t, role, resp.User.Role, username)
	}
}

func TestLogin_PersistsSession(t *testing.T) {
	f := newFixture(t)
	assert.False(t, f.auth.IsAuthenticated(ctx()))
	assert.Nil(t, f.auth.GetCurrentUser(ctx()))

	resp, err := f.auth.Login(ctx(), &dto.LoginRequest{Username: "admin", Password: "x"})
	require.NoError(t, err)

	assert.True(t, f.auth.IsAuthenticated(ctx()))
	assert.Equal(t, resp.Token, f.session.Token(ctx()))
	user := f.auth.GetCurrentUser(ctx())
	require.NotNil(t, user)
	assert.Equal(t, "admin", user.Username)
	assert.Equal(t, "admin@hospital.com", user.Email)

	claims, err := f.jwt.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
}

func TestLogin_EmptyCredentials(t *testing.T) {
	f := newFixture(t)

	_, err := f.auth.Login(ctx(), &dto.LoginRequest{Username: "  ", Password: "x"})
	assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
	_, err = f.auth.Login(ctx(), &dto.LoginRequest{Username: "admin"})
	assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
	assert.False(t, f.auth.IsAuthenticated(ctx()))
}

func TestLogout_Idempotent(t *testing.T) {
	f := newFixture(t)
	_, err := f.auth.Login(ctx(), &dto.LoginRequest{Username: "admin", Password: "x"})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		require.NoError(t, f.auth.Logout(ctx()))
		assert.False(t, f.auth.IsAuthenticated(ctx()))
		assert.Nil(t, f.auth.GetCurrentUser(ctx()))
		assert.Empty(t, f.session.Token(ctx()))
	}
}

func TestRegister_ExplicitRoleWins(t *testing.T) {
	f := newFixture(t)

	resp, err := f.auth.Register(ctx(), &dto.RegisterRequest{
		Username: "doctor.who",
		Password: "x",
		Email:    "who@tardis.org",
		Name:     "The Doctor",
		Role:     entity.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, resp.User.Role)
	assert.Equal(t, "who@tardis.org", resp.User.Email)
	assert.True(t, f.auth.IsAuthenticated(ctx()))
}

func TestAuthenticate_DoesNotPersist(t *testing.T) {
	f := newFixture(t)

	resp, err := f.auth.Authenticate(ctx(), &dto.LoginRequest{Username: "drHouse", Password: "x"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.False(t, f.auth.IsAuthenticated(ctx()))
}

func TestGetProfile(t *testing.T) {
	f := newFixture(t)

	_, err := f.auth.GetProfile(ctx())
	assert.ErrorIs(t, err, usecase.ErrNotAuthenticated)
	assert.ErrorIs(t, f.auth.ChangePassword(ctx(), &dto.ChangePasswordRequest{CurrentPassword: "a", NewPassword: "bbbbbb"}), usecase.ErrNotAuthenticated)

	_, err = f.auth.Login(ctx(), &dto.LoginRequest{Username: "drSmith", Password: "x"})
	require.NoError(t, err)

	profile, err := f.auth.GetProfile(ctx())
	require.NoError(t, err)
	assert.Equal(t, "drSmith", profile.Username)
	assert.NoError(t, f.auth.ChangePassword(ctx(), &dto.ChangePasswordRequest{CurrentPassword: "a", NewPassword: "bbbbbb"}))
}

func TestGetCurrentUser_CorruptSession(t *testing.T) {
	storage := session.NewMemoryStorage()
	require.NoError(t, storage.Set(ctx(), session.UserKey, "{not json"))
	require.NoError(t, storage.Set(ctx(), session.LegacyTokenKey, "legacy"))
	sess := session.New(storage, quietLogger())

	assert.Nil(t, sess.User(ctx()))
	assert.True(t, sess.IsAuthenticated(ctx()))
}
