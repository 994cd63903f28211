package services

import (
	"testing"

	"jobboard_backend/internal/appErrors"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) (AuthService, *testRepos) {
	t.Helper()
	repos := newTestRepos(setupTestDB(t))
	return NewAuthService(repos.users, repos.refreshTokens), repos
}

func TestRegister(t *testing.T) {
	svc, _ := newAuthService(t)

	user, err := svc.Register(&dto.RegisterRequest{
		Name:     "Aigerim",
		Email:    "aigerim@example.com",
		Password: "secret123",
		Role:     models.UserRoleCandidate,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, models.UserRoleCandidate, user.Role)
	assert.Equal(t, "aigerim@example.com", user.Email)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	req := &dto.RegisterRequest{
		Name:     "Aigerim",
		Email:    "dup@example.com",
		Password: "secret123",
		Role:     models.UserRoleCandidate,
	}
	_, err := svc.Register(req)
	require.NoError(t, err)

	_, err = svc.Register(req)
	assert.ErrorIs(t, err, appErrors.ErrEmailAlreadyExists)
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register(&dto.RegisterRequest{
		Name:     "Mallory",
		Email:    "mallory@example.com",
		Password: "secret123",
		Role:     models.UserRoleAdmin,
	})
	assert.ErrorIs(t, err, appErrors.ErrInvalidUserRole)
}

func TestRegisterWeakPassword(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register(&dto.RegisterRequest{
		Name:     "Short",
		Email:    "short@example.com",
		Password: "123",
		Role:     models.UserRoleCandidate,
	})
	assert.ErrorIs(t, err, appErrors.ErrWeakPassword)
}

func TestLogin(t *testing.T) {
	svc, repos := newAuthService(t)
	user := createTestUser(t, repos, "login@example.com", models.UserRoleEmployer)

	resp, err := svc.Login(&dto.LoginRequest{Email: user.Email, Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, user.ID, resp.User.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, repos := newAuthService(t)
	user := createTestUser(t, repos, "wrongpass@example.com", models.UserRoleCandidate)

	_, err := svc.Login(&dto.LoginRequest{Email: user.Email, Password: "not-the-password"})
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Login(&dto.LoginRequest{Email: "nobody@example.com", Password: "password123"})
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)
}

func TestRefreshTokenRotation(t *testing.T) {
	svc, repos := newAuthService(t)
	user := createTestUser(t, repos, "rotate@example.com", models.UserRoleCandidate)

	login, err := svc.Login(&dto.LoginRequest{Email: user.Email, Password: "password123"})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)

	// Старый refresh token отозван ротацией
	_, err = svc.RefreshToken(login.RefreshToken)
	assert.ErrorIs(t, err, appErrors.ErrInvalidToken)

	// Новый продолжает работать
	_, err = svc.RefreshToken(refreshed.RefreshToken)
	assert.NoError(t, err)
}

func TestRefreshTokenUnknown(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.RefreshToken("no-such-token")
	assert.ErrorIs(t, err, appErrors.ErrInvalidToken)
}

func TestLogout(t *testing.T) {
	svc, repos := newAuthService(t)
	user := createTestUser(t, repos, "logout@example.com", models.UserRoleCandidate)

	login, err := svc.Login(&dto.LoginRequest{Email: user.Email, Password: "password123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(login.RefreshToken))

	_, err = svc.RefreshToken(login.RefreshToken)
	assert.ErrorIs(t, err, appErrors.ErrInvalidToken)
}

func TestCurrentUser(t *testing.T) {
	svc, repos := newAuthService(t)
	user := createTestUser(t, repos, "me@example.com", models.UserRoleEmployer)

	resp, err := svc.CurrentUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, resp.Email)

	_, err = svc.CurrentUser("00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, appErrors.ErrUserNotFound)
}
