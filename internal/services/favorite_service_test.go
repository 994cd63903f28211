package services

import (
	"testing"

	"jobboard_backend/internal/appErrors"
	"jobboard_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFavoriteService(t *testing.T) (FavoriteService, *testRepos) {
	t.Helper()
	repos := newTestRepos(setupTestDB(t))
	return NewFavoriteService(repos.favorites, repos.jobs, repos.users), repos
}

func TestToggleFavorite(t *testing.T) {
	svc, repos := newFavoriteService(t)
	employer := createTestUser(t, repos, "femp@example.com", models.UserRoleEmployer)
	candidate := createTestUser(t, repos, "fcand@example.com", models.UserRoleCandidate)
	job := createTestJob(t, repos, employer.ID)

	on, err := svc.Toggle(candidate.ID, job.ID)
	require.NoError(t, err)
	assert.True(t, on.Favorited)

	off, err := svc.Toggle(candidate.ID, job.ID)
	require.NoError(t, err)
	assert.False(t, off.Favorited)

	// Пара toggle возвращает исходное состояние
	check, err := svc.Check(candidate.ID, job.ID)
	require.NoError(t, err)
	assert.False(t, check.IsFavorite)
}

func TestToggleFavoriteUnknownJob(t *testing.T) {
	svc, repos := newFavoriteService(t)
	candidate := createTestUser(t, repos, "fcand2@example.com", models.UserRoleCandidate)

	_, err := svc.Toggle(candidate.ID, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, appErrors.ErrJobNotFound)
}

func TestFavoritesForbiddenForEmployer(t *testing.T) {
	svc, repos := newFavoriteService(t)
	employer := createTestUser(t, repos, "femp3@example.com", models.UserRoleEmployer)
	job := createTestJob(t, repos, employer.ID)

	_, err := svc.Toggle(employer.ID, job.ID)
	assert.ErrorIs(t, err, appErrors.ErrForbidden)

	_, err = svc.List(employer.ID)
	assert.ErrorIs(t, err, appErrors.ErrForbidden)

	_, err = svc.Check(employer.ID, job.ID)
	assert.ErrorIs(t, err, appErrors.ErrForbidden)
}

func TestListFavorites(t *testing.T) {
	svc, repos := newFavoriteService(t)
	employer := createTestUser(t, repos, "femp4@example.com", models.UserRoleEmployer)
	candidate := createTestUser(t, repos, "fcand4@example.com", models.UserRoleCandidate)
	other := createTestUser(t, repos, "fcand4b@example.com", models.UserRoleCandidate)

	job1 := createTestJob(t, repos, employer.ID)
	job2 := createTestJob(t, repos, employer.ID, func(j *models.Job) { j.Title = "Second" })

	_, err := svc.Toggle(candidate.ID, job1.ID)
	require.NoError(t, err)
	_, err = svc.Toggle(candidate.ID, job2.ID)
	require.NoError(t, err)
	_, err = svc.Toggle(other.ID, job1.ID)
	require.NoError(t, err)

	favorites, err := svc.List(candidate.ID)
	require.NoError(t, err)
	require.Len(t, favorites, 2)
	for _, f := range favorites {
		assert.Equal(t, candidate.ID, f.CandidateID)
		require.NotNil(t, f.Job)
	}

	check, err := svc.Check(candidate.ID, job1.ID)
	require.NoError(t, err)
	assert.True(t, check.IsFavorite)
}
