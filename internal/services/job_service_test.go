package services

import (
	"testing"

	"jobboard_backend/internal/appErrors"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJobService(t *testing.T) (JobService, *testRepos) {
	t.Helper()
	repos := newTestRepos(setupTestDB(t))
	return NewJobService(repos.jobs, repos.users), repos
}

func strPtr(s string) *string { return &s }

func TestCreateJobAsEmployer(t *testing.T) {
	svc, repos := newJobService(t)
	employer := createTestUser(t, repos, "employer@example.com", models.UserRoleEmployer)

	job, err := svc.Create(employer.ID, &dto.CreateJobRequest{
		Title:               "Go Developer",
		Description:         "Backend services",
		Company:             "Acme",
		Location:            "Astana",
		Type:                string(models.JobTypeFullTime),
		Category:            "IT",
		Salary:              strPtr("500000 KZT"),
		ApplicationDeadline: strPtr("2030-12-31"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, job.ID)
	assert.True(t, job.IsActive)
	assert.False(t, job.IsExpired)
	assert.Equal(t, employer.ID, job.EmployerID)
}

func TestCreateJobAsCandidateForbidden(t *testing.T) {
	svc, repos := newJobService(t)
	candidate := createTestUser(t, repos, "candidate@example.com", models.UserRoleCandidate)

	_, err := svc.Create(candidate.ID, &dto.CreateJobRequest{
		Title:       "Go Developer",
		Description: "Backend services",
		Company:     "Acme",
		Location:    "Astana",
		Type:        string(models.JobTypeFullTime),
		Category:    "IT",
	})
	assert.ErrorIs(t, err, appErrors.ErrForbidden)
}

func TestCreateJobBadDeadline(t *testing.T) {
	svc, repos := newJobService(t)
	employer := createTestUser(t, repos, "deadline@example.com", models.UserRoleEmployer)

	_, err := svc.Create(employer.ID, &dto.CreateJobRequest{
		Title:               "Go Developer",
		Description:         "Backend services",
		Company:             "Acme",
		Location:            "Astana",
		Type:                string(models.JobTypeFullTime),
		Category:            "IT",
		ApplicationDeadline: strPtr("31-12-2030"),
	})
	require.Error(t, err)

	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 422, appErr.HTTPCode)
}

func TestListReturnsOnlyActiveJobs(t *testing.T) {
	svc, repos := newJobService(t)
	employer := createTestUser(t, repos, "list@example.com", models.UserRoleEmployer)

	active := createTestJob(t, repos, employer.ID)
	createTestJob(t, repos, employer.ID, func(j *models.Job) {
		j.Title = "Hidden"
		j.IsActive = false
	})

	jobs, err := svc.List(&dto.JobListFilter{})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, active.ID, jobs[0].ID)
}

func TestListFilters(t *testing.T) {
	svc, repos := newJobService(t)
	employer := createTestUser(t, repos, "filters@example.com", models.UserRoleEmployer)

	createTestJob(t, repos, employer.ID, func(j *models.Job) {
		j.Title = "Senior Go Engineer"
		j.Type = models.JobTypeFullTime
		j.Category = "IT"
		j.Location = "Almaty"
	})
	createTestJob(t, repos, employer.ID, func(j *models.Job) {
		j.Title = "Accountant"
		j.Type = models.JobTypePartTime
		j.Category = "Finance"
		j.Location = "Astana"
	})

	byType, err := svc.List(&dto.JobListFilter{Type: string(models.JobTypePartTime)})
	require.NoError(t, err)
	require.Len(t, byType, 1)
	assert.Equal(t, "Accountant", byType[0].Title)

	bySearch, err := svc.List(&dto.JobListFilter{Search: "go engineer"})
	require.NoError(t, err)
	require.Len(t, bySearch, 1)
	assert.Equal(t, "Senior Go Engineer", bySearch[0].Title)

	byLocation, err := svc.List(&dto.JobListFilter{Location: "alma"})
	require.NoError(t, err)
	require.Len(t, byLocation, 1)

	byCategory, err := svc.List(&dto.JobListFilter{Category: "Finance"})
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
}

func TestGetJobNotFound(t *testing.T) {
	svc, _ := newJobService(t)

	_, err := svc.Get("00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, appErrors.ErrJobNotFound)
}

func TestUpdateJobByOwner(t *testing.T) {
	svc, repos := newJobService(t)
	employer := createTestUser(t, repos, "owner@example.com", models.UserRoleEmployer)
	job := createTestJob(t, repos, employer.ID)

	updated, err := svc.Update(job.ID, employer.ID, &dto.UpdateJobRequest{
		Title:    strPtr("Updated Title"),
		IsActive: boolPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, "Updated Title", updated.Title)
	assert.False(t, updated.IsActive)
}

func TestUpdateJobByOtherEmployerForbidden(t *testing.T) {
	svc, repos := newJobService(t)
	owner := createTestUser(t, repos, "owner2@example.com", models.UserRoleEmployer)
	other := createTestUser(t, repos, "other@example.com", models.UserRoleEmployer)
	job := createTestJob(t, repos, owner.ID)

	_, err := svc.Update(job.ID, other.ID, &dto.UpdateJobRequest{Title: strPtr("Hijacked")})
	assert.ErrorIs(t, err, appErrors.ErrForbidden)
}

func TestUpdateJobByAdmin(t *testing.T) {
	svc, repos := newJobService(t)
	owner := createTestUser(t, repos, "owner3@example.com", models.UserRoleEmployer)
	admin := createTestUser(t, repos, "admin@example.com", models.UserRoleAdmin)
	job := createTestJob(t, repos, owner.ID)

	updated, err := svc.Update(job.ID, admin.ID, &dto.UpdateJobRequest{Title: strPtr("Moderated")})
	require.NoError(t, err)
	assert.Equal(t, "Moderated", updated.Title)
}

func TestDeleteJobCascades(t *testing.T) {
	svc, repos := newJobService(t)
	employer := createTestUser(t, repos, "cascade@example.com", models.UserRoleEmployer)
	candidate := createTestUser(t, repos, "cascade-cand@example.com", models.UserRoleCandidate)
	job := createTestJob(t, repos, employer.ID)

	require.NoError(t, repos.applications.Create(&models.Application{
		JobID:       job.ID,
		CandidateID: candidate.ID,
		CoverLetter: "Please consider me",
		Status:      models.ApplicationStatusPending,
	}))
	require.NoError(t, repos.favorites.Create(&models.Favorite{
		CandidateID: candidate.ID,
		JobID:       job.ID,
	}))

	require.NoError(t, svc.Delete(job.ID, employer.ID))

	_, err := repos.jobs.FindByID(job.ID)
	assert.ErrorIs(t, err, repositories.ErrJobNotFound)

	applications, err := repos.applications.FindByCandidate(candidate.ID)
	require.NoError(t, err)
	assert.Empty(t, applications)

	favorites, err := repos.favorites.FindByCandidate(candidate.ID)
	require.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestListForEmployerCountsApplications(t *testing.T) {
	svc, repos := newJobService(t)
	employer := createTestUser(t, repos, "counts@example.com", models.UserRoleEmployer)
	cand1 := createTestUser(t, repos, "c1@example.com", models.UserRoleCandidate)
	cand2 := createTestUser(t, repos, "c2@example.com", models.UserRoleCandidate)

	job := createTestJob(t, repos, employer.ID)
	empty := createTestJob(t, repos, employer.ID, func(j *models.Job) { j.Title = "No takers" })

	for _, c := range []*models.User{cand1, cand2} {
		require.NoError(t, repos.applications.Create(&models.Application{
			JobID:       job.ID,
			CandidateID: c.ID,
			CoverLetter: "Hi",
			Status:      models.ApplicationStatusPending,
		}))
	}

	jobs, err := svc.ListForEmployer(employer.ID)
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	counts := map[string]int64{}
	for _, j := range jobs {
		counts[j.ID] = j.ApplicationsCount
	}
	assert.Equal(t, int64(2), counts[job.ID])
	assert.Equal(t, int64(0), counts[empty.ID])
}

func boolPtr(b bool) *bool { return &b }
