package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to ApplicationStatus
		want     bool
	}{
		{ApplicationStatusPending, ApplicationStatusReviewed, true},
		{ApplicationStatusPending, ApplicationStatusAccepted, true},
		{ApplicationStatusPending, ApplicationStatusRejected, true},
		{ApplicationStatusReviewed, ApplicationStatusAccepted, true},
		{ApplicationStatusReviewed, ApplicationStatusRejected, true},
		{ApplicationStatusReviewed, ApplicationStatusPending, false},
		{ApplicationStatusAccepted, ApplicationStatusRejected, false},
		{ApplicationStatusAccepted, ApplicationStatusPending, false},
		{ApplicationStatusRejected, ApplicationStatusAccepted, false},
		{ApplicationStatusPending, ApplicationStatusPending, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestStatusValid(t *testing.T) {
	assert.True(t, ApplicationStatusPending.Valid())
	assert.True(t, ApplicationStatusRejected.Valid())
	assert.False(t, ApplicationStatus("archived").Valid())

	assert.True(t, JobTypeContract.Valid())
	assert.False(t, JobType("freelance").Valid())
}

func TestJobIsExpired(t *testing.T) {
	now := time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC)

	noDeadline := &Job{}
	assert.False(t, noDeadline.IsExpired(now))

	yesterday := datatypes.Date(now.AddDate(0, 0, -1))
	expired := &Job{ApplicationDeadline: &yesterday}
	assert.True(t, expired.IsExpired(now))

	// Дедлайн сегодня: заявки принимаются до конца дня
	today := datatypes.Date(now)
	openToday := &Job{ApplicationDeadline: &today}
	assert.False(t, openToday.IsExpired(now))

	tomorrow := datatypes.Date(now.AddDate(0, 0, 1))
	open := &Job{ApplicationDeadline: &tomorrow}
	assert.False(t, open.IsExpired(now))
}
