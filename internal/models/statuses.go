package models

type UserRole string
type JobType string
type ApplicationStatus string

const (
	UserRoleCandidate UserRole = "candidate"
	UserRoleEmployer  UserRole = "employer"
	UserRoleAdmin     UserRole = "admin"

	JobTypeFullTime   JobType = "full_time"
	JobTypePartTime   JobType = "part_time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"

	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusReviewed ApplicationStatus = "reviewed"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// allowedTransitions описывает разрешенные переходы статуса заявки.
// pending - начальный статус; accepted и rejected - терминальные.
var allowedTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationStatusPending:  {ApplicationStatusReviewed, ApplicationStatusAccepted, ApplicationStatusRejected},
	ApplicationStatusReviewed: {ApplicationStatusAccepted, ApplicationStatusRejected},
}

// CanTransition проверяет, разрешен ли переход статуса заявки from -> to.
func CanTransition(from, to ApplicationStatus) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewed, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship:
		return true
	}
	return false
}
