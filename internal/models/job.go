package models

import (
	"time"

	"gorm.io/datatypes"
)

type Job struct {
	BaseModel
	EmployerID          string          `gorm:"type:uuid;not null;index" json:"employer_id"`
	Title               string          `gorm:"not null" json:"title"`
	Description         string          `gorm:"type:text;not null" json:"description"`
	Company             string          `gorm:"not null" json:"company"`
	Location            string          `gorm:"not null" json:"location"`
	Salary              *string         `json:"salary,omitempty"`
	Type                JobType         `gorm:"type:varchar(20);not null" json:"type"`
	Category            string          `gorm:"not null;index" json:"category"`
	ApplicationDeadline *datatypes.Date `json:"application_deadline,omitempty"`
	IsActive            bool            `gorm:"default:true" json:"is_active"`

	Employer *User `gorm:"foreignKey:EmployerID" json:"employer,omitempty"`
}

// IsExpired - вычисляемое свойство, никогда не хранится в БД.
// Вакансия истекла, если дедлайн подачи заявок раньше сегодняшнего дня.
func (j *Job) IsExpired(now time.Time) bool {
	if j.ApplicationDeadline == nil {
		return false
	}
	deadline := time.Time(*j.ApplicationDeadline)
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return deadline.Before(today)
}
