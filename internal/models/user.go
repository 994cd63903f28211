package models

import "time"

type User struct {
	BaseModel
	Name         string   `gorm:"not null" json:"name"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`
	Phone        string   `json:"phone,omitempty"`
	Bio          string   `json:"bio,omitempty"`

	// Relations
	Jobs          []Job          `gorm:"foreignKey:EmployerID" json:"-"`
	Applications  []Application  `gorm:"foreignKey:CandidateID" json:"-"`
	Favorites     []Favorite     `gorm:"foreignKey:CandidateID" json:"-"`
	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID" json:"-"`
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
}
