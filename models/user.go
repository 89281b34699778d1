package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/camilon-dental/clinic-api/utils"
)

const (
	RoleAdmin   = "Admin"
	RolePatient = "Patient"
)

type User struct {
	ID       UserID `json:"id" gorm:"primaryKey"`
	Name     string `json:"name"`
	Email    string `json:"email" gorm:"unique;not null"`
	Password string `json:"-"` // bcrypt hash, staff logins only
	Image    string `json:"image"`
	Age      string `json:"age"`
	Gender   string `json:"gender"`
	Contact  string `json:"contact"`
	Address  string `json:"address"`
	Role     string `json:"role" gorm:"default:Patient"`
	// Locale-formatted timestamps the frontend renders directly.
	Created   string    `json:"created"`
	Updated   string    `json:"updated"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.Role == "" {
		u.Role = RolePatient
	}
	now := utils.ManilaNow()
	if u.Created == "" {
		u.Created = now
	}
	u.Updated = now
	return nil
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
