package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/camilon-dental/clinic-api/utils"
)

// Service is a priced clinical offering, managed by admins and referenced
// by appointments by id.
type Service struct {
	ID        ServiceID `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Created   string    `json:"created"`
	Updated   string    `json:"updated"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	now := utils.ManilaNow()
	if s.Created == "" {
		s.Created = now
	}
	s.Updated = now
	return nil
}
