package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	InquiryStatusOpen   = "open"
	InquiryStatusClosed = "closed"
)

// Inquiry is a public contact submission, optionally addressed to a chef.
type Inquiry struct {
	ID        uuid.UUID  `gorm:"type:varchar(36);primarykey" json:"id"`
	ChefID    *uuid.UUID `gorm:"type:varchar(36);index" json:"chefId"`
	Name      string     `gorm:"size:120;not null" json:"name"`
	Email     string     `gorm:"size:255;not null" json:"email"`
	Message   string     `gorm:"size:2000;not null" json:"message"`
	Status    string     `gorm:"size:20;not null;default:'open'" json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func (i *Inquiry) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
