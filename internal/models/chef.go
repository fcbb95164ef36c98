package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleChef  = "chef"
	RoleAdmin = "admin"
)

type Chef struct {
	ID           uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	FirstName    string         `gorm:"size:80;not null" json:"firstName"`
	LastName     string         `gorm:"size:80;not null" json:"lastName"`
	CountryCode  string         `gorm:"size:2;not null" json:"countryCode"`
	PhonePrefix  string         `gorm:"size:6;not null;uniqueIndex:idx_chefs_phone" json:"phonePrefix"`
	PhoneNumber  string         `gorm:"size:20;not null;uniqueIndex:idx_chefs_phone" json:"phoneNumber"`
	Email        string         `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	Role         string         `gorm:"size:20;not null;default:'chef'" json:"role"`
}

func (c *Chef) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// ChefProfile is the chef's public-facing profile. Created lazily on the
// first profile write or photo upload.
type ChefProfile struct {
	ID               uuid.UUID        `gorm:"type:varchar(36);primarykey" json:"id"`
	ChefID           uuid.UUID        `gorm:"type:varchar(36);not null;uniqueIndex" json:"chefId"`
	ProfileImageURL  string           `gorm:"size:500" json:"profileImageUrl"`
	ProfileImagePath string           `gorm:"size:500" json:"profileImagePath"`
	ProfileImageMime string           `gorm:"size:100" json:"profileImageMime"`
	Bio              string           `gorm:"size:240" json:"bio"`
	Website          string           `gorm:"size:500" json:"website"`
	Languages        JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"languages"`
	Skills           JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"skills"`
	Address          string           `gorm:"size:255" json:"address"`
	Region           string           `gorm:"size:100" json:"region"`
	Country          string           `gorm:"size:2" json:"country"`
	ServiceRadiusKm  int              `gorm:"not null;default:0" json:"serviceRadiusKm"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

func (p *ChefProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
