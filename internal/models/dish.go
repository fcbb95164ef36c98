package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Dish categories. The catalog keeps the Italian labels the client displays.
const (
	CategoryAntipasto        = "ANTIPASTO"
	CategoryPrimoPiatto      = "PRIMO_PIATTO"
	CategoryPiattoPrincipale = "PIATTO_PRINCIPALE"
	CategoryDessert          = "DESSERT"
	CategoryAltro            = "ALTRO"
)

const (
	FoodTypeCarne   = "CARNE"
	FoodTypeVerdura = "VERDURA"
	FoodTypePesce   = "PESCE"
)

// Dish is a reusable dish definition in a chef's catalog. Menus snapshot its
// display fields at composition time, so editing or deleting a dish never
// rewrites existing menus.
type Dish struct {
	ID          uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	ChefID      uuid.UUID `gorm:"type:varchar(36);not null;index" json:"chefId"`
	NomePiatto  string    `gorm:"size:120;not null" json:"nomePiatto"`
	Categoria   string    `gorm:"size:32;not null" json:"categoria"`
	Descrizione *string   `gorm:"size:500" json:"descrizione"`
	FoodType    string    `gorm:"column:food_type;size:16;not null" json:"foodType"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (d *Dish) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// ChefDishPhoto is a gallery photo owned by a chef. ImagePath is the
// uploads-relative path used for on-disk deletion; it is empty for photos
// created from a pre-hosted URL.
type ChefDishPhoto struct {
	ID          uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	ChefID      uuid.UUID `gorm:"type:varchar(36);not null;index" json:"chefId"`
	ImageURL    string    `gorm:"size:500;not null" json:"imageUrl"`
	ImagePath   string    `gorm:"size:500" json:"imagePath"`
	ImageMime   string    `gorm:"size:100" json:"imageMime"`
	Description *string   `gorm:"size:240" json:"description"`
	ImageWidth  *int      `json:"imageWidth"`
	ImageHeight *int      `json:"imageHeight"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (p *ChefDishPhoto) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
