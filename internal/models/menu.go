package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	BalanceGustosa     = "GUSTOSA"
	BalanceEquilibrato = "EQUILIBRATO"
	BalanceLeggera     = "LEGGERA"
)

// CuisineTypes lists the accepted cuisine tags; a menu carries at most
// MaxCuisineTypes of them.
var CuisineTypes = []string{
	"LOCALE",
	"TRADIZIONALE",
	"CREATIVA",
	"FUSION",
	"GOURMET",
	"VEGETARIANA",
	"INTERNAZIONALE",
	"STAGIONALE",
}

const MaxCuisineTypes = 3

type Menu struct {
	ID           uuid.UUID        `gorm:"type:varchar(36);primarykey" json:"id"`
	ChefID       uuid.UUID        `gorm:"type:varchar(36);not null;index" json:"chefId"`
	Nome         string           `gorm:"size:120;not null" json:"nome"`
	Descrizione  *string          `gorm:"size:500" json:"descrizione"`
	ImageURL     *string          `gorm:"size:500" json:"imageUrl"`
	ImagePath    *string          `gorm:"size:500" json:"imagePath"`
	Balance      string           `gorm:"size:20;not null" json:"balance"`
	CuisineTypes JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"cuisineTypes"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

func (m *Menu) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// MenuDish binds a dish into a menu. Categoria, NomePiatto and Descrizione
// are copied from the dish at insertion time and never synced afterwards:
// a composed menu must not drift when the dish catalog is edited, and it
// survives deletion of the source dish.
type MenuDish struct {
	ID          uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	ChefID      uuid.UUID `gorm:"type:varchar(36);not null;index" json:"chefId"`
	MenuID      uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_menu_dishes_menu_dish" json:"menuId"`
	DishID      uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_menu_dishes_menu_dish" json:"dishId"`
	Categoria   string    `gorm:"size:32;not null" json:"categoria"`
	NomePiatto  string    `gorm:"size:120;not null" json:"nomePiatto"`
	Descrizione *string   `gorm:"size:500" json:"descrizione"`
	Ordine      int       `gorm:"not null" json:"ordine"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (md *MenuDish) BeforeCreate(tx *gorm.DB) error {
	if md.ID == uuid.Nil {
		md.ID = uuid.New()
	}
	return nil
}
