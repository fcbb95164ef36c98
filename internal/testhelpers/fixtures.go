package testhelpers

import (
	"fmt"
	"sync/atomic"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/chefincasa/backend/internal/models"
)

var phoneCounter atomic.Int64

// CreateTestChef inserts a chef with a bcrypt-hashed password. The email must
// be unique within the test database.
func CreateTestChef(t *testing.T, db *gorm.DB, email string) *models.Chef {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	chef := &models.Chef{
		FirstName:    "Mario",
		LastName:     "Rossi",
		CountryCode:  "IT",
		PhonePrefix:  "+39",
		PhoneNumber:  fmt.Sprintf("3331%06d", phoneCounter.Add(1)),
		Email:        email,
		PasswordHash: string(hashed),
		Role:         models.RoleChef,
	}
	if err := db.Create(chef).Error; err != nil {
		t.Fatalf("failed to create test chef: %v", err)
	}
	return chef
}

// CreateTestDish inserts a dish owned by the chef.
func CreateTestDish(t *testing.T, db *gorm.DB, chef *models.Chef, nome string) *models.Dish {
	t.Helper()

	descrizione := "Preparato con ingredienti di stagione"
	dish := &models.Dish{
		ChefID:      chef.ID,
		NomePiatto:  nome,
		Categoria:   models.CategoryPrimoPiatto,
		Descrizione: &descrizione,
		FoodType:    models.FoodTypeVerdura,
	}
	if err := db.Create(dish).Error; err != nil {
		t.Fatalf("failed to create test dish: %v", err)
	}
	return dish
}

// CreateTestMenu inserts a menu owned by the chef.
func CreateTestMenu(t *testing.T, db *gorm.DB, chef *models.Chef, nome string) *models.Menu {
	t.Helper()

	menu := &models.Menu{
		ChefID:       chef.ID,
		Nome:         nome,
		Balance:      models.BalanceEquilibrato,
		CuisineTypes: models.JSONBStringArray{"LOCALE"},
	}
	if err := db.Create(menu).Error; err != nil {
		t.Fatalf("failed to create test menu: %v", err)
	}
	return menu
}
