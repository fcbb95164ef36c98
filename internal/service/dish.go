package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/chefincasa/backend/internal/apperrors"
	"github.com/chefincasa/backend/internal/models"
	"github.com/chefincasa/backend/internal/types"
)

const (
	defaultDishLimit = 50
	maxDishLimit     = 200
)

type DishService struct {
	db *gorm.DB
}

func NewDishService(db *gorm.DB) *DishService {
	return &DishService{db: db}
}

// List returns the chef's dishes, newest first, optionally filtered by
// categoria.
func (s *DishService) List(ctx context.Context, chefID uuid.UUID, categoria string, limit int) ([]models.Dish, error) {
	if limit < 1 || limit > maxDishLimit {
		limit = defaultDishLimit
	}

	query := s.db.WithContext(ctx).Where("chef_id = ?", chefID)
	if categoria != "" {
		query = query.Where("categoria = ?", categoria)
	}

	var dishes []models.Dish
	if err := query.Order("created_at DESC").Limit(limit).Find(&dishes).Error; err != nil {
		return nil, err
	}
	return dishes, nil
}

// Get fetches a single dish. Ownership is enforced by filtering on chef_id:
// a dish owned by another chef looks exactly like a missing one.
func (s *DishService) Get(ctx context.Context, chefID, dishID uuid.UUID) (*models.Dish, error) {
	var dish models.Dish
	err := s.db.WithContext(ctx).
		Where("id = ? AND chef_id = ?", dishID, chefID).
		First(&dish).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Piatto non trovato")
		}
		return nil, err
	}
	return &dish, nil
}

func (s *DishService) Create(ctx context.Context, chefID uuid.UUID, req *types.CreateDishRequest) (*models.Dish, error) {
	dish := models.Dish{
		ChefID:      chefID,
		NomePiatto:  strings.TrimSpace(req.NomePiatto),
		Categoria:   req.Categoria,
		Descrizione: normalizeDescription(req.Descrizione),
		FoodType:    req.FoodType,
	}

	if err := s.db.WithContext(ctx).Create(&dish).Error; err != nil {
		return nil, err
	}
	return &dish, nil
}

// Update changes only the supplied fields.
func (s *DishService) Update(ctx context.Context, chefID, dishID uuid.UUID, req *types.UpdateDishRequest) (*models.Dish, error) {
	dish, err := s.Get(ctx, chefID, dishID)
	if err != nil {
		return nil, err
	}

	if req.NomePiatto != nil {
		dish.NomePiatto = strings.TrimSpace(*req.NomePiatto)
	}
	if req.Categoria != nil {
		dish.Categoria = *req.Categoria
	}
	if req.Descrizione.Set {
		dish.Descrizione = normalizeDescription(req.Descrizione.Value)
	}
	if req.FoodType != nil {
		dish.FoodType = *req.FoodType
	}

	if err := s.db.WithContext(ctx).Save(dish).Error; err != nil {
		return nil, err
	}
	return dish, nil
}

// Delete removes the dish. MenuDish snapshot rows referencing it survive on
// purpose.
func (s *DishService) Delete(ctx context.Context, chefID, dishID uuid.UUID) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND chef_id = ?", dishID, chefID).
		Delete(&models.Dish{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("Piatto non trovato")
	}
	return nil
}

// normalizeDescription trims and maps an empty string to NULL.
func normalizeDescription(desc *string) *string {
	if desc == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*desc)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
