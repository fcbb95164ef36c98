package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/chefincasa/backend/internal/apperrors"
	"github.com/chefincasa/backend/internal/models"
	"github.com/chefincasa/backend/internal/types"
)

// MenuDishService manages the rows binding dishes into menus. Each row is an
// immutable-at-creation snapshot of the dish's display fields; only its
// ordinal can change afterwards.
type MenuDishService struct {
	db    *gorm.DB
	menus *MenuService
}

func NewMenuDishService(db *gorm.DB, menus *MenuService) *MenuDishService {
	return &MenuDishService{db: db, menus: menus}
}

// Add binds a dish into a menu, copying the dish's display fields. When no
// ordinal is given the row lands after the current last one.
func (s *MenuDishService) Add(ctx context.Context, chefID, menuID uuid.UUID, req *types.AddMenuDishRequest) (*models.MenuDish, error) {
	if _, err := s.menus.assertOwned(ctx, chefID, menuID); err != nil {
		return nil, err
	}

	dishID, err := uuid.Parse(req.DishID)
	if err != nil {
		return nil, apperrors.BadRequest("id piatto non valido")
	}

	var dish models.Dish
	err = s.db.WithContext(ctx).
		Where("id = ? AND chef_id = ?", dishID, chefID).
		First(&dish).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Piatto non trovato")
		}
		return nil, err
	}

	ordine := 0
	if req.Ordine != nil {
		ordine = *req.Ordine
	} else {
		var max int
		err := s.db.WithContext(ctx).Model(&models.MenuDish{}).
			Where("menu_id = ?", menuID).
			Select("COALESCE(MAX(ordine), 0)").
			Scan(&max).Error
		if err != nil {
			return nil, err
		}
		ordine = max + 1
	}

	row := models.MenuDish{
		ChefID:      chefID,
		MenuID:      menuID,
		DishID:      dishID,
		Categoria:   dish.Categoria,
		NomePiatto:  dish.NomePiatto,
		Descrizione: dish.Descrizione,
		Ordine:      ordine,
	}

	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("Piatto già presente nel menu")
		}
		return nil, err
	}
	return &row, nil
}

// ListByMenu returns the menu's rows ordered by (ordine, createdAt): ties in
// ordine fall back to insertion order so the listing stays deterministic.
func (s *MenuDishService) ListByMenu(ctx context.Context, chefID, menuID uuid.UUID) ([]models.MenuDish, error) {
	if _, err := s.menus.assertOwned(ctx, chefID, menuID); err != nil {
		return nil, err
	}

	var rows []models.MenuDish
	err := s.db.WithContext(ctx).
		Where("menu_id = ?", menuID).
		Order("ordine ASC, created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// UpdateOne changes a single row's ordinal. The snapshot fields stay frozen.
func (s *MenuDishService) UpdateOne(ctx context.Context, chefID, menuID, menuDishID uuid.UUID, req *types.UpdateMenuDishRequest) (*models.MenuDish, error) {
	if _, err := s.menus.assertOwned(ctx, chefID, menuID); err != nil {
		return nil, err
	}

	var row models.MenuDish
	err := s.db.WithContext(ctx).
		Where("id = ? AND menu_id = ? AND chef_id = ?", menuDishID, menuID, chefID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Piatto del menu non trovato")
		}
		return nil, err
	}

	if req.Ordine != nil {
		row.Ordine = *req.Ordine
		if err := s.db.WithContext(ctx).Model(&row).Update("ordine", row.Ordine).Error; err != nil {
			return nil, err
		}
	}
	return &row, nil
}

// Reorder applies a batch of ordinal updates as a single all-or-nothing
// unit. Every referenced id must belong to this chef and menu; otherwise
// nothing is applied.
func (s *MenuDishService) Reorder(ctx context.Context, chefID, menuID uuid.UUID, items []types.ReorderItem) error {
	if _, err := s.menus.assertOwned(ctx, chefID, menuID); err != nil {
		return err
	}

	ids := make([]uuid.UUID, 0, len(items))
	seen := make(map[uuid.UUID]struct{}, len(items))
	for _, item := range items {
		id, err := uuid.Parse(item.ID)
		if err != nil {
			return apperrors.BadRequest("id non valido")
		}
		if _, dup := seen[id]; dup {
			return apperrors.BadRequest("id duplicato nella richiesta")
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	var count int64
	err := s.db.WithContext(ctx).Model(&models.MenuDish{}).
		Where("id IN ? AND menu_id = ? AND chef_id = ?", ids, menuID, chefID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count != int64(len(ids)) {
		return apperrors.BadRequest("uno o più piatti non appartengono a questo menu")
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, item := range items {
			err := tx.Model(&models.MenuDish{}).
				Where("id = ?", ids[i]).
				Update("ordine", item.Ordine).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// Remove deletes a row from the menu. Independent of whether the source
// dish still exists.
func (s *MenuDishService) Remove(ctx context.Context, chefID, menuID, menuDishID uuid.UUID) error {
	if _, err := s.menus.assertOwned(ctx, chefID, menuID); err != nil {
		return err
	}

	result := s.db.WithContext(ctx).
		Where("id = ? AND menu_id = ? AND chef_id = ?", menuDishID, menuID, chefID).
		Delete(&models.MenuDish{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("Piatto del menu non trovato")
	}
	return nil
}
