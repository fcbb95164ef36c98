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

type MenuService struct {
	db *gorm.DB
}

func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{db: db}
}

// List returns all menus for the chef, newest first.
func (s *MenuService) List(ctx context.Context, chefID uuid.UUID) ([]models.Menu, error) {
	var menus []models.Menu
	err := s.db.WithContext(ctx).
		Where("chef_id = ?", chefID).
		Order("created_at DESC").
		Find(&menus).Error
	if err != nil {
		return nil, err
	}
	return menus, nil
}

func (s *MenuService) Get(ctx context.Context, chefID, menuID uuid.UUID) (*models.Menu, error) {
	return s.assertOwned(ctx, chefID, menuID)
}

func (s *MenuService) Create(ctx context.Context, chefID uuid.UUID, req *types.CreateMenuRequest) (*models.Menu, error) {
	if len(req.CuisineTypes) > models.MaxCuisineTypes {
		return nil, apperrors.BadRequest("massimo 3 tipi di cucina")
	}
	if err := validateImageRef(req.ImageURL); err != nil {
		return nil, err
	}
	if err := validateImageRef(req.ImagePath); err != nil {
		return nil, err
	}

	menu := models.Menu{
		ChefID:       chefID,
		Nome:         strings.TrimSpace(req.Nome),
		Descrizione:  normalizeDescription(req.Descrizione),
		ImageURL:     req.ImageURL,
		ImagePath:    req.ImagePath,
		Balance:      req.Balance,
		CuisineTypes: models.JSONBStringArray(dedupe(req.CuisineTypes)),
	}

	if err := s.db.WithContext(ctx).Create(&menu).Error; err != nil {
		return nil, err
	}
	return &menu, nil
}

// Update applies the supplied fields after asserting ownership. Image fields
// accept an explicit null to clear them.
func (s *MenuService) Update(ctx context.Context, chefID, menuID uuid.UUID, req *types.UpdateMenuRequest) (*models.Menu, error) {
	menu, err := s.assertOwned(ctx, chefID, menuID)
	if err != nil {
		return nil, err
	}

	if req.CuisineTypes != nil && len(*req.CuisineTypes) > models.MaxCuisineTypes {
		return nil, apperrors.BadRequest("massimo 3 tipi di cucina")
	}
	if req.ImageURL.Set {
		if err := validateImageRef(req.ImageURL.Value); err != nil {
			return nil, err
		}
	}
	if req.ImagePath.Set {
		if err := validateImageRef(req.ImagePath.Value); err != nil {
			return nil, err
		}
	}

	if req.Nome != nil {
		menu.Nome = strings.TrimSpace(*req.Nome)
	}
	if req.Descrizione.Set {
		menu.Descrizione = normalizeDescription(req.Descrizione.Value)
	}
	if req.ImageURL.Set {
		menu.ImageURL = req.ImageURL.Value
	}
	if req.ImagePath.Set {
		menu.ImagePath = req.ImagePath.Value
	}
	if req.Balance != nil {
		menu.Balance = *req.Balance
	}
	if req.CuisineTypes != nil {
		menu.CuisineTypes = models.JSONBStringArray(dedupe(*req.CuisineTypes))
	}

	if err := s.db.WithContext(ctx).Save(menu).Error; err != nil {
		return nil, err
	}
	return menu, nil
}

func (s *MenuService) Delete(ctx context.Context, chefID, menuID uuid.UUID) error {
	if _, err := s.assertOwned(ctx, chefID, menuID); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&models.Menu{}, "id = ?", menuID).Error
}

// assertOwned is the reusable ownership precondition: a menu that doesn't
// belong to the chef answers 404, indistinguishable from a missing one.
func (s *MenuService) assertOwned(ctx context.Context, chefID, menuID uuid.UUID) (*models.Menu, error) {
	var menu models.Menu
	err := s.db.WithContext(ctx).
		Where("id = ? AND chef_id = ?", menuID, chefID).
		First(&menu).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Menu non trovato")
		}
		return nil, err
	}
	return &menu, nil
}

// validateImageRef accepts http(s) URLs and /static/... paths. Browser-local
// schemes (blob:, data:, file:) must never reach the database: they only
// resolve inside the uploading browser.
func validateImageRef(ref *string) error {
	if ref == nil || *ref == "" {
		return nil
	}
	v := strings.TrimSpace(strings.ToLower(*ref))
	if strings.HasPrefix(v, "blob:") || strings.HasPrefix(v, "data:") || strings.HasPrefix(v, "file:") {
		return apperrors.BadRequest("riferimento immagine non valido")
	}
	if strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://") || strings.HasPrefix(v, "/static/") {
		return nil
	}
	return apperrors.BadRequest("riferimento immagine non valido")
}
