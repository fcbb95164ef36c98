package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/chefincasa/backend/internal/models"
)

// DashboardStats summarizes a chef's catalog for the workspace landing view.
type DashboardStats struct {
	Dishes        int64        `json:"dishes"`
	Menus         int64        `json:"menus"`
	Photos        int64        `json:"photos"`
	OpenInquiries int64        `json:"openInquiries"`
	LatestMenu    *models.Menu `json:"latestMenu"`
}

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

func (s *DashboardService) Stats(ctx context.Context, chefID uuid.UUID) (*DashboardStats, error) {
	var stats DashboardStats

	counts := []struct {
		model any
		dest  *int64
		extra string
	}{
		{&models.Dish{}, &stats.Dishes, ""},
		{&models.Menu{}, &stats.Menus, ""},
		{&models.ChefDishPhoto{}, &stats.Photos, ""},
		{&models.Inquiry{}, &stats.OpenInquiries, models.InquiryStatusOpen},
	}

	for _, c := range counts {
		q := s.db.WithContext(ctx).Model(c.model).Where("chef_id = ?", chefID)
		if c.extra != "" {
			q = q.Where("status = ?", c.extra)
		}
		if err := q.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	var latest models.Menu
	err := s.db.WithContext(ctx).
		Where("chef_id = ?", chefID).
		Order("created_at DESC").
		First(&latest).Error
	switch {
	case err == nil:
		stats.LatestMenu = &latest
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}
	return &stats, nil
}
