package service

import (
	"context"
	"errors"
	"net/url"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/chefincasa/backend/internal/apperrors"
	"github.com/chefincasa/backend/internal/models"
	"github.com/chefincasa/backend/internal/types"
)

const maxSkills = 5

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// Get returns the chef's profile, or an empty one when nothing has been
// written yet (the row is only created on the first write).
func (s *ProfileService) Get(ctx context.Context, chefID uuid.UUID) (*models.ChefProfile, error) {
	var profile models.ChefProfile
	err := s.db.WithContext(ctx).Where("chef_id = ?", chefID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.ChefProfile{
				ChefID:    chefID,
				Languages: models.JSONBStringArray{},
				Skills:    models.JSONBStringArray{},
			}, nil
		}
		return nil, err
	}
	return &profile, nil
}

// Update applies the supplied fields, creating the profile row lazily.
func (s *ProfileService) Update(ctx context.Context, chefID uuid.UUID, req *types.UpdateProfileRequest) (*models.ChefProfile, error) {
	if req.Skills != nil && len(*req.Skills) > maxSkills {
		return nil, apperrors.BadRequest("massimo 5 competenze")
	}
	if req.Website.Set && req.Website.Value != nil && *req.Website.Value != "" {
		if !isHTTPURL(*req.Website.Value) {
			return nil, apperrors.BadRequest("il sito web deve essere un URL http o https")
		}
	}

	profile, created, err := s.loadOrInit(ctx, chefID)
	if err != nil {
		return nil, err
	}

	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.Website.Set {
		if req.Website.Value == nil {
			profile.Website = ""
		} else {
			profile.Website = *req.Website.Value
		}
	}
	if req.Languages != nil {
		profile.Languages = models.JSONBStringArray(dedupe(*req.Languages))
	}
	if req.Skills != nil {
		profile.Skills = models.JSONBStringArray(dedupe(*req.Skills))
	}
	if req.Address != nil {
		profile.Address = *req.Address
	}
	if req.Region != nil {
		profile.Region = *req.Region
	}
	if req.Country != nil {
		profile.Country = *req.Country
	}
	if req.ServiceRadiusKm != nil {
		profile.ServiceRadiusKm = *req.ServiceRadiusKm
	}

	if created {
		if err := s.db.WithContext(ctx).Create(profile).Error; err != nil {
			return nil, err
		}
	} else {
		if err := s.db.WithContext(ctx).Save(profile).Error; err != nil {
			return nil, err
		}
	}
	return profile, nil
}

// loadOrInit fetches the profile row or prepares a fresh unsaved one.
func (s *ProfileService) loadOrInit(ctx context.Context, chefID uuid.UUID) (*models.ChefProfile, bool, error) {
	var profile models.ChefProfile
	err := s.db.WithContext(ctx).Where("chef_id = ?", chefID).First(&profile).Error
	if err == nil {
		return &profile, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}
	return &models.ChefProfile{
		ChefID:    chefID,
		Languages: models.JSONBStringArray{},
		Skills:    models.JSONBStringArray{},
	}, true, nil
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// dedupe keeps the first occurrence of each value; sets are unordered in the
// contract so input order is good enough.
func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
