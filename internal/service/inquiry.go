package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/chefincasa/backend/internal/apperrors"
	"github.com/chefincasa/backend/internal/models"
	"github.com/chefincasa/backend/internal/types"
)

// InquiryService records contact requests from visitors. Submissions are
// anonymous and rate limited at the transport layer.
type InquiryService struct {
	db     *gorm.DB
	emails *EmailService
	logger *zap.Logger
}

func NewInquiryService(db *gorm.DB, emails *EmailService, logger *zap.Logger) *InquiryService {
	return &InquiryService{db: db, emails: emails, logger: logger}
}

// Create stores the inquiry and notifies the admin asynchronously; a mail
// failure never fails the submission.
func (s *InquiryService) Create(ctx context.Context, req *types.CreateInquiryRequest) (*models.Inquiry, error) {
	inquiry := &models.Inquiry{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Message: strings.TrimSpace(req.Message),
		Status:  models.InquiryStatusOpen,
	}

	if req.ChefID != nil {
		chefID, err := uuid.Parse(*req.ChefID)
		if err != nil {
			return nil, apperrors.BadRequest("id chef non valido")
		}
		var chef models.Chef
		err = s.db.WithContext(ctx).Select("id").First(&chef, "id = ?", chefID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NotFound("Chef non trovato")
			}
			return nil, err
		}
		inquiry.ChefID = &chefID
	}

	if err := s.db.WithContext(ctx).Create(inquiry).Error; err != nil {
		return nil, fmt.Errorf("failed to create inquiry: %w", err)
	}

	go func() {
		if err := s.emails.SendInquiryNotification(inquiry); err != nil {
			s.logger.Error("failed to send inquiry notification",
				zap.String("inquiry_id", inquiry.ID.String()),
				zap.Error(err))
		}
	}()

	return inquiry, nil
}

// ListByChef returns the inquiries addressed to a chef, newest first.
func (s *InquiryService) ListByChef(ctx context.Context, chefID uuid.UUID) ([]models.Inquiry, error) {
	var inquiries []models.Inquiry
	err := s.db.WithContext(ctx).
		Where("chef_id = ?", chefID).
		Order("created_at DESC").
		Find(&inquiries).Error
	if err != nil {
		return nil, err
	}
	return inquiries, nil
}

// UpdateStatus moves an inquiry between open and closed.
func (s *InquiryService) UpdateStatus(ctx context.Context, chefID, inquiryID uuid.UUID, status string) error {
	if status != models.InquiryStatusOpen && status != models.InquiryStatusClosed {
		return apperrors.BadRequest("stato non valido")
	}

	result := s.db.WithContext(ctx).Model(&models.Inquiry{}).
		Where("id = ? AND chef_id = ?", inquiryID, chefID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("Richiesta non trovata")
	}
	return nil
}
