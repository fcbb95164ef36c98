package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chefincasa/backend/config"
	"github.com/chefincasa/backend/internal/apperrors"
	"github.com/chefincasa/backend/internal/models"
	"github.com/chefincasa/backend/internal/testhelpers"
	"github.com/chefincasa/backend/internal/types"
)

// testConfig has no SMTP host, so notifications are logged rather than sent.
var testConfig = config.Config{AdminEmail: "admin@example.com"}

func newInquiryFixture(t *testing.T) (*InquiryService, *models.Chef) {
	db := testhelpers.SetupTestDB(t)
	chef := testhelpers.CreateTestChef(t, db, "chef@example.com")
	emails := NewEmailService(&testConfig, zap.NewNop())
	return NewInquiryService(db, emails, zap.NewNop()), chef
}

func TestInquiryCreateNormalizes(t *testing.T) {
	svc, chef := newInquiryFixture(t)
	ctx := context.Background()

	chefID := chef.ID.String()
	inquiry, err := svc.Create(ctx, &types.CreateInquiryRequest{
		ChefID:  &chefID,
		Name:    "  Anna Bianchi  ",
		Email:   " Anna@Example.COM ",
		Message: "Vorrei prenotare una cena per sei persone.",
	})
	require.NoError(t, err)
	assert.Equal(t, "Anna Bianchi", inquiry.Name)
	assert.Equal(t, "anna@example.com", inquiry.Email)
	assert.Equal(t, models.InquiryStatusOpen, inquiry.Status)
	require.NotNil(t, inquiry.ChefID)
	assert.Equal(t, chef.ID, *inquiry.ChefID)
}

func TestInquiryCreateUnknownChef(t *testing.T) {
	svc, _ := newInquiryFixture(t)

	unknown := uuid.NewString()
	_, err := svc.Create(context.Background(), &types.CreateInquiryRequest{
		ChefID:  &unknown,
		Name:    "Anna",
		Email:   "anna@example.com",
		Message: "Ciao",
	})
	require.Error(t, err)
	assert.Equal(t, 404, apperrors.StatusOf(err))
}

func TestInquiryAnonymousAndStatus(t *testing.T) {
	svc, chef := newInquiryFixture(t)
	ctx := context.Background()

	// No chef addressed: goes to the platform inbox
	anon, err := svc.Create(ctx, &types.CreateInquiryRequest{
		Name:    "Anna",
		Email:   "anna@example.com",
		Message: "Domanda generica",
	})
	require.NoError(t, err)
	assert.Nil(t, anon.ChefID)

	chefID := chef.ID.String()
	addressed, err := svc.Create(ctx, &types.CreateInquiryRequest{
		ChefID:  &chefID,
		Name:    "Anna",
		Email:   "anna@example.com",
		Message: "Per lo chef",
	})
	require.NoError(t, err)

	inbox, err := svc.ListByChef(ctx, chef.ID)
	require.NoError(t, err)
	require.Len(t, inbox, 1, "anonymous inquiries stay out of the chef inbox")
	assert.Equal(t, addressed.ID, inbox[0].ID)

	require.NoError(t, svc.UpdateStatus(ctx, chef.ID, addressed.ID, models.InquiryStatusClosed))

	err = svc.UpdateStatus(ctx, chef.ID, addressed.ID, "archived")
	require.Error(t, err)
	assert.Equal(t, 400, apperrors.StatusOf(err))

	err = svc.UpdateStatus(ctx, chef.ID, anon.ID, models.InquiryStatusClosed)
	require.Error(t, err)
	assert.Equal(t, 404, apperrors.StatusOf(err), "anonymous inquiries are not chef-editable")
}
