package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chefincasa/backend/internal/apperrors"
	"github.com/chefincasa/backend/internal/models"
	"github.com/chefincasa/backend/internal/testhelpers"
	"github.com/chefincasa/backend/internal/types"
)

func strptr(s string) *string { return &s }

func TestProfileGetBeforeFirstWrite(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	chef := testhelpers.CreateTestChef(t, db, "chef@example.com")
	svc := NewProfileService(db)

	profile, err := svc.Get(context.Background(), chef.ID)
	require.NoError(t, err)
	assert.Equal(t, chef.ID, profile.ChefID)
	assert.Empty(t, profile.Bio)
	assert.NotNil(t, profile.Skills)

	// No row was created by the read
	var count int64
	require.NoError(t, db.Model(&models.ChefProfile{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestProfileUpdateCreatesLazily(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	chef := testhelpers.CreateTestChef(t, db, "chef@example.com")
	svc := NewProfileService(db)
	ctx := context.Background()

	profile, err := svc.Update(ctx, chef.ID, &types.UpdateProfileRequest{
		Bio:       strptr("Cucino da vent'anni"),
		Languages: &[]string{"it", "en", "it"},
		Skills:    &[]string{"pasticceria", "cucina vegana"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Cucino da vent'anni", profile.Bio)
	assert.Equal(t, models.JSONBStringArray{"it", "en"}, profile.Languages, "duplicates collapse")
	assert.Len(t, profile.Skills, 2)

	// Second update hits the existing row
	profile, err = svc.Update(ctx, chef.ID, &types.UpdateProfileRequest{
		Region: strptr("Toscana"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Toscana", profile.Region)
	assert.Equal(t, "Cucino da vent'anni", profile.Bio, "untouched fields survive")

	var count int64
	require.NoError(t, db.Model(&models.ChefProfile{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestProfileSkillsLimit(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	chef := testhelpers.CreateTestChef(t, db, "chef@example.com")
	svc := NewProfileService(db)

	_, err := svc.Update(context.Background(), chef.ID, &types.UpdateProfileRequest{
		Skills: &[]string{"a", "b", "c", "d", "e", "f"},
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperrors.StatusOf(err))
	assert.EqualError(t, err, "massimo 5 competenze")
}

func TestProfileWebsiteValidation(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	chef := testhelpers.CreateTestChef(t, db, "chef@example.com")
	svc := NewProfileService(db)
	ctx := context.Background()

	_, err := svc.Update(ctx, chef.ID, &types.UpdateProfileRequest{
		Website: types.NullableString{Set: true, Value: strptr("javascript:alert(1)")},
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperrors.StatusOf(err))

	profile, err := svc.Update(ctx, chef.ID, &types.UpdateProfileRequest{
		Website: types.NullableString{Set: true, Value: strptr("https://mariorossi.it")},
	})
	require.NoError(t, err)
	assert.Equal(t, "https://mariorossi.it", profile.Website)

	// Explicit null clears it
	profile, err = svc.Update(ctx, chef.ID, &types.UpdateProfileRequest{
		Website: types.NullableString{Set: true, Value: nil},
	})
	require.NoError(t, err)
	assert.Empty(t, profile.Website)
}
