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

func TestDishCreateNormalizes(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	chef := testhelpers.CreateTestChef(t, db, "chef@example.com")
	svc := NewDishService(db)
	ctx := context.Background()

	empty := "   "
	dish, err := svc.Create(ctx, chef.ID, &types.CreateDishRequest{
		NomePiatto:  "  Risotto ai funghi  ",
		Categoria:   models.CategoryPrimoPiatto,
		Descrizione: &empty,
		FoodType:    models.FoodTypeVerdura,
	})
	require.NoError(t, err)
	assert.Equal(t, "Risotto ai funghi", dish.NomePiatto)
	assert.Nil(t, dish.Descrizione, "blank description becomes NULL")
}

func TestDishOwnershipScoping(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	owner := testhelpers.CreateTestChef(t, db, "owner@example.com")
	other := testhelpers.CreateTestChef(t, db, "other@example.com")
	dish := testhelpers.CreateTestDish(t, db, owner, "Lasagna")
	svc := NewDishService(db)
	ctx := context.Background()

	_, err := svc.Get(ctx, owner.ID, dish.ID)
	require.NoError(t, err)

	// Another chef's dish answers like a missing one
	_, err = svc.Get(ctx, other.ID, dish.ID)
	require.Error(t, err)
	assert.Equal(t, 404, apperrors.StatusOf(err))
	assert.EqualError(t, err, "Piatto non trovato")

	err = svc.Delete(ctx, other.ID, dish.ID)
	require.Error(t, err)
	assert.Equal(t, 404, apperrors.StatusOf(err))
}

func TestDishListFilterAndOrder(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	chef := testhelpers.CreateTestChef(t, db, "chef@example.com")
	svc := NewDishService(db)
	ctx := context.Background()

	_, err := svc.Create(ctx, chef.ID, &types.CreateDishRequest{
		NomePiatto: "Bruschetta", Categoria: models.CategoryAntipasto, FoodType: models.FoodTypeVerdura,
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, chef.ID, &types.CreateDishRequest{
		NomePiatto: "Tiramisù", Categoria: models.CategoryDessert, FoodType: models.FoodTypeVerdura,
	})
	require.NoError(t, err)

	all, err := svc.List(ctx, chef.ID, "", 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	desserts, err := svc.List(ctx, chef.ID, models.CategoryDessert, 0)
	require.NoError(t, err)
	require.Len(t, desserts, 1)
	assert.Equal(t, "Tiramisù", desserts[0].NomePiatto)
}

func TestDishPartialUpdate(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	chef := testhelpers.CreateTestChef(t, db, "chef@example.com")
	dish := testhelpers.CreateTestDish(t, db, chef, "Lasagna")
	svc := NewDishService(db)
	ctx := context.Background()

	newName := "Lasagna alla bolognese"
	updated, err := svc.Update(ctx, chef.ID, dish.ID, &types.UpdateDishRequest{
		NomePiatto: &newName,
	})
	require.NoError(t, err)
	assert.Equal(t, "Lasagna alla bolognese", updated.NomePiatto)
	assert.Equal(t, dish.Categoria, updated.Categoria, "untouched fields survive")
	require.NotNil(t, updated.Descrizione)

	// Explicit null clears the description; an absent field leaves it alone
	updated, err = svc.Update(ctx, chef.ID, dish.ID, &types.UpdateDishRequest{
		Descrizione: types.NullableString{Set: true, Value: nil},
	})
	require.NoError(t, err)
	assert.Nil(t, updated.Descrizione)

	ft := models.FoodTypePesce
	updated, err = svc.Update(ctx, chef.ID, dish.ID, &types.UpdateDishRequest{FoodType: &ft})
	require.NoError(t, err)
	assert.Nil(t, updated.Descrizione, "absent description stays cleared")
	assert.Equal(t, models.FoodTypePesce, updated.FoodType)
}

func TestDishHardDelete(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	chef := testhelpers.CreateTestChef(t, db, "chef@example.com")
	dish := testhelpers.CreateTestDish(t, db, chef, "Lasagna")
	svc := NewDishService(db)
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, chef.ID, dish.ID))

	var count int64
	require.NoError(t, db.Model(&models.Dish{}).Where("id = ?", dish.ID).Count(&count).Error)
	assert.Zero(t, count, "row is gone, not soft-deleted")

	err := svc.Delete(ctx, chef.ID, dish.ID)
	require.Error(t, err)
	assert.Equal(t, 404, apperrors.StatusOf(err))
}
