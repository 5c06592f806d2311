package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-rakibul-islam/Chef-Origin-Server/apperr"
	"github.com/dev-rakibul-islam/Chef-Origin-Server/models"
	"github.com/dev-rakibul-islam/Chef-Origin-Server/testutil"
)

func TestMealUpdateIngredients(t *testing.T) {
	stores := testutil.NewStores(t)
	ctx := context.Background()

	meal := &models.Meal{
		FoodName:    "Kacchi Biryani",
		Price:       14.00,
		Ingredients: []string{"rice", "mutton"},
	}
	require.NoError(t, stores.Meals.Create(ctx, meal))

	err := stores.Meals.Update(ctx, meal.ID, map[string]any{
		"price":       15.50,
		"ingredients": []string{"rice", "mutton", "saffron"},
	})
	require.NoError(t, err)

	got, err := stores.Meals.GetByID(ctx, meal.ID)
	require.NoError(t, err)
	assert.Equal(t, 15.50, got.Price)
	assert.Equal(t, []string{"rice", "mutton", "saffron"}, got.Ingredients)
}

func TestMealUpdateNotFound(t *testing.T) {
	stores := testutil.NewStores(t)

	err := stores.Meals.Update(context.Background(), "missing", map[string]any{"price": 9.99})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
