package store

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dev-rakibul-islam/Chef-Origin-Server/apperr"
	"github.com/dev-rakibul-islam/Chef-Origin-Server/models"
)

type MealStore struct {
	db *gorm.DB
}

func (s *MealStore) Create(ctx context.Context, meal *models.Meal) error {
	if meal.ID == "" {
		meal.ID = uuid.NewString()
	}
	return wrapDB(s.db.WithContext(ctx).Create(meal).Error, "failed to create meal")
}

func (s *MealStore) GetByID(ctx context.Context, id string) (*models.Meal, error) {
	var meal models.Meal
	if err := s.db.WithContext(ctx).First(&meal, "id = ?", id).Error; err != nil {
		return nil, wrapDB(err, "meal not found")
	}
	return &meal, nil
}

func (s *MealStore) List(ctx context.Context, limit int) ([]models.Meal, error) {
	var meals []models.Meal
	q := s.db.WithContext(ctx)
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&meals).Error
	return meals, wrapDB(err, "failed to list meals")
}

// GetByIDs fetches meals keyed by id, used to decorate reviews.
func (s *MealStore) GetByIDs(ctx context.Context, ids []string) (map[string]models.Meal, error) {
	byID := make(map[string]models.Meal, len(ids))
	if len(ids) == 0 {
		return byID, nil
	}
	var meals []models.Meal
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&meals).Error; err != nil {
		return nil, wrapDB(err, "failed to fetch meals")
	}
	for _, m := range meals {
		byID[m.ID] = m
	}
	return byID, nil
}

func (s *MealStore) Update(ctx context.Context, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	// Map-based Updates bypass the model's json serializer, so the
	// ingredients slice must be encoded before it reaches the driver.
	if ing, ok := fields["ingredients"].([]string); ok {
		encoded, err := json.Marshal(ing)
		if err != nil {
			return apperr.Wrap(apperr.KindInvalidArgument, "invalid ingredients", err)
		}
		fields["ingredients"] = string(encoded)
	}
	res := s.db.WithContext(ctx).Model(&models.Meal{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return wrapDB(res.Error, "failed to update meal")
	}
	if res.RowsAffected == 0 {
		return apperr.New(apperr.KindNotFound, "meal not found")
	}
	return nil
}

func (s *MealStore) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&models.Meal{}, "id = ?", id)
	if res.Error != nil {
		return wrapDB(res.Error, "failed to delete meal")
	}
	if res.RowsAffected == 0 {
		return apperr.New(apperr.KindNotFound, "meal not found")
	}
	return nil
}
