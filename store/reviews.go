package store

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dev-rakibul-islam/Chef-Origin-Server/apperr"
	"github.com/dev-rakibul-islam/Chef-Origin-Server/models"
)

type ReviewStore struct {
	db *gorm.DB
}

func (s *ReviewStore) Create(ctx context.Context, review *models.Review) error {
	if review.ID == "" {
		review.ID = uuid.NewString()
	}
	return wrapDB(s.db.WithContext(ctx).Create(review).Error, "failed to create review")
}

func (s *ReviewStore) List(ctx context.Context, reviewerEmail string, limit int) ([]models.Review, error) {
	var reviews []models.Review
	q := s.db.WithContext(ctx)
	if reviewerEmail != "" {
		q = q.Where("reviewer_email = ?", reviewerEmail)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&reviews).Error
	return reviews, wrapDB(err, "failed to list reviews")
}

func (s *ReviewStore) ListForMeal(ctx context.Context, foodID string) ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.WithContext(ctx).Where("food_id = ?", foodID).Find(&reviews).Error
	return reviews, wrapDB(err, "failed to list reviews")
}

func (s *ReviewStore) Update(ctx context.Context, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	res := s.db.WithContext(ctx).Model(&models.Review{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return wrapDB(res.Error, "failed to update review")
	}
	if res.RowsAffected == 0 {
		return apperr.New(apperr.KindNotFound, "review not found")
	}
	return nil
}

func (s *ReviewStore) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&models.Review{}, "id = ?", id)
	if res.Error != nil {
		return wrapDB(res.Error, "failed to delete review")
	}
	if res.RowsAffected == 0 {
		return apperr.New(apperr.KindNotFound, "review not found")
	}
	return nil
}
