package store

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dev-rakibul-islam/Chef-Origin-Server/apperr"
	"github.com/dev-rakibul-islam/Chef-Origin-Server/models"
)

type FavoriteStore struct {
	db *gorm.DB
}

func (s *FavoriteStore) Add(ctx context.Context, fav *models.Favorite) error {
	if fav.ID == "" {
		fav.ID = uuid.NewString()
	}
	return wrapDB(s.db.WithContext(ctx).Create(fav).Error, "failed to add favorite")
}

func (s *FavoriteStore) ListForUser(ctx context.Context, email string) ([]models.Favorite, error) {
	var favs []models.Favorite
	err := s.db.WithContext(ctx).Where("user_email = ?", email).Find(&favs).Error
	return favs, wrapDB(err, "failed to list favorites")
}

func (s *FavoriteStore) Remove(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&models.Favorite{}, "id = ?", id)
	if res.Error != nil {
		return wrapDB(res.Error, "failed to remove favorite")
	}
	if res.RowsAffected == 0 {
		return apperr.New(apperr.KindNotFound, "favorite not found")
	}
	return nil
}
