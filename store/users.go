package store

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dev-rakibul-islam/Chef-Origin-Server/apperr"
	"github.com/dev-rakibul-islam/Chef-Origin-Server/models"
)

type UserStore struct {
	db *gorm.DB
}

func (s *UserStore) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	if user.Status == "" {
		user.Status = "active"
	}
	return wrapDB(s.db.WithContext(ctx).Create(user).Error, "failed to create user")
}

func (s *UserStore) GetByUID(ctx context.Context, uid string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "uid = ?", uid).Error; err != nil {
		return nil, wrapDB(err, "user not found")
	}
	return &user, nil
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, wrapDB(err, "user not found")
	}
	return &user, nil
}

func (s *UserStore) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := s.db.WithContext(ctx).Find(&users).Error
	return users, wrapDB(err, "failed to list users")
}

func (s *UserStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.User{}).Count(&n).Error
	return n, wrapDB(err, "failed to count users")
}

// UpdateProfile applies the non-empty fields to the user matched by uid.
func (s *UserStore) UpdateProfile(ctx context.Context, uid string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	res := s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("uid = ?", uid).
		Updates(fields)
	if res.Error != nil {
		return wrapDB(res.Error, "failed to update user")
	}
	if res.RowsAffected == 0 {
		return apperr.New(apperr.KindNotFound, "user not found")
	}
	return nil
}

// Promote sets the role (and chefId when escalating to chef) on the user
// matched by email. NotFound when the email resolves to no account.
func (s *UserStore) Promote(ctx context.Context, email string, role models.UserRole, chefID string) error {
	fields := map[string]any{"role": role}
	if chefID != "" {
		fields["chef_id"] = chefID
	}
	res := s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email).
		Updates(fields)
	if res.Error != nil {
		return wrapDB(res.Error, "failed to update user role")
	}
	if res.RowsAffected == 0 {
		return apperr.Newf(apperr.KindNotFound, "no user with email %s", email)
	}
	return nil
}

// ChefIDTaken reports whether a chef identifier is already assigned.
func (s *UserStore) ChefIDTaken(ctx context.Context, chefID string) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("chef_id = ?", chefID).
		Count(&n).Error
	if err != nil {
		return false, wrapDB(err, "failed to check chef id")
	}
	return n > 0, nil
}
