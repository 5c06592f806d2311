package store

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dev-rakibul-islam/Chef-Origin-Server/apperr"
	"github.com/dev-rakibul-islam/Chef-Origin-Server/models"
)

type RequestStore struct {
	db *gorm.DB
}

func (s *RequestStore) Create(ctx context.Context, req *models.RoleRequest) error {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	if req.RequestStatus == "" {
		req.RequestStatus = models.RequestPending
	}
	return wrapDB(s.db.WithContext(ctx).Create(req).Error, "failed to create request")
}

func (s *RequestStore) GetByID(ctx context.Context, id string) (*models.RoleRequest, error) {
	var req models.RoleRequest
	if err := s.db.WithContext(ctx).First(&req, "id = ?", id).Error; err != nil {
		return nil, wrapDB(err, "request not found")
	}
	return &req, nil
}

func (s *RequestStore) ListAll(ctx context.Context) ([]models.RoleRequest, error) {
	var reqs []models.RoleRequest
	err := s.db.WithContext(ctx).Order("created_at desc").Find(&reqs).Error
	return reqs, wrapDB(err, "failed to list requests")
}

// HasPending reports whether email already has a pending request of the
// given type.
func (s *RequestStore) HasPending(ctx context.Context, email string, t models.RequestType) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).
		Model(&models.RoleRequest{}).
		Where("user_email = ? AND request_type = ? AND request_status = ?",
			email, t, models.RequestPending).
		Count(&n).Error
	if err != nil {
		return false, wrapDB(err, "failed to check pending requests")
	}
	return n > 0, nil
}

// SetStatus moves a request out of pending with a compare-and-set write.
// Losing the race (or targeting a request already decided) is a Conflict;
// the caller decides whether the terminal state it finds is acceptable.
func (s *RequestStore) SetStatus(ctx context.Context, id string, status models.RequestStatus) error {
	res := s.db.WithContext(ctx).
		Model(&models.RoleRequest{}).
		Where("id = ? AND request_status = ?", id, models.RequestPending).
		Update("request_status", status)
	if res.Error != nil {
		return wrapDB(res.Error, "failed to update request status")
	}
	if res.RowsAffected > 0 {
		return nil
	}
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return apperr.Newf(apperr.KindConflict, "request %s is no longer pending", id)
}
