package store

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dev-rakibul-islam/Chef-Origin-Server/apperr"
	"github.com/dev-rakibul-islam/Chef-Origin-Server/models"
)

type OrderStore struct {
	db *gorm.DB
}

func (s *OrderStore) Create(ctx context.Context, order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	if order.PaymentStatus == "" {
		order.PaymentStatus = models.PaymentPending
	}
	if order.OrderStatus == "" {
		order.OrderStatus = models.OrderPending
	}
	return wrapDB(s.db.WithContext(ctx).Create(order).Error, "failed to create order")
}

func (s *OrderStore) GetByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	if err := s.db.WithContext(ctx).First(&order, "id = ?", id).Error; err != nil {
		return nil, wrapDB(err, "order not found")
	}
	return &order, nil
}

func (s *OrderStore) ListAll(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.WithContext(ctx).Order("created_at desc").Find(&orders).Error
	return orders, wrapDB(err, "failed to list orders")
}

func (s *OrderStore) ListByUserEmail(ctx context.Context, email string) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.WithContext(ctx).
		Where("user_email = ?", email).
		Order("created_at desc").
		Find(&orders).Error
	return orders, wrapDB(err, "failed to list orders")
}

func (s *OrderStore) ListByChefID(ctx context.Context, chefID string) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.WithContext(ctx).
		Where("chef_id = ?", chefID).
		Order("created_at desc").
		Find(&orders).Error
	return orders, wrapDB(err, "failed to list orders")
}

// MarkPaid flips paymentStatus to Paid and records the provider transaction
// id, but only while the order is still Pending. Paid is monotonic: a second
// call with the same transaction id is a no-op, one with a different id is a
// Conflict, and an unknown order is NotFound.
func (s *OrderStore) MarkPaid(ctx context.Context, orderID, transactionID string) error {
	res := s.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ? AND payment_status = ?", orderID, models.PaymentPending).
		Updates(map[string]any{
			"payment_status": models.PaymentPaid,
			"transaction_id": transactionID,
		})
	if res.Error != nil {
		return wrapDB(res.Error, "failed to mark order paid")
	}
	if res.RowsAffected > 0 {
		return nil
	}
	order, err := s.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.PaymentStatus == models.PaymentPaid && order.TransactionID == transactionID {
		return nil
	}
	return apperr.Newf(apperr.KindConflict, "order %s is already settled", orderID)
}

// UpdateStatus performs a compare-and-set status write: the update applies
// only while the stored status still equals from.
func (s *OrderStore) UpdateStatus(ctx context.Context, orderID string, from, to models.OrderStatus) error {
	res := s.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ? AND order_status = ?", orderID, from).
		Update("order_status", to)
	if res.Error != nil {
		return wrapDB(res.Error, "failed to update order status")
	}
	if res.RowsAffected > 0 {
		return nil
	}
	if _, err := s.GetByID(ctx, orderID); err != nil {
		return err
	}
	return apperr.Newf(apperr.KindConflict, "order %s changed state concurrently", orderID)
}

func (s *OrderStore) CountByStatus(ctx context.Context, status models.OrderStatus) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("order_status = ?", status).
		Count(&n).Error
	return n, wrapDB(err, "failed to count orders")
}

func (s *OrderStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Order{}).Count(&n).Error
	return n, wrapDB(err, "failed to count orders")
}

// RevenueTotal sums price*quantity over all orders.
func (s *OrderStore) RevenueTotal(ctx context.Context) (float64, error) {
	var total float64
	err := s.db.WithContext(ctx).
		Model(&models.Order{}).
		Select("COALESCE(SUM(price * quantity), 0)").
		Scan(&total).Error
	return total, wrapDB(err, "failed to sum revenue")
}
