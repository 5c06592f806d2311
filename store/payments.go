package store

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dev-rakibul-islam/Chef-Origin-Server/models"
)

// PaymentStore owns the append-only payment ledger. The unique index on
// transaction_id makes a double insert for the same settlement a Conflict
// even when two confirmations race.
type PaymentStore struct {
	db *gorm.DB
}

func (s *PaymentStore) Insert(ctx context.Context, payment *models.Payment) error {
	if payment.ID == "" {
		payment.ID = uuid.NewString()
	}
	if payment.Status == "" {
		payment.Status = "paid"
	}
	return wrapDB(s.db.WithContext(ctx).Create(payment).Error, "failed to record payment")
}

func (s *PaymentStore) GetByTransactionID(ctx context.Context, transactionID string) (*models.Payment, error) {
	var payment models.Payment
	err := s.db.WithContext(ctx).First(&payment, "transaction_id = ?", transactionID).Error
	if err != nil {
		return nil, wrapDB(err, "payment not found")
	}
	return &payment, nil
}

func (s *PaymentStore) ListAll(ctx context.Context) ([]models.Payment, error) {
	var payments []models.Payment
	err := s.db.WithContext(ctx).Order("created_at desc").Find(&payments).Error
	return payments, wrapDB(err, "failed to list payments")
}
