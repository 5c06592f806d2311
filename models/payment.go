package models

import "time"

// Payment is one row of the append-only payment ledger. A record is written
// exactly once per verified settlement, keyed by the provider transaction id.
type Payment struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	OrderID       string    `json:"orderId" gorm:"not null;index"`
	TransactionID string    `json:"transactionId" gorm:"uniqueIndex;not null"`
	Amount        float64   `json:"amount" gorm:"not null"` // settled total in major currency units
	Currency      string    `json:"currency" gorm:"not null"`
	Status        string    `json:"paymentStatus" gorm:"not null;default:'paid'"`
	CreatedAt     time.Time `json:"date"`
}
