package models

import "time"

// PaymentStatus tracks settlement of an order. It is monotonic: once an order
// is Paid it never goes back to Pending.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pending"
	PaymentPaid    PaymentStatus = "Paid"
)

// OrderStatus represents all possible states of a meal order
type OrderStatus string

const (
	OrderPending        OrderStatus = "pending"
	OrderConfirmed      OrderStatus = "confirmed"
	OrderPreparing      OrderStatus = "preparing"
	OrderOutForDelivery OrderStatus = "out_for_delivery"
	OrderDelivered      OrderStatus = "delivered"
	OrderCancelled      OrderStatus = "cancelled"
)

type Order struct {
	ID            string        `json:"id" gorm:"primaryKey"`
	FoodID        string        `json:"foodId" gorm:"not null"`
	MealName      string        `json:"mealName" gorm:"not null"`
	Price         float64       `json:"price" gorm:"not null"`
	Quantity      int           `json:"quantity" gorm:"not null"`
	ChefID        string        `json:"chefId" gorm:"index"`
	ChefName      string        `json:"chefName"`
	DeliveryTime  string        `json:"deliveryTime"`
	UserEmail     string        `json:"userEmail" gorm:"index"`
	UserAddress   string        `json:"userAddress"`
	PaymentStatus PaymentStatus `json:"paymentStatus" gorm:"not null;default:'Pending'"`
	OrderStatus   OrderStatus   `json:"orderStatus" gorm:"not null;default:'pending'"`
	TransactionID string        `json:"transactionId,omitempty"` // provider session id, set on settlement
	CreatedAt     time.Time     `json:"orderTime"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}
