package models

import "time"

type Meal struct {
	ID                    string    `json:"id" gorm:"primaryKey"`
	FoodName              string    `json:"foodName" gorm:"not null"`
	ChefName              string    `json:"chefName"`
	FoodImage             string    `json:"foodImage"`
	Price                 float64   `json:"price" gorm:"not null"`
	Rating                float64   `json:"rating" gorm:"default:0"`
	Ingredients           []string  `json:"ingredients" gorm:"serializer:json"`
	EstimatedDeliveryTime string    `json:"estimatedDeliveryTime"`
	ChefExperience        string    `json:"chefExperience"`
	ChefID                string    `json:"chefId" gorm:"index"`
	UserEmail             string    `json:"userEmail" gorm:"index"`
	DeliveryArea          string    `json:"deliveryArea"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}
