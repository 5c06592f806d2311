package models

import "time"

type Favorite struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserEmail string    `json:"userEmail" gorm:"not null;index"`
	MealID    string    `json:"mealId" gorm:"not null"`
	MealName  string    `json:"mealName"`
	ChefID    string    `json:"chefId"`
	ChefName  string    `json:"chefName"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"addedTime"`
}
