package models

import "time"

type Review struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	FoodID        string    `json:"foodId" gorm:"not null;index"`
	ReviewerName  string    `json:"reviewerName"`
	ReviewerEmail string    `json:"reviewerEmail" gorm:"index"`
	ReviewerImage string    `json:"reviewerImage"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment"`
	MealName      string    `json:"mealName,omitempty" gorm:"-"`  // decorated from the meal on read
	MealImage     string    `json:"mealImage,omitempty" gorm:"-"` // decorated from the meal on read
	CreatedAt     time.Time `json:"date"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
