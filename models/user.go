package models

import "time"

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleChef  UserRole = "chef"
	RoleAdmin UserRole = "admin"
)

// ValidRole reports whether r is one of the accepted roles.
func ValidRole(r UserRole) bool {
	switch r {
	case RoleUser, RoleChef, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	UID          string    `json:"uid" gorm:"uniqueIndex"` // external auth subject id
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-"`
	PhotoURL     string    `json:"photoURL"`
	Address      string    `json:"address"`
	Role         UserRole  `json:"role" gorm:"not null;default:'user'"`
	ChefID       string    `json:"chefId,omitempty" gorm:"index"` // set only when Role is chef, format chef-####
	Status       string    `json:"status" gorm:"default:'active'"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
