package models

import "time"

// RequestType is the role a user asks to be escalated to
type RequestType string

const (
	RequestChef  RequestType = "chef"
	RequestAdmin RequestType = "admin"
)

// ValidRequestType reports whether t is an accepted escalation target.
func ValidRequestType(t RequestType) bool {
	return t == RequestChef || t == RequestAdmin
}

// RequestStatus is the lifecycle state of a role request.
// pending is the only non-terminal state.
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

// RoleRequest is a user's escalation request, decided exactly once by an admin.
type RoleRequest struct {
	ID            string        `json:"id" gorm:"primaryKey"`
	UserName      string        `json:"userName" gorm:"not null"`
	UserEmail     string        `json:"userEmail" gorm:"not null;index"`
	RequestType   RequestType   `json:"requestType" gorm:"not null"`
	RequestStatus RequestStatus `json:"requestStatus" gorm:"not null;default:'pending'"`
	CreatedAt     time.Time     `json:"requestTime"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}
