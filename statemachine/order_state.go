package statemachine

import (
	"github.com/dev-rakibul-islam/Chef-Origin-Server/apperr"
	"github.com/dev-rakibul-islam/Chef-Origin-Server/models"
)

// Transition defines a valid order state change
type Transition struct {
	From models.OrderStatus
	To   models.OrderStatus
}

// validTransitions is the authoritative order state machine definition.
// delivered and cancelled are terminal.
var validTransitions = []Transition{
	{From: models.OrderPending, To: models.OrderConfirmed},
	{From: models.OrderPending, To: models.OrderCancelled},
	{From: models.OrderConfirmed, To: models.OrderPreparing},
	{From: models.OrderConfirmed, To: models.OrderCancelled},
	{From: models.OrderPreparing, To: models.OrderOutForDelivery},
	{From: models.OrderOutForDelivery, To: models.OrderDelivered},
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[Transition]bool {
	m := make(map[Transition]bool)
	for _, t := range validTransitions {
		m[t] = true
	}
	return m
}()

var allStatuses = map[models.OrderStatus]bool{
	models.OrderPending:        true,
	models.OrderConfirmed:      true,
	models.OrderPreparing:      true,
	models.OrderOutForDelivery: true,
	models.OrderDelivered:      true,
	models.OrderCancelled:      true,
}

// ValidStatus reports whether s belongs to the closed order status set.
func ValidStatus(s models.OrderStatus) bool {
	return allStatuses[s]
}

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	for _, t := range validTransitions {
		if t.From == status {
			nexts = append(nexts, t.To)
		}
	}
	return nexts
}

// CanTransition checks if an order may move from one state to another
func CanTransition(from, to models.OrderStatus) error {
	if transitionMap[Transition{From: from, To: to}] {
		return nil
	}
	return apperr.Newf(apperr.KindInvalidTransition,
		"invalid transition: %s to %s is not allowed; valid transitions from %s are: %s",
		from, to, from, describeValidFrom(from))
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
