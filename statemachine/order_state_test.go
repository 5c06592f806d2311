package statemachine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-rakibul-islam/Chef-Origin-Server/apperr"
	"github.com/dev-rakibul-islam/Chef-Origin-Server/models"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    models.OrderStatus
		to      models.OrderStatus
		allowed bool
	}{
		{"pending to confirmed", models.OrderPending, models.OrderConfirmed, true},
		{"pending to cancelled", models.OrderPending, models.OrderCancelled, true},
		{"confirmed to preparing", models.OrderConfirmed, models.OrderPreparing, true},
		{"confirmed to cancelled", models.OrderConfirmed, models.OrderCancelled, true},
		{"preparing to out_for_delivery", models.OrderPreparing, models.OrderOutForDelivery, true},
		{"out_for_delivery to delivered", models.OrderOutForDelivery, models.OrderDelivered, true},
		{"pending to delivered skips states", models.OrderPending, models.OrderDelivered, false},
		{"preparing to cancelled not allowed", models.OrderPreparing, models.OrderCancelled, false},
		{"delivered is terminal", models.OrderDelivered, models.OrderPending, false},
		{"cancelled is terminal", models.OrderCancelled, models.OrderConfirmed, false},
		{"no self transition", models.OrderPending, models.OrderPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanTransition(tt.from, tt.to)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, apperr.KindInvalidTransition, apperr.KindOf(err))
			}
		})
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []models.OrderStatus{
		models.OrderPending, models.OrderConfirmed, models.OrderPreparing,
		models.OrderOutForDelivery, models.OrderDelivered, models.OrderCancelled,
	} {
		assert.True(t, ValidStatus(s), string(s))
	}
	assert.False(t, ValidStatus("shipped"))
	assert.False(t, ValidStatus(""))
}

func TestValidTransitionsFrom(t *testing.T) {
	assert.ElementsMatch(t,
		[]models.OrderStatus{models.OrderConfirmed, models.OrderCancelled},
		ValidTransitionsFrom(models.OrderPending))
	assert.Empty(t, ValidTransitionsFrom(models.OrderDelivered))
	assert.Empty(t, ValidTransitionsFrom(models.OrderCancelled))
}

func TestCanDecide(t *testing.T) {
	assert.NoError(t, CanDecide(models.RequestPending, models.RequestApproved))
	assert.NoError(t, CanDecide(models.RequestPending, models.RequestRejected))

	for _, from := range []models.RequestStatus{models.RequestApproved, models.RequestRejected} {
		for _, to := range []models.RequestStatus{models.RequestApproved, models.RequestRejected, models.RequestPending} {
			err := CanDecide(from, to)
			require.Error(t, err)
			assert.Equal(t, apperr.KindInvalidTransition, apperr.KindOf(err))
		}
	}
}
