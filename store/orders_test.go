package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-rakibul-islam/Chef-Origin-Server/apperr"
	"github.com/dev-rakibul-islam/Chef-Origin-Server/models"
	"github.com/dev-rakibul-islam/Chef-Origin-Server/testutil"
)

func seedOrder(t *testing.T, s *models.Order) *models.Order {
	t.Helper()
	if s.FoodID == "" {
		s.FoodID = "food-1"
	}
	if s.MealName == "" {
		s.MealName = "Biryani"
	}
	if s.Price == 0 {
		s.Price = 12.50
	}
	if s.Quantity == 0 {
		s.Quantity = 2
	}
	return s
}

func TestOrderMarkPaid(t *testing.T) {
	stores := testutil.NewStores(t)
	ctx := context.Background()

	order := seedOrder(t, &models.Order{UserEmail: "amina@example.com"})
	require.NoError(t, stores.Orders.Create(ctx, order))

	require.NoError(t, stores.Orders.MarkPaid(ctx, order.ID, "cs_test_1"))

	got, err := stores.Orders.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, got.PaymentStatus)
	assert.Equal(t, "cs_test_1", got.TransactionID)

	// Same transaction again is a no-op
	require.NoError(t, stores.Orders.MarkPaid(ctx, order.ID, "cs_test_1"))

	// A different transaction must not overwrite a settled order
	err = stores.Orders.MarkPaid(ctx, order.ID, "cs_test_2")
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	got, err = stores.Orders.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, got.PaymentStatus)
	assert.Equal(t, "cs_test_1", got.TransactionID)
}

func TestOrderMarkPaidNotFound(t *testing.T) {
	stores := testutil.NewStores(t)

	err := stores.Orders.MarkPaid(context.Background(), "missing", "cs_test_1")
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestOrderUpdateStatusCAS(t *testing.T) {
	stores := testutil.NewStores(t)
	ctx := context.Background()

	order := seedOrder(t, &models.Order{})
	require.NoError(t, stores.Orders.Create(ctx, order))

	require.NoError(t, stores.Orders.UpdateStatus(ctx, order.ID, models.OrderPending, models.OrderConfirmed))

	// The pre-state no longer matches, so the write must not apply
	err := stores.Orders.UpdateStatus(ctx, order.ID, models.OrderPending, models.OrderCancelled)
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	got, err := stores.Orders.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderConfirmed, got.OrderStatus)
}

func TestPaymentLedgerUniqueTransaction(t *testing.T) {
	stores := testutil.NewStores(t)
	ctx := context.Background()

	first := &models.Payment{OrderID: "o1", TransactionID: "cs_test_1", Amount: 25, Currency: "usd"}
	require.NoError(t, stores.Payments.Insert(ctx, first))

	dup := &models.Payment{OrderID: "o1", TransactionID: "cs_test_1", Amount: 25, Currency: "usd"}
	err := stores.Payments.Insert(ctx, dup)
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	got, err := stores.Payments.GetByTransactionID(ctx, "cs_test_1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
}

func TestRequestSetStatusCAS(t *testing.T) {
	stores := testutil.NewStores(t)
	ctx := context.Background()

	req := &models.RoleRequest{UserName: "Rakib", UserEmail: "rakib@example.com", RequestType: models.RequestChef}
	require.NoError(t, stores.Requests.Create(ctx, req))
	assert.Equal(t, models.RequestPending, req.RequestStatus)

	require.NoError(t, stores.Requests.SetStatus(ctx, req.ID, models.RequestApproved))

	err := stores.Requests.SetStatus(ctx, req.ID, models.RequestRejected)
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	got, err := stores.Requests.GetByID(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RequestApproved, got.RequestStatus)
}
