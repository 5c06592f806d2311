package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-rakibul-islam/Chef-Origin-Server/apperr"
	"github.com/dev-rakibul-islam/Chef-Origin-Server/handlers"
	"github.com/dev-rakibul-islam/Chef-Origin-Server/models"
	"github.com/dev-rakibul-islam/Chef-Origin-Server/payments"
	"github.com/dev-rakibul-islam/Chef-Origin-Server/store"
	"github.com/dev-rakibul-islam/Chef-Origin-Server/testutil"
)

type stubProvider struct {
	sessions map[string]*payments.Session
}

func (s *stubProvider) CreateSession(_ context.Context, params payments.SessionParams) (*payments.Session, error) {
	sess := &payments.Session{
		ID:            "cs_stub_1",
		URL:           "https://checkout.example.com/cs_stub_1",
		PaymentStatus: "unpaid",
		Currency:      params.Currency,
		Metadata:      params.Metadata,
	}
	if s.sessions == nil {
		s.sessions = map[string]*payments.Session{}
	}
	s.sessions[sess.ID] = sess
	return sess, nil
}

func (s *stubProvider) GetSession(_ context.Context, id string) (*payments.Session, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, apperr.Newf(apperr.KindProvider, "no such session %s", id)
	}
	return sess, nil
}

func newPaymentRouter(t *testing.T) (*gin.Engine, *store.Stores, *stubProvider) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	stores := testutil.NewStores(t)
	provider := &stubProvider{}
	rec := payments.NewReconciler(stores, provider, "usd", "https://cheforigin.example.com")

	oh := &handlers.OrderHandler{Orders: stores.Orders, Reconciler: rec, Timeout: 5 * time.Second}
	ph := &handlers.PaymentHandler{Reconciler: rec, Payments: stores.Payments, Timeout: 5 * time.Second}

	r := gin.New()
	r.POST("/api/orders", oh.Create)
	r.PUT("/api/orders/:id/status", oh.UpdateStatus)
	r.POST("/api/checkout-sessions", ph.CreateCheckoutSession)
	r.POST("/api/payments/confirm", ph.Confirm)
	return r, stores, provider
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateOrderEndpoint(t *testing.T) {
	r, _, _ := newPaymentRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/orders", gin.H{
		"foodId":      "food-1",
		"mealName":    "Kacchi Biryani",
		"price":       12.50,
		"quantity":    2,
		"chefId":      "chef-1234",
		"chefName":    "Chef Karim",
		"userEmail":   "amina@example.com",
		"userAddress": "12 Lake Road",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Order models.Order `json:"order"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Order.ID)
	assert.Equal(t, models.PaymentPending, resp.Order.PaymentStatus)
	assert.Equal(t, models.OrderPending, resp.Order.OrderStatus)
}

func TestCheckoutSessionEndpointOrderNotFound(t *testing.T) {
	r, _, _ := newPaymentRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/checkout-sessions", gin.H{"orderId": "missing"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCheckoutAndConfirmFlow(t *testing.T) {
	r, stores, provider := newPaymentRouter(t)
	ctx := context.Background()

	order := &models.Order{
		FoodID: "food-1", MealName: "Kacchi Biryani", Price: 12.50, Quantity: 2,
		UserEmail: "amina@example.com",
	}
	require.NoError(t, stores.Orders.Create(ctx, order))

	w := doJSON(t, r, http.MethodPost, "/api/checkout-sessions", gin.H{"orderId": order.ID})
	require.Equal(t, http.StatusOK, w.Code)

	var checkout struct {
		URL       string `json:"url"`
		SessionID string `json:"sessionId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &checkout))
	assert.Equal(t, "cs_stub_1", checkout.SessionID)
	assert.NotEmpty(t, checkout.URL)

	// Unpaid session: confirmation must fail and leave no trace
	w = doJSON(t, r, http.MethodPost, "/api/payments/confirm", gin.H{
		"sessionId": checkout.SessionID, "orderId": order.ID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	provider.sessions[checkout.SessionID].PaymentStatus = "paid"
	provider.sessions[checkout.SessionID].AmountTotal = 2500

	w = doJSON(t, r, http.MethodPost, "/api/payments/confirm", gin.H{
		"sessionId": checkout.SessionID, "orderId": order.ID,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var confirm struct {
		PaymentID string  `json:"paymentId"`
		Amount    float64 `json:"amount"`
		Currency  string  `json:"currency"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &confirm))
	assert.Equal(t, 25.00, confirm.Amount)
	assert.Equal(t, "usd", confirm.Currency)

	// Replayed callback returns the same ledger entry
	w = doJSON(t, r, http.MethodPost, "/api/payments/confirm", gin.H{
		"sessionId": checkout.SessionID, "orderId": order.ID,
	})
	require.Equal(t, http.StatusOK, w.Code)
	var replay struct {
		PaymentID string `json:"paymentId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &replay))
	assert.Equal(t, confirm.PaymentID, replay.PaymentID)
}

func TestUpdateOrderStatusEndpoint(t *testing.T) {
	r, stores, _ := newPaymentRouter(t)
	ctx := context.Background()

	order := &models.Order{FoodID: "food-1", MealName: "Biryani", Price: 10, Quantity: 1}
	require.NoError(t, stores.Orders.Create(ctx, order))

	w := doJSON(t, r, http.MethodPut, "/api/orders/"+order.ID+"/status", gin.H{"orderStatus": "confirmed"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/orders/"+order.ID+"/status", gin.H{"orderStatus": "delivered"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/orders/"+order.ID+"/status", gin.H{"orderStatus": "shipped"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/orders/missing/status", gin.H{"orderStatus": "confirmed"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
