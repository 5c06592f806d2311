package payments

import (
	"context"
	"fmt"
	"math"

	"github.com/dev-rakibul-islam/Chef-Origin-Server/apperr"
	"github.com/dev-rakibul-islam/Chef-Origin-Server/models"
	"github.com/dev-rakibul-islam/Chef-Origin-Server/statemachine"
	"github.com/dev-rakibul-islam/Chef-Origin-Server/store"
)

// metadata key carrying the order id through the provider session
const metaOrderID = "orderId"

// Reconciler opens checkout sessions for orders and reconciles settled
// sessions into the order store and payment ledger.
type Reconciler struct {
	stores     *store.Stores
	provider   Provider
	currency   string
	siteDomain string
}

func NewReconciler(stores *store.Stores, provider Provider, currency, siteDomain string) *Reconciler {
	return &Reconciler{
		stores:     stores,
		provider:   provider,
		currency:   currency,
		siteDomain: siteDomain,
	}
}

// CheckoutResult is what the client needs to complete payment out-of-band.
type CheckoutResult struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

// CreateCheckoutSession opens a provider session for an existing order.
// Provider rejections propagate as PaymentProviderError, never retried here.
func (r *Reconciler) CreateCheckoutSession(ctx context.Context, orderID string) (*CheckoutResult, error) {
	order, err := r.stores.Orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	params := SessionParams{
		Currency:    r.currency,
		ProductName: order.MealName,
		UnitAmount:  int64(math.Round(order.Price * 100)),
		Quantity:    int64(order.Quantity),
		SuccessURL: fmt.Sprintf("%s/payment/success?session_id={CHECKOUT_SESSION_ID}&orderId=%s",
			r.siteDomain, orderID),
		CancelURL: r.siteDomain + "/dashboard/orders",
		Metadata: map[string]string{
			metaOrderID: orderID,
			"userEmail": order.UserEmail,
		},
	}
	if order.UserEmail != "" {
		params.CustomerEmail = order.UserEmail
	}

	sess, err := r.provider.CreateSession(ctx, params)
	if err != nil {
		return nil, err
	}
	return &CheckoutResult{SessionID: sess.ID, URL: sess.URL}, nil
}

// ConfirmResult reports the ledger entry a settled session reconciled to.
type ConfirmResult struct {
	PaymentID string  `json:"paymentId"`
	OrderID   string  `json:"orderId"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
}

// ConfirmPayment verifies settlement with the provider and applies the
// order+ledger update as one transaction. It is idempotent on session id:
// a session already reconciled returns the existing ledger entry and writes
// nothing.
func (r *Reconciler) ConfirmPayment(ctx context.Context, sessionID, fallbackOrderID string) (*ConfirmResult, error) {
	sess, err := r.provider.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.PaymentStatus != SessionStatusPaid {
		return nil, apperr.Newf(apperr.KindPaymentNotVerified,
			"payment not verified: session %s is %s", sessionID, sess.PaymentStatus)
	}

	// Prefer the order id embedded in provider-side metadata over the
	// caller-supplied one; the metadata cannot be tampered with client-side.
	orderID := sess.Metadata[metaOrderID]
	if orderID == "" {
		orderID = fallbackOrderID
	}
	if orderID == "" {
		return nil, apperr.New(apperr.KindInvalidArgument, "no order id for session")
	}

	if existing, err := r.stores.Payments.GetByTransactionID(ctx, sessionID); err == nil {
		return confirmResultFor(existing), nil
	} else if apperr.KindOf(err) != apperr.KindNotFound {
		return nil, err
	}

	payment := &models.Payment{
		OrderID:       orderID,
		TransactionID: sessionID,
		Amount:        float64(sess.AmountTotal) / 100,
		Currency:      sess.Currency,
		Status:        "paid",
	}
	err = r.stores.Transaction(ctx, func(tx *store.Stores) error {
		if err := tx.Payments.Insert(ctx, payment); err != nil {
			return err
		}
		return tx.Orders.MarkPaid(ctx, orderID, sessionID)
	})
	if err != nil {
		// A concurrent confirmation may have won the unique-index race on
		// transaction_id; its ledger entry is the answer.
		if apperr.KindOf(err) == apperr.KindConflict {
			if existing, lookupErr := r.stores.Payments.GetByTransactionID(ctx, sessionID); lookupErr == nil {
				return confirmResultFor(existing), nil
			}
		}
		return nil, err
	}
	return confirmResultFor(payment), nil
}

func confirmResultFor(p *models.Payment) *ConfirmResult {
	return &ConfirmResult{
		PaymentID: p.ID,
		OrderID:   p.OrderID,
		Amount:    p.Amount,
		Currency:  p.Currency,
	}
}

// UpdateOrderStatus moves an order through its lifecycle. The new status must
// belong to the closed status set and be reachable from the current state.
func (r *Reconciler) UpdateOrderStatus(ctx context.Context, orderID string, next models.OrderStatus) (*models.Order, error) {
	if !statemachine.ValidStatus(next) {
		return nil, apperr.Newf(apperr.KindInvalidState, "unknown order status %q", next)
	}
	order, err := r.stores.Orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := statemachine.CanTransition(order.OrderStatus, next); err != nil {
		return nil, err
	}
	if err := r.stores.Orders.UpdateStatus(ctx, orderID, order.OrderStatus, next); err != nil {
		return nil, err
	}
	order.OrderStatus = next
	return order, nil
}
