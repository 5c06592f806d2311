// Package payments holds the checkout orchestration and payment
// reconciliation logic around a hosted-checkout provider.
package payments

import "context"

// SessionStatusPaid is the provider settlement status that confirms funds
// have cleared for a session.
const SessionStatusPaid = "paid"

// SessionParams describes the single-line-item checkout session to open.
type SessionParams struct {
	Currency      string
	ProductName   string
	UnitAmount    int64 // minor currency units
	Quantity      int64
	SuccessURL    string
	CancelURL     string
	CustomerEmail string // pre-fill hint, optional
	Metadata      map[string]string
}

// Session is the provider's view of one attempted payment. It is ephemeral:
// referenced by id, never stored locally.
type Session struct {
	ID            string
	URL           string
	PaymentStatus string
	AmountTotal   int64 // settled total in minor currency units
	Currency      string
	Metadata      map[string]string
}

// Provider wraps the external hosted-checkout service.
type Provider interface {
	CreateSession(ctx context.Context, params SessionParams) (*Session, error)
	GetSession(ctx context.Context, id string) (*Session, error)
}
