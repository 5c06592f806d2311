// Package roles manages escalation requests (user -> chef/admin) and the
// resulting user role mutation.
package roles

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/dev-rakibul-islam/Chef-Origin-Server/apperr"
	"github.com/dev-rakibul-islam/Chef-Origin-Server/models"
	"github.com/dev-rakibul-islam/Chef-Origin-Server/statemachine"
	"github.com/dev-rakibul-islam/Chef-Origin-Server/store"
)

// chefIDAttempts bounds the uniqueness-checked retry loop for identifier
// issuance. The 9000-value space makes exhaustion practically impossible at
// marketplace scale; hitting the bound surfaces as Unavailable.
const chefIDAttempts = 10

type Workflow struct {
	stores  *store.Stores
	randInt func(n int) int // returns a value in [0, n)
}

func NewWorkflow(stores *store.Stores) *Workflow {
	return &Workflow{stores: stores, randInt: rand.Intn}
}

// Submit creates a pending escalation request. A second pending request of
// the same type for the same account is rejected rather than accumulated.
func (w *Workflow) Submit(ctx context.Context, userName, userEmail string, requestType models.RequestType) (*models.RoleRequest, error) {
	if !models.ValidRequestType(requestType) {
		return nil, apperr.Newf(apperr.KindInvalidArgument,
			"invalid request type %q: must be chef or admin", requestType)
	}
	pending, err := w.stores.Requests.HasPending(ctx, userEmail, requestType)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, apperr.Newf(apperr.KindConflict,
			"a %s request is already pending for %s", requestType, userEmail)
	}
	req := &models.RoleRequest{
		UserName:      userName,
		UserEmail:     userEmail,
		RequestType:   requestType,
		RequestStatus: models.RequestPending,
	}
	if err := w.stores.Requests.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

// DecideResult reports the outcome of an administrator decision.
type DecideResult struct {
	Request *models.RoleRequest `json:"request"`
	Role    models.UserRole     `json:"role,omitempty"`
	ChefID  string              `json:"chefId,omitempty"`
}

// Decide settles a pending request. Approval and the user role mutation are
// one transaction. Repeating a decision already applied is a no-op returning
// the prior outcome, so an admin double-click never reissues a chef id; a
// conflicting decision on a settled request fails with InvalidTransition.
func (w *Workflow) Decide(ctx context.Context, requestID string, decision models.RequestStatus, overrideRole models.UserRole) (*DecideResult, error) {
	if decision != models.RequestApproved && decision != models.RequestRejected {
		return nil, apperr.Newf(apperr.KindInvalidArgument,
			"invalid decision %q: must be approved or rejected", decision)
	}
	if overrideRole != "" && !models.ValidRole(overrideRole) {
		return nil, apperr.Newf(apperr.KindInvalidArgument, "invalid role %q", overrideRole)
	}

	req, err := w.stores.Requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.RequestStatus == decision {
		return w.priorOutcome(ctx, req)
	}
	if err := statemachine.CanDecide(req.RequestStatus, decision); err != nil {
		return nil, err
	}

	role := models.UserRole(req.RequestType)
	if overrideRole != "" {
		role = overrideRole
	}

	var chefID string
	err = w.stores.Transaction(ctx, func(tx *store.Stores) error {
		if err := tx.Requests.SetStatus(ctx, requestID, decision); err != nil {
			return err
		}
		if decision != models.RequestApproved {
			return nil
		}
		if role == models.RoleChef {
			var err error
			if chefID, err = w.issueChefID(ctx, tx.Users); err != nil {
				return err
			}
		}
		return tx.Users.Promote(ctx, req.UserEmail, role, chefID)
	})
	if err != nil {
		// Lost the compare-and-set race: if the other writer applied the same
		// decision, return its outcome instead of failing.
		if apperr.KindOf(err) == apperr.KindConflict {
			if current, lookupErr := w.stores.Requests.GetByID(ctx, requestID); lookupErr == nil &&
				current.RequestStatus == decision {
				return w.priorOutcome(ctx, current)
			}
		}
		return nil, err
	}

	req.RequestStatus = decision
	res := &DecideResult{Request: req}
	if decision == models.RequestApproved {
		res.Role = role
		res.ChefID = chefID
	}
	return res, nil
}

// priorOutcome rebuilds the result of a decision that already happened.
func (w *Workflow) priorOutcome(ctx context.Context, req *models.RoleRequest) (*DecideResult, error) {
	res := &DecideResult{Request: req}
	if req.RequestStatus != models.RequestApproved {
		return res, nil
	}
	user, err := w.stores.Users.GetByEmail(ctx, req.UserEmail)
	if err != nil {
		return nil, err
	}
	res.Role = user.Role
	res.ChefID = user.ChefID
	return res, nil
}

// issueChefID draws chef-#### identifiers until one is unused. Uncoordinated
// random draw alone can collide, so every candidate is checked against the
// user store before being handed out.
func (w *Workflow) issueChefID(ctx context.Context, users *store.UserStore) (string, error) {
	for i := 0; i < chefIDAttempts; i++ {
		candidate := fmt.Sprintf("chef-%04d", 1000+w.randInt(9000))
		taken, err := users.ChefIDTaken(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", apperr.New(apperr.KindUnavailable, "could not allocate a free chef id")
}
