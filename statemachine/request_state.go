package statemachine

import (
	"github.com/dev-rakibul-islam/Chef-Origin-Server/apperr"
	"github.com/dev-rakibul-islam/Chef-Origin-Server/models"
)

// Role requests move pending -> approved or pending -> rejected; both targets
// are terminal and no transition out of a terminal state is permitted.

// CanDecide checks whether a request in state from may be decided as to.
func CanDecide(from, to models.RequestStatus) error {
	if from == models.RequestPending &&
		(to == models.RequestApproved || to == models.RequestRejected) {
		return nil
	}
	return apperr.Newf(apperr.KindInvalidTransition,
		"invalid transition: request is %s, cannot move to %s", from, to)
}

// TerminalRequestStatus reports whether s is a terminal request state.
func TerminalRequestStatus(s models.RequestStatus) bool {
	return s == models.RequestApproved || s == models.RequestRejected
}
