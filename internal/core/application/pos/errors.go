package pos

import (
	"errors"
	"fmt"

	"havenpos/internal/core/domain/model/access"
)

var (
	ErrTransitionInFlight    = errors.New("a status change for this order is already in flight")
	ErrOrderAlreadySubmitted = errors.New("order is already submitted")
	ErrUnexpectedStatus      = errors.New("service acknowledged an unexpected status")
)

func authorize(gate access.Gate, s access.Session, p access.Permission) error {
	if gate.Allow(s, p) {
		return nil
	}
	return fmt.Errorf("%w: role %s lacks %s", access.ErrPermissionDenied, s.Role, p)
}
