package order

import (
	"fmt"
	"strings"

	"havenpos/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	pending ──> confirmed ──> preparing ──> ready ──> served ──> completed
//	   │            │             │           │
//	   └────────────┴─────────────┴───────────┴──────> cancelled
//
// completed and cancelled are terminal. Apart from the escape to cancelled no
// state may be skipped.
type Status int

const (
	// Unknown (0) catches uninitialized values.
	Unknown Status = iota
	Pending
	Confirmed
	Preparing
	Ready
	Served
	Completed
	Cancelled
)

var statusNames = map[Status]string{
	Pending:   "pending",
	Confirmed: "confirmed",
	Preparing: "preparing",
	Ready:     "ready",
	Served:    "served",
	Completed: "completed",
	Cancelled: "cancelled",
}

var transitions = map[Status][]Status{
	Pending:   {Confirmed, Cancelled},
	Confirmed: {Preparing, Cancelled},
	Preparing: {Ready, Cancelled},
	Ready:     {Served, Cancelled},
	Served:    {Completed},
	Completed: nil,
	Cancelled: nil,
}

// ParseStatus accepts the wire names, case-insensitively.
func ParseStatus(raw string) (Status, error) {
	needle := strings.ToLower(strings.TrimSpace(raw))
	for s, name := range statusNames {
		if name == needle {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known status", raw))
}

// ActiveStatuses lists every non-terminal status in lifecycle order.
func ActiveStatuses() []Status {
	return []Status{Pending, Confirmed, Preparing, Ready, Served}
}

// AllStatuses lists every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Confirmed, Preparing, Ready, Served, Completed, Cancelled}
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// AllowedTargets returns the statuses reachable in one step. The slice is a
// copy.
func (s Status) AllowedTargets() []Status {
	return append([]Status(nil), transitions[s]...)
}

// CanTransitionTo returns an *IllegalTransitionError unless target is one step
// away from s.
func (s Status) CanTransitionTo(target Status) error {
	if err := target.Validate(); err != nil {
		return &IllegalTransitionError{From: s, To: target}
	}
	for _, allowed := range transitions[s] {
		if allowed == target {
			return nil
		}
	}
	return &IllegalTransitionError{From: s, To: target}
}

func (s Status) Confirm() (Status, error) {
	return s.step(Confirmed)
}

func (s Status) StartPreparing() (Status, error) {
	return s.step(Preparing)
}

func (s Status) MarkReady() (Status, error) {
	return s.step(Ready)
}

func (s Status) Serve() (Status, error) {
	return s.step(Served)
}

func (s Status) Complete() (Status, error) {
	return s.step(Completed)
}

func (s Status) Cancel() (Status, error) {
	return s.step(Cancelled)
}

func (s Status) step(target Status) (Status, error) {
	if err := s.CanTransitionTo(target); err != nil {
		return 0, err
	}
	return target, nil
}

func (s Status) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
