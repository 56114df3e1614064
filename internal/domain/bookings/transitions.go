package bookings

import (
	"errors"
	"fmt"
	"slices"
)

var ErrIllegalTransition = errors.New("illegal booking transition")

// Nothing leaves completed or cancelled.
var statusTransitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// Action is a one-click quick action offered on a booking row.
type Action string

const (
	ActionConfirm  Action = "confirm"
	ActionComplete Action = "complete"
	ActionCancel   Action = "cancel"
	ActionMarkPaid Action = "mark_paid"
)

var statusActions = []struct {
	action Action
	to     Status
}{
	{ActionConfirm, StatusConfirmed},
	{ActionComplete, StatusCompleted},
	{ActionCancel, StatusCancelled},
}

// NextStatuses lists the statuses reachable from s.
func NextStatuses(s Status) []Status {
	return slices.Clone(statusTransitions[s])
}

func CanTransition(from, to Status) bool {
	return slices.Contains(statusTransitions[from], to)
}

// CanTransitionPayment reports whether b may move to payment status to.
// Only unpaid/partial -> paid is offered, and never on a cancelled booking.
func CanTransitionPayment(b Booking, to PaymentStatus) bool {
	if to != PaymentPaid || b.Status == StatusCancelled {
		return false
	}
	return b.PaymentStatus == PaymentUnpaid || b.PaymentStatus == PaymentPartial
}

// StatusActions lists the status quick actions legal for b, in menu order.
func StatusActions(b Booking) []Action {
	out := []Action{}
	for _, sa := range statusActions {
		if CanTransition(b.Status, sa.to) {
			out = append(out, sa.action)
		}
	}
	return out
}

func PaymentActions(b Booking) []Action {
	if CanTransitionPayment(b, PaymentPaid) {
		return []Action{ActionMarkPaid}
	}
	return []Action{}
}

// CheckStatus is asserted before a status PATCH leaves the dashboard.
func CheckStatus(b Booking, to Status) error {
	if !CanTransition(b.Status, to) {
		return fmt.Errorf("%w: status %s -> %s", ErrIllegalTransition, b.Status, to)
	}
	return nil
}

func CheckPayment(b Booking, to PaymentStatus) error {
	if !CanTransitionPayment(b, to) {
		return fmt.Errorf("%w: payment %s -> %s (status %s)", ErrIllegalTransition, b.PaymentStatus, to, b.Status)
	}
	return nil
}

// ActionTarget resolves a status quick action to its target status.
func ActionTarget(a Action) (Status, bool) {
	for _, sa := range statusActions {
		if sa.action == a {
			return sa.to, true
		}
	}
	return "", false
}
