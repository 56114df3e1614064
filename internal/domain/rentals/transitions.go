package rentals

import (
	"errors"
	"fmt"
	"slices"
)

var ErrIllegalTransition = errors.New("illegal rental transition")

var statusTransitions = map[Status][]Status{
	StatusPending:  {StatusApproved, StatusCancelled},
	StatusApproved: {StatusActive, StatusCancelled},
	StatusActive:   {StatusReturned, StatusOverdue},
}

type Action string

const (
	ActionApprove     Action = "approve"
	ActionActivate    Action = "activate"
	ActionReturn      Action = "return"
	ActionMarkOverdue Action = "mark_overdue"
	ActionCancel      Action = "cancel"
	ActionMarkPaid    Action = "mark_paid"
	ActionRefund      Action = "refund"
)

var statusActions = []struct {
	action Action
	to     Status
}{
	{ActionApprove, StatusApproved},
	{ActionActivate, StatusActive},
	{ActionReturn, StatusReturned},
	{ActionMarkOverdue, StatusOverdue},
	{ActionCancel, StatusCancelled},
}

func NextStatuses(s Status) []Status {
	return slices.Clone(statusTransitions[s])
}

func CanTransition(from, to Status) bool {
	return slices.Contains(statusTransitions[from], to)
}

// CanTransitionPayment: pending -> paid unless cancelled; paid -> refunded only
// once the rental is cancelled.
func CanTransitionPayment(r Rental, to PaymentStatus) bool {
	switch to {
	case PaymentPaid:
		return r.PaymentStatus == PaymentPending && r.Status != StatusCancelled
	case PaymentRefunded:
		return r.PaymentStatus == PaymentPaid && r.Status == StatusCancelled
	default:
		return false
	}
}

func StatusActions(r Rental) []Action {
	out := []Action{}
	for _, sa := range statusActions {
		if CanTransition(r.Status, sa.to) {
			out = append(out, sa.action)
		}
	}
	return out
}

func PaymentActions(r Rental) []Action {
	out := []Action{}
	if CanTransitionPayment(r, PaymentPaid) {
		out = append(out, ActionMarkPaid)
	}
	if CanTransitionPayment(r, PaymentRefunded) {
		out = append(out, ActionRefund)
	}
	return out
}

func CheckStatus(r Rental, to Status) error {
	if !CanTransition(r.Status, to) {
		return fmt.Errorf("%w: status %s -> %s", ErrIllegalTransition, r.Status, to)
	}
	return nil
}

func CheckPayment(r Rental, to PaymentStatus) error {
	if !CanTransitionPayment(r, to) {
		return fmt.Errorf("%w: payment %s -> %s (status %s)", ErrIllegalTransition, r.PaymentStatus, to, r.Status)
	}
	return nil
}

func ActionTarget(a Action) (Status, bool) {
	for _, sa := range statusActions {
		if sa.action == a {
			return sa.to, true
		}
	}
	return "", false
}
