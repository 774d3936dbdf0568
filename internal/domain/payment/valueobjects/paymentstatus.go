package valueobjects

import "fmt"

// PaymentStatus is the lifecycle state of one gateway transaction. paid and
// failed are terminal. expired only closes the attempt for reuse: a verified
// gateway callback can still settle it.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
	PaymentStatusExpired PaymentStatus = "expired"
)

// terminal maps each known status to whether it ends the lifecycle.
var terminal = map[PaymentStatus]bool{
	PaymentStatusPending: false,
	PaymentStatusPaid:    true,
	PaymentStatusFailed:  true,
	PaymentStatusExpired: false,
}

// sources lists, for each target status, the stored statuses it may be
// reached from.
var sources = map[PaymentStatus][]PaymentStatus{
	PaymentStatusPaid:    {PaymentStatusPending, PaymentStatusExpired},
	PaymentStatusFailed:  {PaymentStatusPending, PaymentStatusExpired},
	PaymentStatusExpired: {PaymentStatusPending},
}

// ParsePaymentStatus converts a stored value, rejecting unknown strings.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	status := PaymentStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("unknown payment status %q", s)
	}
	return status, nil
}

func (s PaymentStatus) IsValid() bool {
	_, ok := terminal[s]
	return ok
}

func (s PaymentStatus) IsPaid() bool {
	return s == PaymentStatusPaid
}

func (s PaymentStatus) IsPending() bool {
	return s == PaymentStatusPending
}

// IsFinal reports whether no further transition is allowed.
func (s PaymentStatus) IsFinal() bool {
	return terminal[s]
}

// CanTransitionTo reports whether s may move to next. Staying in the same
// state is not a transition.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	for _, from := range sources[next] {
		if from == s {
			return true
		}
	}
	return false
}

// TransitionSources returns the statuses next may be reached from, for use as
// the guard of a conditional update.
func TransitionSources(next PaymentStatus) []PaymentStatus {
	return append([]PaymentStatus(nil), sources[next]...)
}

func (s PaymentStatus) String() string {
	return string(s)
}
