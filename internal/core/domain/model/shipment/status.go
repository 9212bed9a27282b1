package shipment

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment as seen by the
// carrier gateway.
//
// State transitions:
//
//	Draft ──> Booked ──> Delivered
//
// Rate shopping does not change the status: quotes are point-in-time
// estimates, not reservations. Only a successful booking moves a shipment
// out of Draft, and only a carrier-reported delivery completes it.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is the initial status. Draft shipments can be rate-shopped and booked.
	Draft

	// Booked indicates a carrier booking succeeded and a tracking number exists.
	Booked

	// Delivered indicates the carrier reported final delivery.
	// This is a terminal state.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Draft:     "Draft",
		Booked:    "Booked",
		Delivered: "Delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:     "Draft",
		Booked:    "Booked",
		Delivered: "Delivered",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are: Draft, Booked, Delivered.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Book transitions the status to Booked.
//
// Valid transitions:
//   - Draft -> Booked
//
// Booked and Delivered shipments cannot be booked again; a second booking
// would orphan the first carrier transaction.
func (s Status) Book() (Status, error) {
	if s != Draft {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to book", s.String()),
		)
	}

	return Booked, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Booked -> Delivered
func (s Status) Deliver() (Status, error) {
	if s != Booked {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}

	return Delivered, nil
}
