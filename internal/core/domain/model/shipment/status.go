package shipment

import (
	"fmt"

	"shipping/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
// The lifecycle is linear and irreversible:
//
//	Open ──> Shipped
//
// Shipped is a final state; attempting to ship an already-shipped shipment
// is an error, not a no-op.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Open is the initial status of a shipment. Only open shipments accept
	// packages, and only their content counts toward stock reservation.
	Open

	// Shipped indicates the shipment has been dispatched and carries a
	// business number. No further transitions are allowed.
	Shipped
)

// getStatusStrings returns a map of Status values to their string
// representations. The strings double as the persisted enum values.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "unknown",
		Open:    "open",
		Shipped: "shipped",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Open:    "open",
		Shipped: "shipped",
	}
}

// StatusFromString restores a Status from its persisted string form.
// Unrecognized strings yield an error rather than a silent Unknown.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid shipment status", s),
	)
}

// Validate checks if the Status value is valid.
// Valid statuses are: Open, Shipped. Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the persisted name of the status ("open", "shipped").
// It implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// ValidateOpen checks that the shipment still accepts mutations.
// Every state-changing shipment operation (adding/removing packages,
// shipping) requires the current status to be exactly Open.
func (s Status) ValidateOpen() error {
	if s != Open {
		return errs.NewInvalidStateErrorWithCause(
			"shipment", s.String(),
			fmt.Errorf("operation requires open status"),
		)
	}
	return nil
}

// Ship transitions the status to Shipped.
//
// Valid transitions:
//   - Open -> Shipped
//
// Any other current status is rejected with an InvalidStateError.
func (s Status) Ship() (Status, error) {
	if err := s.ValidateOpen(); err != nil {
		return 0, err
	}
	return Shipped, nil
}
