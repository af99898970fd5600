package pack

import (
	"fmt"

	"shipping/internal/pkg/errs"
)

// Status represents the lifecycle state of a package.
//
// State transitions:
//
//	Open ──> Packed ──┐
//	  │               ├──> Shipped
//	  └───────────────┘
//
// Open -> Packed is an explicit command. Shipped is never reached directly:
// it is stamped onto the package when the parent shipment ships, regardless
// of whether the package was still open or already packed.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Open is the initial status; only open packages accept content edits.
	Open

	// Packed indicates the package content is finalized manually.
	Packed

	// Shipped indicates the parent shipment was dispatched; the package
	// carries the shipment's business number from that point on.
	Shipped
)

// getStatusStrings returns a map of Status values to their string
// representations. The strings double as the persisted enum values.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "unknown",
		Open:    "open",
		Packed:  "packed",
		Shipped: "shipped",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Open:    "open",
		Packed:  "packed",
		Shipped: "shipped",
	}
}

// StatusFromString restores a Status from its persisted string form.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid package status", s),
	)
}

// Validate checks if the Status value is valid.
// Valid statuses are: Open, Packed, Shipped.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the persisted name of the status ("open", "packed", "shipped").
// It implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// ValidateOpen checks that the package itself still accepts content edits.
// Whether the package is editable overall also depends on the parent
// shipment's status; see the edit-lock rule in the services package.
func (s Status) ValidateOpen() error {
	if s != Open {
		return errs.NewInvalidStateErrorWithCause(
			"package", s.String(),
			fmt.Errorf("operation requires open status"),
		)
	}
	return nil
}

// Pack transitions the status to Packed.
//
// Valid transitions:
//   - Open -> Packed
//
// Any other current status is rejected with an InvalidStateError.
func (s Status) Pack() (Status, error) {
	if err := s.ValidateOpen(); err != nil {
		return 0, err
	}
	return Packed, nil
}
