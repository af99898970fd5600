package shipment

import (
	"errors"
	"time"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
	// created through NewShipment or RestoreShipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

	// ErrIDAlreadyAssigned is returned when AssignID is called on a shipment
	// that already has a persistent identifier.
	ErrIDAlreadyAssigned = errors.New("shipment already has an ID assigned")

	// ErrPackageAlreadyLinked is returned when adding a package that this
	// shipment already contains.
	ErrPackageAlreadyLinked = errors.New("package is already linked to this shipment")

	// ErrPackageNotLinked is returned when removing a package that is not
	// linked to this shipment.
	ErrPackageNotLinked = errors.New("package not linked to this shipment")
)

// Shipment is the aggregate root for a dispatch unit. It owns its lines
// (the package associations, each with a stable sequence number) and
// enforces the open -> shipped lifecycle.
//
// Invariants:
//   - Created in Open status; transitions once, irreversibly, to Shipped.
//   - The business number is assigned exactly once, at ship time.
//   - A package appears at most once among the lines; the storage layer
//     additionally guarantees a package is never linked to two shipments.
//   - Line numbers are strictly increasing and never reused.
type Shipment struct {
	// id is the persistent identifier; 0 until the storage layer assigns one
	id uint64

	// status is the current lifecycle state
	status Status

	// number is the business number, set at ship time
	number *string

	// createdBy is the acting user supplied by the authentication layer
	createdBy uint64

	// createdAt is the creation timestamp in UTC
	createdAt time.Time

	// lines are the package associations owned by this shipment
	lines []Line

	// guard ensures the shipment was properly constructed
	guard guard.ConstructorGuard
}

// NewShipment creates a new shipment in Open status with no lines and no
// business number. The identifier stays 0 until the storage layer assigns a
// sequence value via AssignID.
func NewShipment(createdBy uint64, createdAt time.Time) (*Shipment, error) {
	s := &Shipment{
		status: Open,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setCreatedBy(createdBy),
		s.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a shipment from persistence. All invariants
// are re-validated so corrupt rows cannot produce an invalid aggregate.
func RestoreShipment(
	id uint64,
	status Status,
	number *string,
	createdBy uint64,
	createdAt time.Time,
	lines []Line,
) (*Shipment, error) {
	s := &Shipment{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setStatus(status),
		s.setCreatedBy(createdBy),
		s.setCreatedAt(createdAt),
		s.setLines(lines),
	); err != nil {
		return nil, err
	}
	s.number = number

	return s, nil
}

// Validate ensures the Shipment instance was properly constructed.
func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

// IsEqual compares two shipments by their identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id != 0 && s.id == other.id
}

// ID returns the persistent identifier, 0 for an unsaved shipment.
func (s *Shipment) ID() uint64 {
	return s.id
}

// Status returns the current lifecycle state.
func (s *Shipment) Status() Status {
	return s.status
}

// Number returns the business number, nil until the shipment is shipped.
func (s *Shipment) Number() *string {
	return s.number
}

// CreatedBy returns the id of the user who created the shipment.
func (s *Shipment) CreatedBy() uint64 {
	return s.createdBy
}

// CreatedAt returns the creation timestamp.
func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

// Lines returns a copy of the package associations.
func (s *Shipment) Lines() []Line {
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// PackageIDs returns the identifiers of all linked packages in line order.
func (s *Shipment) PackageIDs() []uint64 {
	ids := make([]uint64, 0, len(s.lines))
	for _, line := range s.lines {
		ids = append(ids, line.PackageID())
	}
	return ids
}

// AssignID records the storage-assigned identifier on a freshly created
// shipment. It fails once an identifier is present.
func (s *Shipment) AssignID(id uint64) error {
	if s.id != 0 {
		return ErrIDAlreadyAssigned
	}
	if id == 0 {
		return errs.NewValueIsRequiredError("id")
	}
	s.id = id
	return nil
}

// AddPackage links a package to this shipment under the next sequence
// number. The shipment must be open and the package must not already be
// linked here.
func (s *Shipment) AddPackage(packageID uint64) (Line, error) {
	if err := s.status.ValidateOpen(); err != nil {
		return Line{}, err
	}

	for _, line := range s.lines {
		if line.PackageID() == packageID {
			return Line{}, ErrPackageAlreadyLinked
		}
	}

	line, err := NewLine(s.nextLineNo(), packageID)
	if err != nil {
		return Line{}, err
	}

	s.lines = append(s.lines, line)
	return line, nil
}

// RemovePackage unlinks a package from this shipment. The shipment must be
// open and the link must exist. Remaining line numbers are not renumbered.
func (s *Shipment) RemovePackage(packageID uint64) error {
	if err := s.status.ValidateOpen(); err != nil {
		return err
	}

	for i, line := range s.lines {
		if line.PackageID() == packageID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return nil
		}
	}

	return ErrPackageNotLinked
}

// Ship transitions the shipment to Shipped and assigns its business number,
// derived from the given wall-clock instant and the shipment id. The caller
// is responsible for stamping the returned number onto all member packages
// within the same transaction.
func (s *Shipment) Ship(now time.Time) (string, error) {
	newStatus, err := s.status.Ship()
	if err != nil {
		return "", err
	}

	number := NewNumber(now, s.id)
	s.status = newStatus
	s.number = &number
	return number, nil
}

// nextLineNo yields max(existing line numbers) + 1, or 1 for the first line.
// Numbers freed by intermediate deletions are never reassigned.
func (s *Shipment) nextLineNo() int {
	next := 1
	for _, line := range s.lines {
		if line.LineNo() >= next {
			next = line.LineNo() + 1
		}
	}
	return next
}

func (s *Shipment) setID(id uint64) error {
	if id == 0 {
		return errs.NewValueIsRequiredError("id")
	}
	s.id = id
	return nil
}

func (s *Shipment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}

func (s *Shipment) setCreatedBy(createdBy uint64) error {
	if createdBy == 0 {
		return errs.NewValueIsRequiredError("createdBy")
	}
	s.createdBy = createdBy
	return nil
}

func (s *Shipment) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	s.createdAt = createdAt
	return nil
}

func (s *Shipment) setLines(lines []Line) error {
	seen := make(map[uint64]bool, len(lines))
	for _, line := range lines {
		if seen[line.PackageID()] {
			return ErrPackageAlreadyLinked
		}
		seen[line.PackageID()] = true
	}
	s.lines = lines
	return nil
}
