package pack

import (
	"errors"
	"time"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var (
	// ErrPackageIsNotConstructed is returned when a Package instance was not
	// created through NewPackage or RestorePackage.
	ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage constructor")

	// ErrIDAlreadyAssigned is returned when AssignID is called on a package
	// that already has a persistent identifier.
	ErrIDAlreadyAssigned = errors.New("package already has an ID assigned")

	// ErrLineNotFound is returned when removing an item line that does not
	// exist in the package.
	ErrLineNotFound = errors.New("line not found")
)

// Package is the aggregate root for a physical packing unit. It owns its
// item lines and enforces the open -> packed (-> shipped, via the parent
// shipment) lifecycle on its own state.
//
// Invariants:
//   - At most one line per item; repeated additions increment the quantity.
//   - Line quantities are positive integers.
//   - Line numbers are assigned max+1 and intermediate numbers are never
//     reassigned after a deletion.
//   - Content edits require Open status. Whether the package is editable
//     overall additionally depends on the parent shipment (edit-lock rule);
//     that cross-aggregate check lives in the services package.
type Package struct {
	// id is the persistent identifier; 0 until the storage layer assigns one
	id uint64

	// status is the current lifecycle state
	status Status

	// shipmentNumber mirrors the parent shipment's business number once
	// shipped; it is a copy, not a reference
	shipmentNumber *string

	// createdBy is the acting user supplied by the authentication layer
	createdBy uint64

	// createdAt is the creation timestamp in UTC
	createdAt time.Time

	// lines are the item positions owned by this package
	lines []Line

	// guard ensures the package was properly constructed
	guard guard.ConstructorGuard
}

// NewPackage creates a new package in Open status with no lines.
// The identifier stays 0 until the storage layer assigns one via AssignID.
func NewPackage(createdBy uint64, createdAt time.Time) (*Package, error) {
	p := &Package{
		status: Open,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setCreatedBy(createdBy),
		p.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePackage reconstructs a package from persistence. All invariants are
// re-validated so corrupt rows cannot produce an invalid aggregate.
func RestorePackage(
	id uint64,
	status Status,
	shipmentNumber *string,
	createdBy uint64,
	createdAt time.Time,
	lines []Line,
) (*Package, error) {
	p := &Package{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setStatus(status),
		p.setCreatedBy(createdBy),
		p.setCreatedAt(createdAt),
		p.setLines(lines),
	); err != nil {
		return nil, err
	}
	p.shipmentNumber = shipmentNumber

	return p, nil
}

// Validate ensures the Package instance was properly constructed.
func (p *Package) Validate() error {
	if p == nil {
		return ErrPackageIsNotConstructed
	}
	return p.guard.Validate(ErrPackageIsNotConstructed)
}

// IsEqual compares two packages by their identifiers.
func (p *Package) IsEqual(other *Package) bool {
	return other != nil && p.id != 0 && p.id == other.id
}

// ID returns the persistent identifier, 0 for an unsaved package.
func (p *Package) ID() uint64 {
	return p.id
}

// Status returns the current lifecycle state.
func (p *Package) Status() Status {
	return p.status
}

// ShipmentNumber returns the mirrored business number, nil until the parent
// shipment ships.
func (p *Package) ShipmentNumber() *string {
	return p.shipmentNumber
}

// CreatedBy returns the id of the user who created the package.
func (p *Package) CreatedBy() uint64 {
	return p.createdBy
}

// CreatedAt returns the creation timestamp.
func (p *Package) CreatedAt() time.Time {
	return p.createdAt
}

// Lines returns a copy of the item positions.
func (p *Package) Lines() []Line {
	out := make([]Line, len(p.lines))
	copy(out, p.lines)
	return out
}

// LineFor returns the line carrying the given item, if present.
func (p *Package) LineFor(itemID uint64) (Line, bool) {
	for _, line := range p.lines {
		if line.ItemID() == itemID {
			return line, true
		}
	}
	return Line{}, false
}

// AssignID records the storage-assigned identifier on a freshly created
// package. It fails once an identifier is present.
func (p *Package) AssignID(id uint64) error {
	if p.id != 0 {
		return ErrIDAlreadyAssigned
	}
	if id == 0 {
		return errs.NewValueIsRequiredError("id")
	}
	p.id = id
	return nil
}

// AddItem adds qty units of an item to the package. If a line for the item
// already exists its quantity is incremented; otherwise a new line with the
// next sequence number is created. The package itself must be open; the
// caller enforces the parent-shipment half of the edit-lock rule and the
// stock reservation check before invoking this.
func (p *Package) AddItem(itemID uint64, qty int) error {
	if err := p.status.ValidateOpen(); err != nil {
		return err
	}
	if itemID == 0 {
		return errs.NewValueIsRequiredError("itemID")
	}
	if qty <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	for i, line := range p.lines {
		if line.ItemID() == itemID {
			merged, err := NewLine(line.LineNo(), itemID, line.Quantity()+qty)
			if err != nil {
				return err
			}
			p.lines[i] = merged
			return nil
		}
	}

	line, err := NewLine(p.nextLineNo(), itemID, qty)
	if err != nil {
		return err
	}
	p.lines = append(p.lines, line)
	return nil
}

// RemoveItem deletes the line carrying the given item entirely; there is no
// partial-quantity removal. Remaining line numbers are not renumbered.
func (p *Package) RemoveItem(itemID uint64) error {
	if err := p.status.ValidateOpen(); err != nil {
		return err
	}

	for i, line := range p.lines {
		if line.ItemID() == itemID {
			p.lines = append(p.lines[:i], p.lines[i+1:]...)
			return nil
		}
	}

	return ErrLineNotFound
}

// Pack transitions the package to Packed, finalizing its content manually.
func (p *Package) Pack() error {
	newStatus, err := p.status.Pack()
	if err != nil {
		return err
	}
	p.status = newStatus
	return nil
}

// nextLineNo yields max(existing line numbers) + 1, or 1 for the first line.
// Numbers freed by intermediate deletions are never reassigned.
func (p *Package) nextLineNo() int {
	next := 1
	for _, line := range p.lines {
		if line.LineNo() >= next {
			next = line.LineNo() + 1
		}
	}
	return next
}

func (p *Package) setID(id uint64) error {
	if id == 0 {
		return errs.NewValueIsRequiredError("id")
	}
	p.id = id
	return nil
}

func (p *Package) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}

func (p *Package) setCreatedBy(createdBy uint64) error {
	if createdBy == 0 {
		return errs.NewValueIsRequiredError("createdBy")
	}
	p.createdBy = createdBy
	return nil
}

func (p *Package) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	p.createdAt = createdAt
	return nil
}

func (p *Package) setLines(lines []Line) error {
	seen := make(map[uint64]bool, len(lines))
	for _, line := range lines {
		if seen[line.ItemID()] {
			return errs.NewValueIsInvalidError("lines")
		}
		seen[line.ItemID()] = true
	}
	p.lines = lines
	return nil
}
