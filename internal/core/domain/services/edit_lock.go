package services

import (
	"shipping/internal/core/domain/model/pack"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"
)

// EditLock is the derived read-model deciding whether a package accepts
// content edits. It is a computed condition, not a mutex: a package is
// locked when its own status is not open, or when its linked shipment (if
// any) is no longer open. An unlinked open package is always editable.
type EditLock struct{}

// NewEditLock creates the edit-lock rule.
func NewEditLock() EditLock {
	return EditLock{}
}

// IsLocked reports whether the package is locked for content edits.
// parent is nil when the package is not linked to any shipment.
func (EditLock) IsLocked(p *pack.Package, parent *shipment.Shipment) (bool, error) {
	if err := p.Validate(); err != nil {
		return false, err
	}
	if p.Status() != pack.Open {
		return true, nil
	}
	if parent == nil {
		return false, nil
	}
	if err := parent.Validate(); err != nil {
		return false, err
	}
	return parent.Status() != shipment.Open, nil
}

// ValidateEditable returns an InvalidStateError naming the locking entity
// when the package is locked, and nil when edits are allowed.
func (l EditLock) ValidateEditable(p *pack.Package, parent *shipment.Shipment) error {
	locked, err := l.IsLocked(p, parent)
	if err != nil {
		return err
	}
	if !locked {
		return nil
	}
	if p.Status() != pack.Open {
		return errs.NewInvalidStateError("package", p.Status().String())
	}
	return errs.NewInvalidStateError("shipment", parent.Status().String())
}
