// Package guard implements the constructor-guard pattern used by domain
// objects, commands, and queries to detect zero-value instances that bypassed
// their designated constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects and entities are only created through
// their designated constructor functions. Embedding a ConstructorGuard in a
// struct makes zero-value instances detectable: the internal flag is only set
// when the object was built by its constructor.
//
// Example usage:
//
//	type ShipCommand struct {
//	    shipmentID uint64
//	    guard      guard.ConstructorGuard
//	}
//
//	func NewShipCommand(shipmentID uint64) (ShipCommand, error) {
//	    if shipmentID == 0 {
//	        return ShipCommand{}, errs.NewValueIsRequiredError("shipmentID")
//	    }
//	    return ShipCommand{shipmentID: shipmentID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c ShipCommand) Validate() error {
//	    return c.guard.Validate(ErrShipCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it in every constructor of a guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the guarded object was built through its
// constructor. Otherwise it returns validationError, falling back to
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
