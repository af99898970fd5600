package commands

import (
	"errors"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrPackPackageCommandIsNotConstructed = errors.New(
	"PackPackageCommand must be created via NewPackPackageCommand constructor",
)

// PackPackageCommand represents a request to finalize a package's content
// manually, transitioning it from open to packed.
type PackPackageCommand struct { //nolint:recvcheck //using for validation
	packageID uint64

	guard guard.ConstructorGuard
}

// NewPackPackageCommand creates a command to pack a package.
func NewPackPackageCommand(packageID uint64) (PackPackageCommand, error) {
	cmd := PackPackageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setPackageID(packageID); err != nil {
		return PackPackageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PackPackageCommand) Validate() error {
	return c.guard.Validate(ErrPackPackageCommandIsNotConstructed)
}

// PackageID returns the identifier of the package to pack.
func (c PackPackageCommand) PackageID() uint64 {
	return c.packageID
}

func (c *PackPackageCommand) setPackageID(packageID uint64) error {
	if packageID == 0 {
		return errs.NewValueIsRequiredError("packageID")
	}
	c.packageID = packageID
	return nil
}
