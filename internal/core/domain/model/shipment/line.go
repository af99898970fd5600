package shipment

import "shipping/internal/pkg/errs"

// Line associates exactly one package with its shipment under a stable
// sequence number. Line numbers are assigned as max+1 at insertion time and
// are never reused after a removal, so the remaining numbering of a shipment
// stays stable across deletions.
type Line struct {
	lineNo    int
	packageID uint64
}

// NewLine creates a shipment line. The line number must be positive and the
// package reference must be set.
func NewLine(lineNo int, packageID uint64) (Line, error) {
	if lineNo <= 0 {
		return Line{}, errs.NewValueIsInvalidError("lineNo")
	}
	if packageID == 0 {
		return Line{}, errs.NewValueIsRequiredError("packageID")
	}
	return Line{lineNo: lineNo, packageID: packageID}, nil
}

// LineNo returns the sequence number of the line within its shipment.
func (l Line) LineNo() int {
	return l.lineNo
}

// PackageID returns the identifier of the linked package.
func (l Line) PackageID() uint64 {
	return l.packageID
}
