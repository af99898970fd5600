package pack

import "shipping/internal/pkg/errs"

// Line is a quantity position inside a package: one item, one positive
// quantity, one stable sequence number. A package holds at most one line per
// item; repeated additions increment the quantity instead of creating
// duplicate lines.
type Line struct {
	lineNo   int
	itemID   uint64
	quantity int
}

// NewLine creates a package line. The line number must be positive, the item
// reference must be set, and the quantity must be a positive integer.
func NewLine(lineNo int, itemID uint64, quantity int) (Line, error) {
	if lineNo <= 0 {
		return Line{}, errs.NewValueIsInvalidError("lineNo")
	}
	if itemID == 0 {
		return Line{}, errs.NewValueIsRequiredError("itemID")
	}
	if quantity <= 0 {
		return Line{}, errs.NewValueIsInvalidError("quantity")
	}
	return Line{lineNo: lineNo, itemID: itemID, quantity: quantity}, nil
}

// LineNo returns the sequence number of the line within its package.
func (l Line) LineNo() int {
	return l.lineNo
}

// ItemID returns the identifier of the item on this line.
func (l Line) ItemID() uint64 {
	return l.itemID
}

// Quantity returns the quantity of the item on this line.
func (l Line) Quantity() int {
	return l.quantity
}
