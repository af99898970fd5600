package services

import "shipping/internal/pkg/errs"

// ReservationPolicy decides whether an additional quantity of an item fits
// within on-hand stock, given the total already committed across all open
// shipments. Lines inside packages not linked to any open shipment do not
// consume reservation capacity; computing the reserved total is therefore a
// storage-side query, and this policy only applies the arithmetic.
type ReservationPolicy struct{}

// NewReservationPolicy creates the reservation policy.
func NewReservationPolicy() ReservationPolicy {
	return ReservationPolicy{}
}

// CanReserve reports whether reserved + requested still fits within onHand.
// onHand is 0 for items without a stock row, which makes every reservation
// attempt for such items fail.
func (ReservationPolicy) CanReserve(onHand, reserved, requested int) (bool, error) {
	if requested <= 0 {
		return false, errs.NewValueIsInvalidError("requested")
	}
	if onHand < 0 {
		return false, errs.NewValueIsInvalidError("onHand")
	}
	if reserved < 0 {
		return false, errs.NewValueIsInvalidError("reserved")
	}
	return reserved+requested <= onHand, nil
}
