package shipment

import (
	"fmt"
	"time"
)

// NewNumber derives the human-facing business number assigned to a shipment
// at ship time. The format is SN<YYYYMMDD>-<shipment id>-<HHMMSS>, in UTC.
//
// The number is unique by construction in practice; the storage layer still
// enforces uniqueness, and a theoretical collision surfaces as a constraint
// violation the caller may retry with a fresh timestamp.
func NewNumber(now time.Time, shipmentID uint64) string {
	utc := now.UTC()
	return fmt.Sprintf("SN%s-%d-%s", utc.Format("20060102"), shipmentID, utc.Format("150405"))
}
