// Package shipment contains the Shipment aggregate: the dispatch unit that
// owns its package associations (lines) and enforces the open -> shipped
// lifecycle, including business-number assignment at ship time.
package shipment
