// Package pack contains the Package aggregate: the physical packing unit
// that owns its item lines and enforces the open -> packed lifecycle. The
// shipped state is stamped onto packages by the parent shipment's ship
// operation, never reached directly.
//
// The package is named pack because "package" is a Go keyword.
package pack
