// Package services provides domain services that coordinate operations
// across multiple aggregates of the carrier gateway.
//
// The package includes:
//   - QuoteSelector: picks the quote to book from a shipment's rate snapshot
//
// Domain services hold business logic that does not naturally belong to a
// single aggregate root.
package services
