// Package shipment contains the Shipment aggregate and its carrier-facing
// CarrierMeta companion row.
//
// The carrier gateway reads shipments (route, weight, line items) to derive
// rate fingerprints, and writes only two things back: the status transition
// on booking/delivery and the CarrierMeta snapshot of quotes, booking and
// tracking data.
package shipment
