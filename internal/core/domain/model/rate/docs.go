// Package rate contains the Quote value object, the JSON codec shared by
// the rate cache and the persisted snapshot, and the fingerprint that keys
// cached rate responses to the exact shipment state they were computed for.
package rate
