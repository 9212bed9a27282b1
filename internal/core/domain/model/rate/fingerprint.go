package rate

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"
)

// fingerprintInput is the canonical shape hashed into a rate fingerprint.
// Field order is fixed and both ID lists are sorted, so the same shipment
// state and account set always hash to the same value regardless of the
// order accounts were loaded in.
type fingerprintInput struct {
	OriginCountry      string   `json:"originCountry"`
	DestinationCountry string   `json:"destinationCountry"`
	TotalWeightKg      float64  `json:"totalWeightKg"`
	LineItemIDs        []string `json:"lineItemIds"`
	CarrierAccountIDs  []string `json:"carrierAccountIds"`
}

// Fingerprint is a SHA-256 hash over the rate-relevant state of a shipment
// and the set of carrier accounts being shopped. Any change to the route,
// weight, line items or account set yields a different fingerprint, which
// invalidates the previous cache entry implicitly.
type Fingerprint string

// NewFingerprint computes the fingerprint for a shipment and account set.
func NewFingerprint(shp *shipment.Shipment, carrierAccountIDs []kernel.UUID) (Fingerprint, error) {
	if err := shp.Validate(); err != nil {
		return "", err
	}

	input := fingerprintInput{
		OriginCountry:      shp.OriginCountry().String(),
		DestinationCountry: shp.DestinationCountry().String(),
		TotalWeightKg:      shp.TotalWeightKg(),
		LineItemIDs:        sortedIDStrings(shp.LineItemIDs()),
		CarrierAccountIDs:  sortedIDStrings(carrierAccountIDs),
	}

	data, err := json.Marshal(input)
	if err != nil {
		return "", fmt.Errorf("marshal fingerprint input: %w", err)
	}

	sum := sha256.Sum256(data)
	return Fingerprint(hex.EncodeToString(sum[:])), nil
}

// String returns the hex-encoded hash.
func (f Fingerprint) String() string {
	return string(f)
}

// CacheKey returns the rate cache key for a shipment and fingerprint,
// in the form "rates:{shipmentID}:{hash}".
func (f Fingerprint) CacheKey(shipmentID kernel.UUID) string {
	return fmt.Sprintf("rates:%s:%s", shipmentID.String(), f.String())
}

// sortedIDStrings renders IDs as strings in lexicographic order.
func sortedIDStrings(ids []kernel.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	sort.Strings(out)
	return out
}
