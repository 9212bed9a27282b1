package rate

import (
	"encoding/json"
	"fmt"

	"freight/internal/core/domain/model/account"
	"freight/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// quoteDTO is the wire shape of a Quote, shared by the rate cache and the
// persisted snapshot. The amount travels as a string to keep decimal
// precision intact across round-trips.
type quoteDTO struct {
	CarrierAccountID     string `json:"carrierAccountId"`
	Provider             string `json:"provider"`
	ServiceCode          string `json:"serviceCode"`
	ServiceName          string `json:"serviceName"`
	Amount               string `json:"amount"`
	Currency             string `json:"currency"`
	EstimatedTransitDays int    `json:"estimatedTransitDays"`
}

// MarshalJSON implements json.Marshaler.
func (q Quote) MarshalJSON() ([]byte, error) {
	return json.Marshal(quoteDTO{
		CarrierAccountID:     q.carrierAccountID.String(),
		Provider:             q.provider.String(),
		ServiceCode:          q.serviceCode,
		ServiceName:          q.serviceName,
		Amount:               q.amount.String(),
		Currency:             q.currency,
		EstimatedTransitDays: q.estimatedTransitDays,
	})
}

// UnmarshalJSON implements json.Unmarshaler. The decoded quote passes the
// same validation as NewQuote, so a corrupted cache entry surfaces as an
// error instead of a half-built quote.
func (q *Quote) UnmarshalJSON(data []byte) error {
	var dto quoteDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return err
	}

	accountID, err := kernel.UUIDFromString(dto.CarrierAccountID)
	if err != nil {
		return fmt.Errorf("decode quote carrier account ID: %w", err)
	}

	provider, err := account.ParseProvider(dto.Provider)
	if err != nil {
		return fmt.Errorf("decode quote provider: %w", err)
	}

	amount, err := decimal.NewFromString(dto.Amount)
	if err != nil {
		return fmt.Errorf("decode quote amount: %w", err)
	}

	quote, err := NewQuote(accountID, provider, dto.ServiceCode, dto.ServiceName,
		amount, dto.Currency, dto.EstimatedTransitDays)
	if err != nil {
		return fmt.Errorf("decode quote: %w", err)
	}

	*q = quote
	return nil
}

// EncodeQuotes serializes quotes to the JSON array stored in the cache and
// the carrier meta snapshot. A nil slice encodes as an empty array.
func EncodeQuotes(quotes []Quote) (string, error) {
	if quotes == nil {
		quotes = []Quote{}
	}

	data, err := json.Marshal(quotes)
	if err != nil {
		return "", fmt.Errorf("encode quotes: %w", err)
	}
	return string(data), nil
}

// DecodeQuotes deserializes a JSON array produced by EncodeQuotes.
func DecodeQuotes(encoded string) ([]Quote, error) {
	var quotes []Quote
	if err := json.Unmarshal([]byte(encoded), &quotes); err != nil {
		return nil, fmt.Errorf("decode quotes: %w", err)
	}
	return quotes, nil
}
