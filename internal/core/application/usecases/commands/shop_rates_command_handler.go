package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"freight/internal/core/domain/model/account"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/rate"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"

	"golang.org/x/sync/errgroup"
)

const (
	// rateCacheTTL bounds how long a rate snapshot may be served without
	// re-querying the carriers.
	rateCacheTTL = 10 * time.Minute

	// carrierCallTimeout bounds a single carrier rate call so one slow
	// provider cannot stall the whole fan-out.
	carrierCallTimeout = 5 * time.Second
)

// ShopRatesCommandHandler orchestrates rate shopping for a shipment.
// Fans out to every active carrier account of the requesting user in
// parallel, tolerating individual carrier failures, and returns the
// merged quote list sorted cheapest-first. Rates come from the acting
// user's own accounts, so the shipment owner does not have to be the
// one shopping.
//
// The handler layers a fingerprint-keyed cache in front of the carriers:
// a live cache entry short-circuits the fan-out entirely. Either way the
// returned snapshot is also persisted on the shipment's carrier meta row,
// so the booking flow always validates against what the user last saw.
//
// Cache failures are never fatal. A broken cache degrades to carrier
// calls on every request; it does not break rate shopping.
type ShopRatesCommandHandler struct {
	uowFactory     UoWFactory
	adapterFactory ports.AdapterFactory
	rateCache      ports.RateCache
	logger         *slog.Logger
}

// NewShopRatesCommandHandler creates a handler for rate shopping.
func NewShopRatesCommandHandler(
	uowFactory UoWFactory,
	adapterFactory ports.AdapterFactory,
	rateCache ports.RateCache,
	logger *slog.Logger,
) ShopRatesCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return ShopRatesCommandHandler{
		uowFactory:     uowFactory,
		adapterFactory: adapterFactory,
		rateCache:      rateCache,
		logger:         logger,
	}
}

// Handle processes the rate shopping command and returns the sorted quotes.
//
// A user without active carrier accounts gets an empty result straight
// away; neither the cache nor any adapter is consulted. A carrier account
// that fails or times out contributes zero quotes; the remaining accounts
// still produce a result. An empty fan-out result is returned to the
// caller and recorded on the meta row, but never cached - the next
// request retries the carriers instead of serving a cached failure.
func (h ShopRatesCommandHandler) Handle(ctx context.Context, cmd ShopRatesCommand) ([]rate.Quote, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shp, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	accounts, err := uow.CarrierAccountRepository().GetAllActiveByUser(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}

	// A user with no active accounts has no carriers to ask. Return the
	// empty result without touching the cache or the adapters.
	if len(accounts) == 0 {
		if err = uow.Commit(ctx); err != nil {
			return nil, err
		}
		return []rate.Quote{}, nil
	}

	accountIDs := make([]kernel.UUID, 0, len(accounts))
	for _, acc := range accounts {
		accountIDs = append(accountIDs, acc.ID())
	}

	fingerprint, err := rate.NewFingerprint(shp, accountIDs)
	if err != nil {
		return nil, err
	}
	cacheKey := fingerprint.CacheKey(shp.ID())

	quotes, encoded, fromCache := h.readCache(ctx, cacheKey)
	if !fromCache {
		quotes = h.fetchFromCarriers(ctx, shp, accounts)
		rate.SortQuotes(quotes)

		encoded, err = rate.EncodeQuotes(quotes)
		if err != nil {
			return nil, err
		}

		if len(quotes) > 0 {
			if cacheErr := h.rateCache.Set(ctx, cacheKey, encoded, rateCacheTTL); cacheErr != nil {
				h.logger.Warn("rate cache write failed",
					"key", cacheKey, "error", cacheErr)
			}
		}
	}

	if err = h.recordSnapshot(ctx, uow, shp.ID(), encoded); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return quotes, nil
}

// readCache attempts to serve the request from the rate cache.
// Returns the decoded quotes, the raw payload and whether the hit is usable.
func (h ShopRatesCommandHandler) readCache(ctx context.Context, key string) ([]rate.Quote, string, bool) {
	payload, err := h.rateCache.Get(ctx, key)
	if errors.Is(err, ports.ErrCacheMiss) {
		return nil, "", false
	}
	if err != nil {
		h.logger.Warn("rate cache read failed", "key", key, "error", err)
		return nil, "", false
	}

	quotes, err := rate.DecodeQuotes(payload)
	if err != nil {
		// A corrupt entry is treated as a miss and overwritten by the refetch.
		h.logger.Warn("rate cache entry is corrupt", "key", key, "error", err)
		return nil, "", false
	}

	return quotes, payload, true
}

// fetchFromCarriers queries every account's carrier in parallel and merges
// the quotes. Failures are isolated per account: a panic, timeout or
// adapter error is logged and the account contributes nothing.
func (h ShopRatesCommandHandler) fetchFromCarriers(
	ctx context.Context,
	shp *shipment.Shipment,
	accounts []*account.CarrierAccount,
) []rate.Quote {
	results := make([][]rate.Quote, len(accounts))

	g, groupCtx := errgroup.WithContext(ctx)
	for i, acc := range accounts {
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					h.logger.Error("carrier rate fetch panicked",
						"accountID", acc.ID(), "provider", acc.Provider(), "panic", r)
				}
			}()

			callCtx, cancel := context.WithTimeout(groupCtx, carrierCallTimeout)
			defer cancel()

			adapter, err := h.adapterFactory.Resolve(callCtx, acc)
			if err != nil {
				h.logger.Warn("carrier adapter resolution failed",
					"accountID", acc.ID(), "provider", acc.Provider(), "error", err)
				return nil
			}

			accountQuotes, err := adapter.GetRates(callCtx, shp)
			if err != nil {
				h.logger.Warn("carrier rate fetch failed",
					"accountID", acc.ID(), "provider", acc.Provider(), "error", err)
				return nil
			}

			results[i] = accountQuotes
			return nil
		})
	}
	// Workers swallow their own errors, so Wait only synchronizes.
	_ = g.Wait()

	quotes := make([]rate.Quote, 0)
	for _, accountQuotes := range results {
		quotes = append(quotes, accountQuotes...)
	}
	return quotes
}

// recordSnapshot upserts the shipment's carrier meta row with the snapshot
// that is being returned to the caller.
func (h ShopRatesCommandHandler) recordSnapshot(ctx context.Context, uow UoW, shipmentID kernel.UUID, encoded string) error {
	metaRepo := uow.CarrierMetaRepository()

	meta, err := metaRepo.GetByShipmentID(ctx, shipmentID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		meta, err = shipment.NewCarrierMeta(shipmentID)
	}
	if err != nil {
		return err
	}

	meta.RecordQuotes(encoded)
	return metaRepo.Upsert(ctx, meta)
}
