package cmd

import (
	"fmt"
	"log/slog"

	"freight/internal/adapters/out/cache"
	"freight/internal/adapters/out/carriers"
	"freight/internal/adapters/out/postgres"
	redis_adapter "freight/internal/adapters/out/redis"
	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/ports"
	"freight/internal/pkg/vault"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB         *gorm.DB
	uowFactory     postgres.GormUnitOfWorkFactory
	credentialsVlt *vault.Vault
	adapterFactory ports.AdapterFactory
	rateCache      ports.RateCache
	logger         *slog.Logger
}

// NewCompositionRoot wires the application graph. When no Redis address is
// configured the rate cache falls back to an in-process implementation, which
// keeps single-node deployments and local development free of extra moving
// parts.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	credentialsVlt, err := vault.New(config.CarrierEncryptionKey)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("initialize credentials vault: %w", err)
	}

	uowFactory := postgres.NewGormUnitOfWorkFactory(gormDB)

	adapterFactory, err := carriers.NewFactory(carriers.NewDefaultRegistry(), credentialsVlt, uowFactory)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("initialize carrier adapter factory: %w", err)
	}

	var rateCache ports.RateCache
	if config.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     config.RedisAddr,
			Password: config.RedisPassword,
		})
		rateCache, err = redis_adapter.NewRateCache(client)
		if err != nil {
			return CompositionRoot{}, fmt.Errorf("initialize redis rate cache: %w", err)
		}
	} else {
		rateCache = cache.NewRateCache()
	}

	return CompositionRoot{
		gormDB:         gormDB,
		uowFactory:     *uowFactory,
		credentialsVlt: credentialsVlt,
		adapterFactory: adapterFactory,
		rateCache:      rateCache,
		logger:         logger,
	}, nil
}

func (c *CompositionRoot) CreateConnectCarrierAccountCommandHandler() commands.ConnectCarrierAccountCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConnectCarrierAccountCommandHandler(f, c.credentialsVlt)
}

func (c *CompositionRoot) CreateDeactivateCarrierAccountCommandHandler() commands.DeactivateCarrierAccountCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeactivateCarrierAccountCommandHandler(f)
}

func (c *CompositionRoot) CreateShopRatesCommandHandler() commands.ShopRatesCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewShopRatesCommandHandler(f, c.adapterFactory, c.rateCache, c.logger)
}

func (c *CompositionRoot) CreateBookShipmentCommandHandler() commands.BookShipmentCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewBookShipmentCommandHandler(f, c.adapterFactory)
}

func (c *CompositionRoot) CreateUpdateTrackingCommandHandler() commands.UpdateTrackingCommandHandler {
	var f commands.TrackingUoWFactory = FuncTrackingUoWFactory(func() commands.TrackingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateTrackingCommandHandler(f, c.adapterFactory, c.logger)
}

func (c *CompositionRoot) CreateGetCarrierAccountsQueryHandler() queries.GetCarrierAccountsQueryHandler {
	return queries.NewGetCarrierAccountsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentRatesQueryHandler() queries.GetShipmentRatesQueryHandler {
	return queries.NewGetShipmentRatesQueryHandler(c.gormDB)
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncTrackingUoWFactory func() commands.TrackingUoW

func (f FuncTrackingUoWFactory) Create() commands.TrackingUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
