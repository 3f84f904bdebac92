package bootstrap

import (
	"context"

	"tourease/internal/infra/kvstore"
	"tourease/internal/pkg/config"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		fx.Annotate(
			NewStore,
			fx.As(new(kvstore.Store)),
		),
	),
)

func NewStore(lc fx.Lifecycle, cfg config.Config) (*kvstore.PostgresStore, error) {
	store, cleanup, err := kvstore.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return store, nil
}
