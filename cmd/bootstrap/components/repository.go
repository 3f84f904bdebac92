package components

import (
	repo_impl "tourease/internal/infra/repository"
	"tourease/internal/usecase/commands"
	"tourease/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewAccountRepository,
			fx.As(new(commands.AccountWriteStore)),
			fx.As(new(queries.AccountReadStore)),
		),
		fx.Annotate(
			repo_impl.NewListingRepository,
			fx.As(new(commands.ListingWriteStore)),
			fx.As(new(queries.ListingReadStore)),
		),
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(commands.BookingWriteStore)),
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			repo_impl.NewReviewRepository,
			fx.As(new(commands.ReviewWriteStore)),
			fx.As(new(queries.ReviewReadStore)),
		),
		fx.Annotate(
			repo_impl.NewFavoriteRepository,
			fx.As(new(commands.FavoriteWriteStore)),
		),
	),
)
