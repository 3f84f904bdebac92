package components

import (
	"tourease/internal/pkg/clock"
	"tourease/internal/pkg/config"
	"tourease/internal/pkg/jwt"
	"tourease/internal/usecase/commands"
	"tourease/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		func(svc *jwt.Service) *jwt.Service { return svc },
		fx.As(new(commands.TokenIssuer)),
		fx.As(new(commands.TokenValidator)),
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		NewRatingSummaryProvider,
		queries.NewAccountQueries,
		queries.NewListingQueries,
		queries.NewReviewQueries,
		queries.NewBookingQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		NewBookingCommands,
		commands.NewListingCommands,
		commands.NewReviewCommands,
		commands.NewFavoriteCommands,
	),
)

func NewRatingSummaryProvider(reviews queries.ReviewReadStore, cfg config.Config) *queries.RatingSummaryProvider {
	return queries.NewRatingSummaryProvider(reviews, cfg.Rating.MaxSize, cfg.Rating.TTL)
}

func NewBookingCommands(
	listings queries.ListingReadStore,
	accounts queries.AccountReadStore,
	bookings commands.BookingWriteStore,
	clk clock.Clock,
	cfg config.Config,
) commands.BookingCommands {
	return commands.NewBookingCommands(
		listings,
		accounts,
		bookings,
		clk,
		cfg.Booking.PaymentProcessingDelay,
		cfg.Booking.FlowTTL,
	)
}
