package components

import (
	"tourease/internal/handler"
	"tourease/internal/handler/api"
	"tourease/internal/handler/middleware"
	"tourease/internal/pkg/config"
	"tourease/internal/usecase/commands"
	"tourease/internal/usecase/queries"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		NewListingHandler,
		NewBookingHandler,
		api.NewReviewHandler,
		api.NewFavoriteHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewListingHandler(
	listingCommands commands.ListingCommands,
	listingQueries queries.ListingQueries,
	cfg config.Config,
) *api.ListingHandler {
	return api.NewListingHandler(listingCommands, listingQueries, cfg.Booking.MaxUploadBytes)
}

func NewBookingHandler(
	bookingCommands commands.BookingCommands,
	bookingQueries queries.BookingQueries,
	cfg config.Config,
) *api.BookingHandler {
	return api.NewBookingHandler(bookingCommands, bookingQueries, cfg.Booking.MaxUploadBytes)
}
