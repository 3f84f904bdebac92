package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tourease/internal/domain/user"
	"tourease/internal/handler/api"
	"tourease/internal/handler/middleware"
	"tourease/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	listingHandler *api.ListingHandler,
	bookingHandler *api.BookingHandler,
	reviewHandler *api.ReviewHandler,
	favoriteHandler *api.FavoriteHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, listingHandler, bookingHandler, reviewHandler, favoriteHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	listingHandler *api.ListingHandler,
	bookingHandler *api.BookingHandler,
	reviewHandler *api.ReviewHandler,
	favoriteHandler *api.FavoriteHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/signup", Handler: authHandler.SignUp},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		listings := apiGroup.Group("/listings")
		{
			addRoutes(listings, []route{
				{Method: http.MethodGet, Path: "", Handler: listingHandler.Search},
				{Method: http.MethodGet, Path: "/:id", Handler: listingHandler.GetByID},
				{Method: http.MethodGet, Path: "/:id/reviews", Handler: reviewHandler.ListByListing},
			})

			hostOnly := listings.Group("")
			hostOnly.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleHost))
			addRoutes(hostOnly, []route{
				{Method: http.MethodPost, Path: "", Handler: listingHandler.Create},
				{Method: http.MethodDelete, Path: "/:id", Handler: listingHandler.Delete},
			})

			authed := listings.Group("")
			authed.Use(authMiddleware.RequireAuth())
			addRoutes(authed, []route{
				{Method: http.MethodPost, Path: "/:id/reviews", Handler: reviewHandler.Create},
			})
		}

		// Flows accept anonymous users; a valid token attaches the booking to
		// the account and pins the guest name to its display name.
		flows := apiGroup.Group("/bookings/flows")
		flows.Use(authMiddleware.OptionalAuth())
		{
			addRoutes(flows, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.StartFlow},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetFlow},
				{Method: http.MethodPost, Path: "/:id/guest-details", Handler: bookingHandler.SubmitGuestDetails},
				{Method: http.MethodPost, Path: "/:id/back", Handler: bookingHandler.Back},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: bookingHandler.Confirm},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListMine},
				{Method: http.MethodDelete, Path: "/:id", Handler: bookingHandler.Delete},
				{Method: http.MethodGet, Path: "/:id/receipt", Handler: bookingHandler.Receipt},
			})
		}

		favorites := apiGroup.Group("/favorites")
		favorites.Use(authMiddleware.RequireAuth())
		{
			addRoutes(favorites, []route{
				{Method: http.MethodGet, Path: "", Handler: favoriteHandler.List},
				{Method: http.MethodPut, Path: "/:id", Handler: favoriteHandler.Add},
				{Method: http.MethodDelete, Path: "/:id", Handler: favoriteHandler.Remove},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
