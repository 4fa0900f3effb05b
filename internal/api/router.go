package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/rateorant/client-gateway/internal/api/handler"
	"github.com/rateorant/client-gateway/internal/api/middleware"
	"github.com/rateorant/client-gateway/internal/core/service"
)

// Dependencies carries everything the router wires into handlers.
type Dependencies struct {
	Sessions *service.Registry
	Details  *service.Details
	Forms    *service.Forms
	Auth     *service.Auth
	Logger   zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes
// registered. The route table mirrors the client-visible paths; each entry
// carries its access class as a guard, and the root path deliberately
// carries none.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(middleware.Session(service.DecodeIdentity))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Handlers ---
	dashboardHandler := handler.NewDashboardHandler(deps.Sessions)
	restaurantHandler := handler.NewRestaurantHandler(deps.Details, deps.Forms, deps.Sessions)
	reviewHandler := handler.NewReviewHandler(deps.Details)
	notificationHandler := handler.NewNotificationHandler(deps.Sessions)
	authHandler := handler.NewAuthHandler(deps.Auth, deps.Sessions)

	// --- Landing & auth routes (open) ---
	e.GET("/", dashboardHandler.Root)
	e.POST("/sign-in", authHandler.SignIn)
	e.POST("/sign-up", authHandler.SignUp)
	e.POST("/owner-sign-up", authHandler.OwnerSignUp)
	e.POST("/sign-out", authHandler.SignOut, middleware.Guard(middleware.AuthRoute))

	// --- Any authenticated identity ---
	e.GET("/restaurant/:restaurantId", restaurantHandler.Detail, middleware.Guard(middleware.AuthRoute))
	e.POST("/restaurant/:restaurantId/reviews", reviewHandler.Create, middleware.Guard(middleware.AuthRoute))
	e.DELETE("/restaurant/:restaurantId/reviews/:reviewId", reviewHandler.Delete, middleware.Guard(middleware.AuthRoute))

	// --- Non-owner users ---
	e.POST("/restaurants/:restaurantId/favorite", dashboardHandler.AddFavorite, middleware.Guard(middleware.UserRoute))
	e.DELETE("/restaurants/:restaurantId/favorite", dashboardHandler.RemoveFavorite, middleware.Guard(middleware.UserRoute))

	// --- Owners only ---
	e.GET("/add-restaurant", restaurantHandler.AddForm, middleware.Guard(middleware.OwnerRoute))
	e.GET("/edit-restaurant/:restaurantId", restaurantHandler.EditForm, middleware.Guard(middleware.OwnerRoute))
	e.POST("/restaurants", restaurantHandler.Create, middleware.Guard(middleware.OwnerRoute))
	e.PUT("/restaurants/:restaurantId", restaurantHandler.Update, middleware.Guard(middleware.OwnerRoute))
	e.DELETE("/restaurants/:restaurantId", dashboardHandler.DeleteRestaurant, middleware.Guard(middleware.OwnerRoute))
	e.GET("/notifications", notificationHandler.Summary, middleware.Guard(middleware.OwnerRoute))
	e.POST("/notifications/:notificationId/read", notificationHandler.MarkRead, middleware.Guard(middleware.OwnerRoute))
	e.POST("/notifications/clear", notificationHandler.Clear, middleware.Guard(middleware.OwnerRoute))

	// --- Operational endpoints ---
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
