package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rateorant/client-gateway/internal/api/metrics"
	"github.com/rateorant/client-gateway/internal/api/middleware"
	"github.com/rateorant/client-gateway/internal/core/domain"
	"github.com/rateorant/client-gateway/internal/core/service"
)

// DashboardHandler serves the root view: the landing page for anonymous
// visitors and the role-appropriate restaurant grid for everyone else. It
// also owns the mutations that act on the session's dashboard state
// (favorite toggles, listing deletion).
type DashboardHandler struct {
	sessions *service.Registry
}

func NewDashboardHandler(sessions *service.Registry) *DashboardHandler {
	return &DashboardHandler{sessions: sessions}
}

type landingResponse struct {
	View string `json:"view"`
}

type dashboardResponse struct {
	View       string            `json:"view"`
	Role       string            `json:"role"`
	Username   string            `json:"username"`
	Cards      []service.Card    `json:"cards"`
	Categories []domain.Category `json:"categories"`
	Filters    service.Filters   `json:"filters"`
	Error      string            `json:"error,omitempty"`
}

// Root handles GET /. The root path carries no guard: it renders the
// landing view when anonymous and the owner or user dashboard otherwise.
//
// Query parameters: search (seeds the search filter and forces the
// category back to "all"), category, rating, favorites, and refreshed
// (legacy cache-busting signal, mapped onto an explicit reload).
func (h *DashboardHandler) Root(c echo.Context) error {
	identity := middleware.Identity(c)
	if identity == nil {
		return c.JSON(http.StatusOK, landingResponse{View: "landing"})
	}

	sess, err := h.sessions.Resolve(middleware.Credential(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credential")
	}
	dash := sess.Dashboard
	ctx := c.Request().Context()

	if search := c.QueryParam("search"); search != "" {
		dash.SeedSearch(search)
	}
	if rating := c.QueryParam("rating"); rating != "" {
		dash.SetRatingFloor(rating)
	}
	if favorites := c.QueryParam("favorites"); favorites != "" {
		dash.SetFavoritesOnly(favorites == "true")
	}

	if category := c.QueryParam("category"); category != "" && category != dash.Filters().Category {
		dash.SetCategory(ctx, category)
	} else {
		dash.Load(ctx)
	}

	role := "user"
	if identity.IsOwner() {
		role = "owner"
	}
	metrics.DashboardLoadsTotal.WithLabelValues(role).Inc()

	return c.JSON(http.StatusOK, dashboardResponse{
		View:       "dashboard",
		Role:       role,
		Username:   identity.Username,
		Cards:      dash.Visible(),
		Categories: dash.Categories(),
		Filters:    dash.Filters(),
		Error:      dash.Error(),
	})
}

// AddFavorite handles POST /restaurants/:restaurantId/favorite. The local
// set updates optimistically; a failed backend sync is logged, not rolled
// back.
func (h *DashboardHandler) AddFavorite(c echo.Context) error {
	_, token, err := ctxSession(c)
	if err != nil {
		return err
	}
	sess, err := h.sessions.Resolve(token)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credential")
	}
	sess.Dashboard.AddFavorite(c.Request().Context(), domain.ID(c.Param("restaurantId")))
	return c.NoContent(http.StatusNoContent)
}

// RemoveFavorite handles DELETE /restaurants/:restaurantId/favorite.
func (h *DashboardHandler) RemoveFavorite(c echo.Context) error {
	_, token, err := ctxSession(c)
	if err != nil {
		return err
	}
	sess, err := h.sessions.Resolve(token)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credential")
	}
	sess.Dashboard.RemoveFavorite(c.Request().Context(), domain.ID(c.Param("restaurantId")))
	return c.NoContent(http.StatusNoContent)
}

// DeleteRestaurant handles DELETE /restaurants/:restaurantId. The caller
// must confirm explicitly; the local snapshot is only touched after the
// backend acknowledges the delete.
func (h *DashboardHandler) DeleteRestaurant(c echo.Context) error {
	if c.QueryParam("confirm") != "true" {
		return echo.NewHTTPError(http.StatusBadRequest, "confirmation required: pass confirm=true")
	}

	_, token, err := ctxSession(c)
	if err != nil {
		return err
	}
	sess, err := h.sessions.Resolve(token)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credential")
	}
	if err := sess.Dashboard.DeleteRestaurant(c.Request().Context(), domain.ID(c.Param("restaurantId"))); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
