package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rateorant/client-gateway/internal/core/domain"
	"github.com/rateorant/client-gateway/internal/core/ports"
	"github.com/rateorant/client-gateway/internal/core/service"
)

// RestaurantHandler serves the detail view and the owner's add/edit forms.
type RestaurantHandler struct {
	details  *service.Details
	forms    *service.Forms
	sessions *service.Registry
}

func NewRestaurantHandler(details *service.Details, forms *service.Forms, sessions *service.Registry) *RestaurantHandler {
	return &RestaurantHandler{details: details, forms: forms, sessions: sessions}
}

// --- Request types ---

type restaurantRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Location    string   `json:"location" validate:"required"`
	ImageURL    string   `json:"image_url" validate:"omitempty,url"`
	CategoryIDs []string `json:"category_ids"`
}

func (r restaurantRequest) toInput() ports.RestaurantInput {
	ids := make([]domain.ID, len(r.CategoryIDs))
	for i, id := range r.CategoryIDs {
		ids[i] = domain.ID(id)
	}
	return ports.RestaurantInput{
		Name:        r.Name,
		Description: r.Description,
		Location:    r.Location,
		ImageURL:    r.ImageURL,
		CategoryIDs: ids,
	}
}

// Detail handles GET /restaurant/:restaurantId.
func (h *RestaurantHandler) Detail(c echo.Context) error {
	identity, _, err := ctxSession(c)
	if err != nil {
		return err
	}
	view, err := h.details.Get(c.Request().Context(), identity, domain.ID(c.Param("restaurantId")))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// AddForm handles GET /add-restaurant.
func (h *RestaurantHandler) AddForm(c echo.Context) error {
	identity, _, err := ctxSession(c)
	if err != nil {
		return err
	}
	view, err := h.forms.Load(c.Request().Context(), identity, "")
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// EditForm handles GET /edit-restaurant/:restaurantId. An ownership
// mismatch comes back inside the view as a permission message; the route
// itself was already admitted by the guard.
func (h *RestaurantHandler) EditForm(c echo.Context) error {
	identity, _, err := ctxSession(c)
	if err != nil {
		return err
	}
	view, err := h.forms.Load(c.Request().Context(), identity, domain.ID(c.Param("restaurantId")))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// Create handles POST /restaurants and signals the session dashboard to
// reload, replacing the old ?refreshed= side channel.
func (h *RestaurantHandler) Create(c echo.Context) error {
	_, token, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req restaurantRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.forms.Create(c.Request().Context(), token, req.toInput())
	if err != nil {
		return err
	}

	h.refreshDashboard(c, token)
	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /restaurants/:restaurantId.
func (h *RestaurantHandler) Update(c echo.Context) error {
	identity, token, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req restaurantRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.forms.Update(c.Request().Context(), identity, token, domain.ID(c.Param("restaurantId")), req.toInput())
	if err != nil {
		return err
	}

	h.refreshDashboard(c, token)
	return c.JSON(http.StatusOK, updated)
}

func (h *RestaurantHandler) refreshDashboard(c echo.Context, token string) {
	if sess, err := h.sessions.Resolve(token); err == nil {
		sess.Dashboard.Refresh(c.Request().Context())
	}
}
