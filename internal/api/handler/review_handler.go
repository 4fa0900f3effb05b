package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rateorant/client-gateway/internal/core/domain"
	"github.com/rateorant/client-gateway/internal/core/ports"
	"github.com/rateorant/client-gateway/internal/core/service"
)

// ReviewHandler covers the review mutations on the detail view.
type ReviewHandler struct {
	details *service.Details
}

func NewReviewHandler(details *service.Details) *ReviewHandler {
	return &ReviewHandler{details: details}
}

type createReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// Create handles POST /restaurant/:restaurantId/reviews. The backend
// notifies the listing's owner as a side effect of the creation; the
// gateway sends nothing extra.
func (h *ReviewHandler) Create(c echo.Context) error {
	_, token, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	review, err := h.details.AddReview(c.Request().Context(), token, domain.ID(c.Param("restaurantId")), ports.ReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, review)
}

// Delete handles DELETE /restaurant/:restaurantId/reviews/:reviewId.
func (h *ReviewHandler) Delete(c echo.Context) error {
	_, token, err := ctxSession(c)
	if err != nil {
		return err
	}
	err = h.details.DeleteReview(c.Request().Context(), token, domain.ID(c.Param("restaurantId")), domain.ID(c.Param("reviewId")))
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
