package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bookingin/booking-api/internal/api/metrics"
	"github.com/bookingin/booking-api/internal/core/domain"
	"github.com/bookingin/booking-api/internal/core/ports"
)

type ReviewHandler struct {
	service ports.ReviewService
}

func NewReviewHandler(service ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// List handles GET /api/properties/:propId/reviews.
//
// @Summary      List reviews of a property
// @Tags         reviews
// @Produce      json
// @Param        propId  path      string  true  "Property ID"
// @Success      200  {object}  dataResponse
// @Failure      404  {object}  errorResponse
// @Router       /properties/{propId}/reviews [get]
func (h *ReviewHandler) List(c echo.Context) error {
	reviews, err := h.service.List(c.Request().Context(), c.Param("propId"))
	if err != nil {
		return err
	}
	if reviews == nil {
		reviews = []*domain.Review{}
	}
	return c.JSON(http.StatusOK, dataResponse{Data: reviews})
}

// Create handles POST /api/properties/:propId/reviews. The author is the caller.
//
// @Summary      Review a property
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        propId  path      string         true  "Property ID"
// @Param        body    body      reviewRequest  true  "Review"
// @Success      201   {object}  dataResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /properties/{propId}/reviews [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req reviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	review, err := h.service.Create(c.Request().Context(), ports.ReviewInput{
		PropertyID: c.Param("propId"),
		UserID:     claims.UserID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		return err
	}

	metrics.ReviewsCreatedTotal.WithLabelValues(strconv.Itoa(review.Rating)).Inc()
	return c.JSON(http.StatusCreated, dataResponse{Data: review})
}
