package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookingin/booking-api/internal/api/metrics"
	"github.com/bookingin/booking-api/internal/core/domain"
	"github.com/bookingin/booking-api/internal/core/ports"
)

type PropertyHandler struct {
	service ports.PropertyService
}

func NewPropertyHandler(service ports.PropertyService) *PropertyHandler {
	return &PropertyHandler{service: service}
}

// List handles GET /api/properties.
//
// @Summary      List properties
// @Tags         properties
// @Produce      json
// @Success      200  {object}  dataResponse
// @Router       /properties [get]
func (h *PropertyHandler) List(c echo.Context) error {
	properties, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if properties == nil {
		properties = []*domain.Property{}
	}
	return c.JSON(http.StatusOK, dataResponse{Data: properties})
}

// Get handles GET /api/properties/:id.
//
// @Summary      Get a property
// @Tags         properties
// @Produce      json
// @Param        id   path      string  true  "Property ID"
// @Success      200  {object}  dataResponse
// @Failure      404  {object}  errorResponse
// @Router       /properties/{id} [get]
func (h *PropertyHandler) Get(c echo.Context) error {
	property, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Data: property})
}

// Create handles POST /api/properties.
//
// @Summary      Create a property
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      propertyRequest  true  "Property details"
// @Success      201   {object}  dataResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /properties [post]
func (h *PropertyHandler) Create(c echo.Context) error {
	var req propertyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	property, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}

	metrics.PropertiesCreatedTotal.WithLabelValues(property.Type).Inc()
	return c.JSON(http.StatusCreated, dataResponse{Data: property})
}

// Update handles PUT /api/properties/:id.
//
// @Summary      Replace a property
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      string           true  "Property ID"
// @Param        body  body      propertyRequest  true  "Property details"
// @Success      200   {object}  dataResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /properties/{id} [put]
func (h *PropertyHandler) Update(c echo.Context) error {
	var req propertyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	property, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Data: property})
}

// Delete handles DELETE /api/properties/:id. Rooms and reviews go with it.
//
// @Summary      Delete a property
// @Tags         properties
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      string  true  "Property ID"
// @Success      200  {object}  dataResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /properties/{id} [delete]
func (h *PropertyHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Data: "OK"})
}

func (r propertyRequest) toInput() ports.PropertyInput {
	return ports.PropertyInput{
		Name:          r.Name,
		Type:          r.Type,
		City:          r.City,
		Address:       r.Address,
		Description:   r.Description,
		CheapestPrice: r.CheapestPrice,
		Featured:      r.Featured,
	}
}
