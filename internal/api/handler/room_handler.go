package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookingin/booking-api/internal/api/metrics"
	"github.com/bookingin/booking-api/internal/core/domain"
	"github.com/bookingin/booking-api/internal/core/ports"
)

type RoomHandler struct {
	service ports.RoomService
}

func NewRoomHandler(service ports.RoomService) *RoomHandler {
	return &RoomHandler{service: service}
}

// List handles GET /api/properties/:propId/rooms.
//
// @Summary      List rooms of a property
// @Tags         rooms
// @Produce      json
// @Param        propId  path      string  true  "Property ID"
// @Success      200  {object}  dataResponse
// @Failure      404  {object}  errorResponse
// @Router       /properties/{propId}/rooms [get]
func (h *RoomHandler) List(c echo.Context) error {
	rooms, err := h.service.List(c.Request().Context(), c.Param("propId"))
	if err != nil {
		return err
	}
	if rooms == nil {
		rooms = []*domain.Room{}
	}
	return c.JSON(http.StatusOK, dataResponse{Data: rooms})
}

// Create handles POST /api/properties/:propId/rooms.
//
// @Summary      Add a room to a property
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        propId  path      string       true  "Property ID"
// @Param        body    body      roomRequest  true  "Room details"
// @Success      201   {object}  dataResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /properties/{propId}/rooms [post]
func (h *RoomHandler) Create(c echo.Context) error {
	var req roomRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	room, err := h.service.Create(c.Request().Context(), c.Param("propId"), req.toInput())
	if err != nil {
		return err
	}

	metrics.RoomsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, dataResponse{Data: room})
}

// Update handles PUT /api/properties/:propId/rooms/:roomId.
//
// @Summary      Replace a room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        propId  path      string       true  "Property ID"
// @Param        roomId  path      string       true  "Room ID"
// @Param        body    body      roomRequest  true  "Room details"
// @Success      200     {object}  dataResponse
// @Failure      400     {object}  errorResponse
// @Failure      403     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /properties/{propId}/rooms/{roomId} [put]
func (h *RoomHandler) Update(c echo.Context) error {
	var req roomRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	room, err := h.service.Update(c.Request().Context(), c.Param("propId"), c.Param("roomId"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Data: room})
}

// Delete handles DELETE /api/properties/:propId/rooms/:roomId.
//
// @Summary      Delete a room
// @Tags         rooms
// @Produce      json
// @Security     CookieAuth
// @Param        propId  path      string  true  "Property ID"
// @Param        roomId  path      string  true  "Room ID"
// @Success      200     {object}  dataResponse
// @Failure      403     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /properties/{propId}/rooms/{roomId} [delete]
func (h *RoomHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("propId"), c.Param("roomId")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Data: "OK"})
}

func (r roomRequest) toInput() ports.RoomInput {
	return ports.RoomInput{
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		MaxPeople:   r.MaxPeople,
	}
}
