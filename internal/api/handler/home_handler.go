package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	apiName    = "BookingIn API"
	apiVersion = "1.0.0"
)

type bannerResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Message string `json:"message"`
}

// Home handles GET /api.
//
// @Summary      API banner
// @Tags         meta
// @Produce      json
// @Success      200  {object}  dataResponse
// @Router       / [get]
func Home(c echo.Context) error {
	return c.JSON(http.StatusOK, dataResponse{Data: bannerResponse{
		Name:    apiName,
		Version: apiVersion,
		Message: "Welcome to the BookingIn API",
	}})
}
