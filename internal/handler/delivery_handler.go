package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"paquexpress/internal/service"
)

// DeliveryHandler handles delivery recording and history endpoints.
type DeliveryHandler struct {
	deliveryService service.DeliveryService
}

// NewDeliveryHandler creates a new delivery handler.
func NewDeliveryHandler(deliveryService service.DeliveryService) *DeliveryHandler {
	return &DeliveryHandler{deliveryService: deliveryService}
}

// RecordDelivery godoc
// @Summary Record a delivery with GPS coordinates and an evidence photo
// @Tags deliveries
// @Accept multipart/form-data
// @Produce json
// @Param user_id formData int true "Courier user ID"
// @Param package_id formData int true "Package ID"
// @Param latitude formData number true "Latitude"
// @Param longitude formData number true "Longitude"
// @Param file formData file true "Evidence photo"
// @Success 201 {object} model.Delivery
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /deliveries/ [post]
func (h *DeliveryHandler) RecordDelivery(c echo.Context) error {
	userID, err := parseUintParam(c.FormValue("user_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}
	packageID, err := parseUintParam(c.FormValue("package_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid package id")
	}
	lat, err := decimal.NewFromString(c.FormValue("latitude"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid latitude")
	}
	lon, err := decimal.NewFromString(c.FormValue("longitude"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid longitude")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing evidence photo")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable evidence photo")
	}
	defer file.Close()

	delivery, err := h.deliveryService.RecordDelivery(
		c.Request().Context(), userID, packageID, lat, lon, file, fileHeader.Filename)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusCreated, delivery)
}

// ListDeliveries godoc
// @Summary List a user's deliveries, newest first
// @Tags deliveries
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {array} model.Delivery
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /deliveries/user/{user_id} [get]
func (h *DeliveryHandler) ListDeliveries(c echo.Context) error {
	userID, err := parseUintParam(c.Param("user_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	deliveries, err := h.deliveryService.ListDeliveriesForUser(c.Request().Context(), userID)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, deliveries)
}
