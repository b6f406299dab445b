package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"paquexpress/internal/service"
)

// PackageHandler handles package listing and demo seeding endpoints.
type PackageHandler struct {
	packageService service.PackageService
}

// NewPackageHandler creates a new package handler.
func NewPackageHandler(packageService service.PackageService) *PackageHandler {
	return &PackageHandler{packageService: packageService}
}

// DemoCreateResponse represents the demo seeding response.
type DemoCreateResponse struct {
	Message  string      `json:"message"`
	Packages interface{} `json:"packages"`
}

// ListPackages godoc
// @Summary List packages assigned to a user
// @Tags packages
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {array} model.Package
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /packages/{user_id} [get]
func (h *PackageHandler) ListPackages(c echo.Context) error {
	userID, err := parseUintParam(c.Param("user_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	pkgs, err := h.packageService.ListPackages(c.Request().Context(), userID)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, pkgs)
}

// CreateDemoPackages godoc
// @Summary Seed two demo packages for a user
// @Tags packages
// @Accept x-www-form-urlencoded
// @Produce json
// @Param user_id formData int true "User ID"
// @Success 201 {object} DemoCreateResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /packages/demo_create [post]
func (h *PackageHandler) CreateDemoPackages(c echo.Context) error {
	userID, err := parseUintParam(c.FormValue("user_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	pkgs, err := h.packageService.SeedDemoPackages(c.Request().Context(), userID)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusCreated, DemoCreateResponse{
		Message:  "demo packages created",
		Packages: pkgs,
	})
}
