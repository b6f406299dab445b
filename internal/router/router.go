package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"paquexpress/internal/config"
	"paquexpress/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	packageHandler *handler.PackageHandler,
	deliveryHandler *handler.DeliveryHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Auth routes
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// Package routes
	e.GET("/packages/:user_id", packageHandler.ListPackages)
	e.POST("/packages/demo_create", packageHandler.CreateDemoPackages)

	// Delivery routes
	e.POST("/deliveries/", deliveryHandler.RecordDelivery)
	e.GET("/deliveries/user/:user_id", deliveryHandler.ListDeliveries)

	// Evidence photos are served back statically.
	e.Static("/uploads", cfg.UploadDir)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
