package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"paquexpress/internal/errors"
)

// domainError maps a service error to its HTTP representation.
func domainError(err error) *echo.HTTPError {
	he := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
}

// parseUintParam parses a positive numeric path or form value.
func parseUintParam(value string) (uint, error) {
	parsed, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(parsed), nil
}
