package main

import (
	"errors"
	"net/http"

	"github.com/Ebennett1/Ecommerce-Platform-Back-end/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// httpError translates service errors into the response taxonomy:
// validation → 400, not found → 404, unauthorized → 401, everything
// else → 500 with a logged diagnostic and a generic body.
func httpError(c echo.Context, log *logrus.Logger, err error) error {
	switch {
	case errors.Is(err, services.ErrValidation):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, services.ErrUnauthorized):
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": err.Error()})
	default:
		log.WithError(err).WithField("path", c.Path()).Error("request failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}
