package main

import (
	"net/http"

	"github.com/Ebennett1/Ecommerce-Platform-Back-end/internal/middleware"
	"github.com/Ebennett1/Ecommerce-Platform-Back-end/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type updateProfileRequest struct {
	Phone string `json:"phone_number"`
}

func registerProfileRoutes(g *echo.Group, authSvc *services.AuthService, log *logrus.Logger) {
	p := g.Group("/profile")
	p.Use(middleware.JWTMiddleware())

	p.GET("", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		acct, err := authSvc.Account(c.Request().Context(), claims.UserID)
		if err != nil {
			return httpError(c, log, err)
		}
		return c.JSON(http.StatusOK, acct)
	})

	p.PUT("", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		req := new(updateProfileRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		if err := authSvc.UpdateProfile(c.Request().Context(), claims.UserID, req.Phone); err != nil {
			return httpError(c, log, err)
		}
		acct, err := authSvc.Account(c.Request().Context(), claims.UserID)
		if err != nil {
			return httpError(c, log, err)
		}
		return c.JSON(http.StatusOK, acct)
	})
}
