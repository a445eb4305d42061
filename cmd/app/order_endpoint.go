package main

import (
	"net/http"
	"strconv"

	"github.com/Ebennett1/Ecommerce-Platform-Back-end/internal/middleware"
	"github.com/Ebennett1/Ecommerce-Platform-Back-end/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

func registerOrderRoutes(g *echo.Group, os *services.OrderService, cs *services.CartService, log *logrus.Logger) {

	orders := g.Group("/orders")
	orders.Use(middleware.JWTMiddleware())

	orders.POST("/create", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		order, err := os.Checkout(c.Request().Context(), claims.UserID)
		if err != nil {
			return httpError(c, log, err)
		}
		return c.JSON(http.StatusCreated, order)
	})

	history := g.Group("/order-history")
	history.Use(middleware.JWTMiddleware())

	history.GET("", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		list, err := os.History(c.Request().Context(), claims.UserID)
		if err != nil {
			return httpError(c, log, err)
		}
		return c.JSON(http.StatusOK, list)
	})

	history.GET("/:id", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
		}
		order, err := os.Get(c.Request().Context(), id, claims.UserID)
		if err != nil {
			return httpError(c, log, err)
		}
		return c.JSON(http.StatusOK, order)
	})

	history.DELETE("/clear", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		if err := os.ClearHistory(c.Request().Context(), claims.UserID); err != nil {
			return httpError(c, log, err)
		}
		return c.NoContent(http.StatusNoContent)
	})

	history.POST("/reorder/:id", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
		}
		if _, err := os.Reorder(c.Request().Context(), claims.UserID, id); err != nil {
			return httpError(c, log, err)
		}
		cart, err := cs.Get(c.Request().Context(), claims.UserID)
		if err != nil {
			return httpError(c, log, err)
		}
		return c.JSON(http.StatusOK, cart)
	})
}
