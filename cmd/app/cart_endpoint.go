package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Ebennett1/Ecommerce-Platform-Back-end/internal/middleware"
	"github.com/Ebennett1/Ecommerce-Platform-Back-end/internal/model"
	"github.com/Ebennett1/Ecommerce-Platform-Back-end/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type addCartRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type replaceCartRequest struct {
	Items []model.CartLine `json:"items"`
}

func registerCartRoutes(g *echo.Group, cs *services.CartService, log *logrus.Logger) {
	p := g.Group("/cart")
	p.Use(middleware.JWTMiddleware())

	p.GET("", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		cart, err := cs.Get(c.Request().Context(), claims.UserID)
		if err != nil {
			return httpError(c, log, err)
		}
		return c.JSON(http.StatusOK, cart)
	})

	// PUT /cart replaces the cart's contents wholesale
	p.PUT("", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		req := new(replaceCartRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		cart, err := cs.Replace(c.Request().Context(), claims.UserID, req.Items)
		if err != nil {
			return httpError(c, log, err)
		}
		return c.JSON(http.StatusOK, cart)
	})

	p.POST("/add", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		req := new(addCartRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		item, err := cs.Add(c.Request().Context(), claims.UserID, req.ProductID, req.Quantity)
		if err != nil {
			// a missing product is a bad add request, not a 404
			if errors.Is(err, services.ErrNotFound) {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
			}
			return httpError(c, log, err)
		}
		return c.JSON(http.StatusCreated, item)
	})

	p.PUT("/update/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
		}
		req := new(updateCartItemRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		item, err := cs.UpdateItem(c.Request().Context(), id, req.Quantity)
		if err != nil {
			return httpError(c, log, err)
		}
		if item == nil {
			// quantity 0 removed the line
			return c.NoContent(http.StatusNoContent)
		}
		return c.JSON(http.StatusOK, item)
	})

	p.DELETE("/update/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
		}
		if err := cs.RemoveItem(c.Request().Context(), id); err != nil {
			return httpError(c, log, err)
		}
		return c.NoContent(http.StatusNoContent)
	})
}
