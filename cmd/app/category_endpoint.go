package main

import (
	"net/http"

	"github.com/Ebennett1/Ecommerce-Platform-Back-end/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type createCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func registerCategoryRoutes(g *echo.Group, cs *services.CategoryService, log *logrus.Logger) {

	g.GET("/categories", func(c echo.Context) error {
		list, err := cs.List(c.Request().Context())
		if err != nil {
			return httpError(c, log, err)
		}
		return c.JSON(http.StatusOK, list)
	})

	g.POST("/categories", func(c echo.Context) error {
		req := new(createCategoryRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		id, err := cs.Create(c.Request().Context(), req.Name, req.Description)
		if err != nil {
			return httpError(c, log, err)
		}
		return c.JSON(http.StatusCreated, echo.Map{"categoryid": id})
	})
}
