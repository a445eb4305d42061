package main

import (
	"net/http"
	"strconv"

	"github.com/Ebennett1/Ecommerce-Platform-Back-end/internal/model"
	"github.com/Ebennett1/Ecommerce-Platform-Back-end/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type productRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	CategoryID  *int64          `json:"categoryid,omitempty"`
	Image       *string         `json:"image,omitempty"`
}

func registerProductRoutes(g *echo.Group, ps *services.ProductService, log *logrus.Logger) {

	// list with ?category_id=&search=&page=&page_size=
	g.GET("/products", func(c echo.Context) error {
		var f model.ProductFilter
		if v := c.QueryParam("category_id"); v != "" {
			id, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid category_id"})
			}
			f.CategoryID = &id
		}
		f.Search = c.QueryParam("search")
		f.Page, _ = strconv.Atoi(c.QueryParam("page"))
		f.PageSize, _ = strconv.Atoi(c.QueryParam("page_size"))

		page, err := ps.List(c.Request().Context(), f)
		if err != nil {
			return httpError(c, log, err)
		}
		return c.JSON(http.StatusOK, page)
	})

	g.GET("/products/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
		}
		p, err := ps.Get(c.Request().Context(), id)
		if err != nil {
			return httpError(c, log, err)
		}
		return c.JSON(http.StatusOK, p)
	})

	g.POST("/products", func(c echo.Context) error {
		req := new(productRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		p := &model.Product{
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
			Stock:       req.Stock,
			CategoryID:  req.CategoryID,
			Image:       req.Image,
		}
		id, err := ps.Create(c.Request().Context(), p)
		if err != nil {
			return httpError(c, log, err)
		}
		return c.JSON(http.StatusCreated, echo.Map{"productid": id})
	})

	g.PUT("/products/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
		}
		req := new(productRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		p := &model.Product{
			ProductID:   id,
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
			Stock:       req.Stock,
			CategoryID:  req.CategoryID,
			Image:       req.Image,
		}
		if err := ps.Update(c.Request().Context(), p); err != nil {
			return httpError(c, log, err)
		}
		return c.JSON(http.StatusOK, p)
	})

	g.DELETE("/products/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
		}
		if err := ps.Delete(c.Request().Context(), id); err != nil {
			return httpError(c, log, err)
		}
		return c.NoContent(http.StatusNoContent)
	})
}
