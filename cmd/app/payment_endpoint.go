package main

import (
	"net/http"

	"github.com/Ebennett1/Ecommerce-Platform-Back-end/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type paymentIntentRequest struct {
	TotalPrice decimal.Decimal `json:"total_price"`
}

func registerPaymentRoutes(g *echo.Group, ps *services.PaymentService, log *logrus.Logger) {

	g.POST("/create-payment-intent", func(c echo.Context) error {
		req := new(paymentIntentRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		secret, err := ps.CreateIntent(c.Request().Context(), req.TotalPrice)
		if err != nil {
			return httpError(c, log, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"clientSecret": secret})
	})
}
