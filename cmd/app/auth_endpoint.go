package main

import (
	"net/http"

	"github.com/Ebennett1/Ecommerce-Platform-Back-end/internal/middleware"
	"github.com/Ebennett1/Ecommerce-Platform-Back-end/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

type passwordResetRequest struct {
	Email string `json:"email"`
}

type passwordResetConfirmRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

func registerAuthRoutes(g *echo.Group, authSvc *services.AuthService, log *logrus.Logger) {

	g.POST("/register", func(c echo.Context) error {
		req := new(registerRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		id, err := authSvc.Register(c.Request().Context(), req.Username, req.Email, req.Password)
		if err != nil {
			return httpError(c, log, err)
		}
		return c.JSON(http.StatusCreated, echo.Map{"userid": id, "username": req.Username, "email": req.Email})
	})

	g.POST("/login", func(c echo.Context) error {
		req := new(loginRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		user, err := authSvc.Login(c.Request().Context(), req.Username, req.Password)
		if err != nil {
			return httpError(c, log, err)
		}
		pair, err := middleware.GenerateTokenPair(user.UserID, user.Username)
		if err != nil {
			return httpError(c, log, err)
		}
		return c.JSON(http.StatusOK, pair)
	})

	g.POST("/token/refresh", func(c echo.Context) error {
		req := new(refreshRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		pair, err := middleware.RotateTokens(req.Refresh)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid refresh token"})
		}
		return c.JSON(http.StatusOK, pair)
	})

	g.POST("/password/reset", func(c echo.Context) error {
		req := new(passwordResetRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		if err := authSvc.RequestPasswordReset(c.Request().Context(), req.Email); err != nil {
			return httpError(c, log, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"success": "password reset email sent"})
	})

	g.POST("/password/reset/confirm", func(c echo.Context) error {
		req := new(passwordResetConfirmRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		if err := authSvc.ConfirmPasswordReset(c.Request().Context(), req.Token, req.Password); err != nil {
			return httpError(c, log, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"success": "password updated"})
	})
}
