package rest

import (
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"
)

func Start(logger *slog.Logger, port string, users userService, auth authService) error {
	e := echo.New()
	e.HideBanner = true

	authHandler := NewAuth(logger, users, auth)

	e.GET("/ping", pingHandler)
	e.POST("/auth/login", authHandler.Login)

	if err := e.Start(":" + port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
