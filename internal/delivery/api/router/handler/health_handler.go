// Package handler contains the HTTP handlers of the API server.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
