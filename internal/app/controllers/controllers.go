// Package controllers contains the HTTP handlers. Each controller
// binds and validates the request, delegates to its service and maps
// errors through middleware.HandleAPIError.
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mjoly/scolaris/internal/app/models/dto"
)

// parseIDParam reads a positive integer path parameter. On failure it
// writes the 400 response itself and reports ok=false.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" parameter")
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithField(name)))
		return 0, false
	}
	return id, true
}
