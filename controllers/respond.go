package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/devevent/devevent-api/apperror"
)

// respondError writes the one canonical error body used by every
// endpoint: {message, error, code}.
func respondError(c *gin.Context, err error) {
	var appErr *apperror.Error
	if !errors.As(err, &appErr) {
		appErr = apperror.Internal("Internal Server Error", err)
	}
	c.JSON(appErr.Status(), gin.H{
		"message": appErr.Message,
		"error":   appErr.Detail(),
		"code":    appErr.Code,
	})
}
