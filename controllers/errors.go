package controllers

import (
	"errors"
	"net/http"

	"github.com/ankit-0705/Macrology/pkg/logger"
	"github.com/ankit-0705/Macrology/services"
	"github.com/ankit-0705/Macrology/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto the HTTP error taxonomy. Unexpected
// errors are logged with detail and surface only as an opaque 500 body.
func respondError(c *gin.Context, log *logger.Logger, err error) {
	var verrs utils.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		c.JSON(http.StatusBadRequest, gin.H{"errors": verrs})
	case errors.Is(err, services.ErrEmailTaken), errors.Is(err, services.ErrPhoneTaken):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		log.Errorw("request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error."})
	}
}
