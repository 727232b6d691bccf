package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/finance-tracker/internal/logger"
	"max.ks1230/finance-tracker/internal/model/customerr"
)

func respondError(c *gin.Context, err error) {
	var (
		authErr    *customerr.AuthError
		validation *customerr.ValidationError
		notFound   *customerr.NotFoundError
		conflict   *customerr.ConflictError
		status     int
		message    string
	)
	switch {
	case errors.As(err, &authErr):
		status, message = http.StatusUnauthorized, authErr.Err
	case errors.As(err, &validation):
		status, message = http.StatusBadRequest, validation.Err
	case errors.As(err, &notFound):
		status, message = http.StatusNotFound, notFound.Err
	case errors.As(err, &conflict):
		status, message = http.StatusConflict, conflict.Err
	default:
		logger.Error("request failed",
			zap.String("path", c.Request.URL.Path),
			zap.String("requestID", c.GetString(requestIDKey)),
			zap.Error(err))
		status, message = http.StatusInternalServerError, "Internal server error"
	}
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

func badRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": message})
}
