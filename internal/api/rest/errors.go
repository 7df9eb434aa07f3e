package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/dright/marketplace/internal/api/shared/errors"
	"github.com/dright/marketplace/internal/logger"
)

// errorResponse is the envelope every error leaves the API in
type errorResponse struct {
	Error *apierrors.APIError `json:"error"`
}

// respondError maps any error to its envelope and HTTP status. Domain
// sentinels translate through apierrors.FromError; 5xx errors get logged
// with the raw cause, which never reaches the client.
func respondError(c *gin.Context, err error) {
	apiErr := apierrors.FromError(err)
	status := apiErr.HTTPStatus()
	if status >= http.StatusInternalServerError {
		logger.ErrorCtx(c.Request.Context(), err,
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
		)
	}
	c.JSON(status, errorResponse{Error: apiErr})
}

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, errorResponse{Error: apierrors.NewBadRequestError(message, details...)})
}

// respondNotFound responds with a not found error
func respondNotFound(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusNotFound, errorResponse{Error: apierrors.NewNotFoundError(message, details...)})
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, details string) {
	c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: apierrors.NewValidationError(details)})
}

// respondUnauthorized responds with an unauthorized error
func respondUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, errorResponse{Error: apierrors.NewUnauthorizedError(message)})
}
