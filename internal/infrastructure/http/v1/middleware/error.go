package middleware

import (
	"github.com/gin-gonic/gin"

	"isoref/internal/core/apperror"
	appctx "isoref/internal/core/context"
	"isoref/internal/infrastructure/http/v1/dto"
	"isoref/pkg/logger"
)

// ErrorHandler middleware transforms errors into consistent JSON responses.
// Hides internal errors from clients while logging full details.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err

		// If response already written by handler, do not override it.
		if c.Writer.Written() {
			return
		}

		ctx := c.Request.Context()
		requestID := appctx.GetRequestID(ctx)

		if appErr, ok := apperror.AsAppError(err); ok {
			if appErr.Err != nil {
				logger.Error(ctx, "request error",
					"code", appErr.Code,
					"cause", appErr.Err,
				)
			}

			c.JSON(appErr.HTTPStatus, dto.ErrorResponse{
				Code:      appErr.Code,
				Message:   appErr.Message,
				Details:   appErr.Details,
				RequestID: requestID,
			})
			return
		}

		// Unknown error - log and return generic message
		logger.Error(ctx, "unhandled error", "error", err)

		c.JSON(500, dto.ErrorResponse{
			Code:      apperror.CodeInternal,
			Message:   "Internal server error",
			RequestID: requestID,
		})
	}
}
