package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	apperrors "github.com/TickTockPlumbing/ticktock-backend/errors"
	"github.com/TickTockPlumbing/ticktock-backend/logger"
	"github.com/TickTockPlumbing/ticktock-backend/types"
	"github.com/gin-gonic/gin"
)

// ErrorHandler converts errors attached to the gin context into the API's
// {success:false, error, details?} envelope. It also recovers panics,
// logging the stack and responding with a generic 500 so no internals
// leak to the caller.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log := logger.GetLogger()
				log.Errorw("Panic recovered while handling request",
					"panic", r,
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
					"stack_trace", string(debug.Stack()),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					types.ErrorResponse("Internal server error"))
			}
		}()

		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		if appError, ok := err.(*apperrors.AppError); ok {
			statusCode := appError.GetHTTPStatus()
			logger.LogHTTPError(c, err, statusCode, fmt.Sprintf("%s error", appError.Type))

			// Delivery failures carry provider detail for operators;
			// validation detail helps direct API callers fix their payload.
			if appError.Detail != "" &&
				(appError.Type == apperrors.DeliveryError || appError.Type == apperrors.ValidationError) {
				c.JSON(statusCode, types.ErrorResponseWithDetails(appError.Message, appError.Detail))
				return
			}

			c.JSON(statusCode, types.ErrorResponse(appError.Message))
			return
		}

		// Non-AppError errors are unexpected: log and return a generic 500.
		logger.LogHTTPError(c, err, http.StatusInternalServerError, "Unhandled error")
		c.JSON(http.StatusInternalServerError, types.ErrorResponse("Internal server error"))
	}
}
