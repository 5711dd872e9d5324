package response

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domainerrors "betterside.backend/internal/domain/errors"
	"betterside.backend/pkg/logger"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		// Unexpected errors never reach the client verbatim
		logger.Error(c.Request.Context(), "Unhandled error",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		appErr = domainerrors.InternalError(err)
	} else if appErr.Status >= 500 && appErr.Err != nil {
		logger.Error(c.Request.Context(), "Server error",
			zap.String("path", c.Request.URL.Path),
			zap.Error(appErr.Err),
		)
	}

	body := gin.H{
		"error": appErr.Message,
		"code":  appErr.Code,
	}
	if len(appErr.Fields) > 0 {
		body["fields"] = appErr.Fields
	}
	c.AbortWithStatusJSON(appErr.Status, body)
}

// ErrorWithError sends an error response with a specific status, code and message
func ErrorWithError(c *gin.Context, status int, code string, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"error": message,
		"code":  code,
	})
}

// Paginated sends a {data, meta} list body
func Paginated(c *gin.Context, status int, data interface{}, meta interface{}) {
	c.JSON(status, gin.H{
		"data": data,
		"meta": meta,
	})
}
