package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reusedev/draw-lite/internal/consts"
	"github.com/reusedev/draw-lite/internal/modules/logs"
	"github.com/reusedev/draw-lite/internal/service/http/handler/response"
)

// Recovery turns a panic into the same error body the handlers write.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, err any) {
		logs.Logger.Error().
			Str("request_id", c.GetString(consts.RequestIDKey)).
			Str("panic", fmt.Sprint(err)).
			Msg("recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.InternalError(consts.ErrGenerateFailed, fmt.Sprint(err)))
	})
}
