package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/reusedev/draw-lite/internal/consts"
)

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(consts.RequestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(consts.RequestIDKey, rid)
		c.Header(consts.RequestIDHeader, rid)
		c.Next()
	}
}
