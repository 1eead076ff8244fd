package handler

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
	"github.com/reusedev/draw-lite/internal/consts"
	"github.com/reusedev/draw-lite/internal/modules/ai/image"
	"github.com/reusedev/draw-lite/internal/modules/logs"
	"github.com/reusedev/draw-lite/internal/service/http/handler/request"
	"github.com/reusedev/draw-lite/internal/service/http/handler/response"
)

var emptyBodyError = errors.New("empty request body")

// Generate answers every request, whatever fails on the way.
func Generate(gen image.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetString(consts.RequestIDKey)
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			logs.Logger.Err(err).Str("request_id", requestID).Msg("read generate body")
			c.JSON(http.StatusInternalServerError, response.InternalError(consts.ErrGenerateFailed, err.Error()))
			return
		}
		form := request.Generate{}
		if len(bytes.TrimSpace(body)) == 0 {
			err = emptyBodyError
		} else {
			err = jsoniter.Unmarshal(body, &form)
		}
		if err != nil {
			logs.Logger.Err(err).Str("request_id", requestID).Msg("decode generate body")
			c.JSON(http.StatusInternalServerError, response.InternalError(consts.ErrGenerateFailed, err.Error()))
			return
		}
		if err = form.Valid(); err != nil {
			c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage(consts.ErrPromptRequired))
			return
		}

		b64, err := gen.Generate(c.Request.Context(), form.Text())
		if errors.Is(err, image.NoImageError) {
			// the cause stays in the log
			logs.Logger.Err(err).Str("request_id", requestID).Msg("generate image")
			c.JSON(http.StatusInternalServerError, response.InternalError(consts.ErrGenerateFailed, ""))
			return
		}
		if err != nil {
			logs.Logger.Err(err).Str("request_id", requestID).Msg("generate image")
			c.JSON(http.StatusInternalServerError, response.InternalError(consts.ErrGenerateFailed, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.Generate{ImageURL: b64})
	}
}
