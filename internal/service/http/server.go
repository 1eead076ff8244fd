package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reusedev/draw-lite/internal/consts"
	"github.com/reusedev/draw-lite/internal/modules/ai/image"
	"github.com/reusedev/draw-lite/internal/service/http/handler"
	"github.com/reusedev/draw-lite/internal/service/http/middleware"
)

// NewServer leaves every timeout at its zero value; the provider call may take
// as long as the transport allows.
func NewServer(port string, gen image.Generator) *http.Server {
	return &http.Server{
		Addr:    port,
		Handler: NewEngine(gen),
	}
}

func NewEngine(gen image.Generator) *gin.Engine {
	e := gin.New()
	initRouter(e, gen)
	return e
}

func initRouter(e *gin.Engine, gen image.Generator) {
	e.Use(middleware.RequestID(), middleware.RequestLogger(), middleware.Recovery())
	e.GET("/", handler.Index)
	e.GET("/healthz", handler.Health)
	e.POST(consts.GenerateRoute, handler.Generate(gen))
}
