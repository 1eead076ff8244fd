package main

import (
	"context"
	"errors"
	"flag"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/reusedev/draw-lite/config"
	"github.com/reusedev/draw-lite/internal/modules/ai/image"
	"github.com/reusedev/draw-lite/internal/modules/logs"
	"github.com/reusedev/draw-lite/internal/service/http"
	"github.com/reusedev/draw-lite/tools"
)

var (
	httpPort   string
	configPath string
)

func init() {
	flag.StringVar(&httpPort, "http-port", ":8080", "listen http port")
	flag.StringVar(&configPath, "config", "config.yml", "config file path")
}

func main() {
	flag.Parse()
	config.Init(tools.PanicOnError(tools.ReadFile(configPath)))
	logs.InitLogger()

	provider := image.NewProviderFromConfig(config.GConfig.Provider)
	server := http.NewServer(httpPort, provider)

	osSignal := make(chan os.Signal, 1)
	signal.Notify(osSignal, syscall.SIGINT, syscall.SIGTERM)
	go func(ch chan os.Signal) {
		<-ch
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			logs.Logger.Err(err).Msg("shutdown")
		}
	}(osSignal)

	logs.Logger.Info().Str("addr", httpPort).
		Str("base_url", config.GConfig.Provider.BaseURL).
		Str("model", config.GConfig.Provider.Model).
		Msg("serving")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
		panic(err)
	}
}
