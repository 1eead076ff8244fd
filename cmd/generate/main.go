package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/reusedev/draw-lite/internal/modules/client"
	"github.com/reusedev/draw-lite/internal/modules/logs"
	"github.com/reusedev/draw-lite/internal/modules/observer"
)

var (
	server   string
	prompt   string
	outDir   string
	logLevel string
)

func init() {
	flag.StringVar(&server, "server", "http://localhost:8080", "draw-lite server address")
	flag.StringVar(&prompt, "prompt", "", "text prompt")
	flag.StringVar(&outDir, "out", ".", "directory the image is saved to")
	flag.StringVar(&logLevel, "log-level", "warn", "log level")
}

func main() {
	flag.Parse()
	logs.NewConsole(logLevel)
	os.Exit(run(context.Background()))
}

func run(ctx context.Context) int {
	session := client.NewSession(server)
	session.Attach(observer.Func(func(event string, data interface{}) {
		state := data.(client.UIState)
		logs.Logger.Info().Str("event", event).
			Bool("submitting", state.IsSubmitting).
			Bool("image_loading", state.IsImageLoading).
			Msg("state")
	}))
	outcome, err := session.Submit(ctx, prompt)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if !outcome.Succeed() {
		fmt.Fprintln(os.Stderr, outcome.Err.Message)
		if outcome.Err.Detail != "" {
			fmt.Fprintln(os.Stderr, outcome.Err.Detail)
		}
		return 1
	}
	rendered, err := session.Render()
	if err != nil {
		logs.Logger.Warn().Err(err).Msg("image is not a decodable webp")
	} else {
		fmt.Printf("generated %dx%d image\n", rendered.Width, rendered.Height)
	}
	path, err := session.Download(outDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Println(path)
	return 0
}
