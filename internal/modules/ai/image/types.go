package image

import (
	"context"
	"errors"
)

// Generator turns one prompt into one base64 encoded WEBP image.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

var (
	// NoImageError means the provider answered but the first image carried no payload.
	NoImageError = errors.New("provider returned no image")
	// MissingCredentialError is reported on first use, never at startup.
	MissingCredentialError = errors.New("provider api key is not configured")
)

type Params struct {
	Model          string
	Size           string
	Width          int
	Height         int
	Count          int
	Quality        string
	ResponseFormat string
	Extension      string
	InferenceSteps int
	NegativePrompt string
	Seed           int
}
