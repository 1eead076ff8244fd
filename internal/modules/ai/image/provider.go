package image

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/reusedev/draw-lite/config"
	"github.com/reusedev/draw-lite/internal/consts"
	"github.com/reusedev/draw-lite/internal/modules/logs"
)

type Provider struct {
	client  openai.Client
	params  Params
	baseURL string
	apiKey  func() string
}

type ProviderOption func(p *Provider)

func WithHTTPClient(c *http.Client) ProviderOption {
	return func(p *Provider) {
		p.client = openai.NewClient(
			option.WithBaseURL(p.baseURL),
			option.WithHTTPClient(c),
			option.WithMaxRetries(0),
		)
	}
}

func WithAPIKey(fn func() string) ProviderOption {
	return func(p *Provider) {
		p.apiKey = fn
	}
}

func WithModel(model string) ProviderOption {
	return func(p *Provider) {
		p.params.Model = model
	}
}

func DefaultParams() Params {
	return Params{
		Model:          consts.FluxDev.String(),
		Size:           consts.ImageSize,
		Width:          consts.ImageWidth,
		Height:         consts.ImageHeight,
		Count:          consts.ImageCount,
		Quality:        consts.QualityStandard,
		ResponseFormat: consts.ResponseFormatB64,
		Extension:      consts.ImageExtension,
		InferenceSteps: consts.InferenceSteps,
		NegativePrompt: consts.NegativePrompt,
		Seed:           consts.RandomSeed,
	}
}

// NewProvider talks to any OpenAI compatible images endpoint. The SDK's own
// retries are disabled, one inbound request means at most one provider call.
func NewProvider(baseURL string, opts ...ProviderOption) *Provider {
	p := &Provider{
		params:  DefaultParams(),
		baseURL: baseURL,
		apiKey:  func() string { return "" },
	}
	p.client = openai.NewClient(
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
	)
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func NewProviderFromConfig(cfg config.Provider) *Provider {
	return NewProvider(cfg.BaseURL,
		WithModel(cfg.Model),
		WithAPIKey(cfg.APIKey),
		withQuality(cfg.Quality),
	)
}

func withQuality(q string) ProviderOption {
	return func(p *Provider) {
		if q != "" {
			p.params.Quality = q
		}
	}
}

func (p *Provider) Params() Params {
	return p.params
}

func (p *Provider) Generate(ctx context.Context, prompt string) (string, error) {
	key := p.apiKey()
	if key == "" {
		return "", MissingCredentialError
	}
	params := openai.ImageGenerateParams{
		Model:          openai.ImageModel(p.params.Model),
		Prompt:         prompt,
		N:              openai.Int(int64(p.params.Count)),
		Size:           openai.ImageGenerateParamsSize(p.params.Size),
		Quality:        openai.ImageGenerateParamsQuality(p.params.Quality),
		ResponseFormat: openai.ImageGenerateParamsResponseFormat(p.params.ResponseFormat),
	}
	reqAt := time.Now()
	resp, err := p.client.Images.Generate(ctx, params,
		option.WithAPIKey(key),
		option.WithJSONSet("response_extension", p.params.Extension),
		option.WithJSONSet("width", p.params.Width),
		option.WithJSONSet("height", p.params.Height),
		option.WithJSONSet("num_inference_steps", p.params.InferenceSteps),
		option.WithJSONSet("negative_prompt", p.params.NegativePrompt),
		option.WithJSONSet("seed", p.params.Seed),
	)
	respAt := time.Now()
	if err != nil {
		logs.Logger.Err(err).
			Str("model", p.params.Model).
			Dur("req_consume_ms", respAt.Sub(reqAt)).
			Msg("image request failed")
		return "", fmt.Errorf("images.generate: %w", err)
	}
	logs.Logger.Info().
		Str("model", p.params.Model).
		Int("images", len(resp.Data)).
		Dur("req_consume_ms", respAt.Sub(reqAt)).
		Msg("image request")
	return FirstB64(resp)
}
