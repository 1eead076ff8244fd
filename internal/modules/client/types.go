package client

import (
	"encoding/base64"
	"fmt"

	"github.com/reusedev/draw-lite/internal/consts"
)

type Kind string

const (
	// KindValidation is raised locally, no request was sent.
	KindValidation Kind = "validation"
	// KindHTTPStatus means the proxy answered with a non 2xx status.
	KindHTTPStatus Kind = "http_status"
	// KindProviderContract means a 2xx answer without an image.
	KindProviderContract Kind = "provider_contract"
	// KindTransport covers network failures and undecodable bodies.
	KindTransport Kind = "transport"
)

type GenerationResult struct {
	ImageData string `json:"imageData"`
	MimeType  string `json:"mimeType"`
}

func newResult(b64 string) *GenerationResult {
	return &GenerationResult{ImageData: b64, MimeType: consts.MimeTypeWebP}
}

// Src is what an <img> element would be given.
func (r *GenerationResult) Src() string {
	return consts.DataURIPrefix + r.ImageData
}

func (r *GenerationResult) Bytes() ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(r.ImageData)
	if err != nil {
		return nil, fmt.Errorf("decode image data: %w", err)
	}
	return data, nil
}

type GenerationError struct {
	Kind       Kind   `json:"kind"`
	Message    string `json:"message"`
	Detail     string `json:"detail,omitempty"`
	StatusCode int    `json:"status_code,omitempty"`
}

func (e *GenerationError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Detail)
	}
	return e.Message
}

type UIState struct {
	Prompt         string
	Result         *GenerationResult
	Error          *GenerationError
	IsSubmitting   bool
	IsImageLoading bool
}

// Outcome is exactly one of Result or Err. Stale is set when a newer
// submission or a Reset happened while this one was in flight; a stale
// outcome was not applied to the session state.
type Outcome struct {
	Result *GenerationResult
	Err    *GenerationError
	Stale  bool
}

func (o Outcome) Succeed() bool {
	return o.Result != nil
}

type Rendered struct {
	Src    string
	Width  int
	Height int
}

// wire shapes of the proxy
type generateRequest struct {
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	ImageURL string `json:"imageUrl"`
	Error    string `json:"error"`
	Detail   string `json:"detail"`
}
