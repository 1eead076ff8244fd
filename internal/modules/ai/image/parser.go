package image

import (
	"github.com/openai/openai-go"
)

// FirstB64 returns the first image's payload untouched. No decoding or
// re-encoding happens here, the caller receives the provider's bytes as is.
func FirstB64(resp *openai.ImagesResponse) (string, error) {
	if resp == nil || len(resp.Data) == 0 {
		return "", NoImageError
	}
	b64 := resp.Data[0].B64JSON
	if b64 == "" {
		return "", NoImageError
	}
	return b64, nil
}
