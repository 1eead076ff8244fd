package tools

import (
	"bytes"
	"fmt"

	"golang.org/x/image/webp"
)

// WebPSize decodes only the header, enough to know the image is displayable.
func WebPSize(data []byte) (width, height int, err error) {
	cfg, err := webp.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, fmt.Errorf("decode webp: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}
