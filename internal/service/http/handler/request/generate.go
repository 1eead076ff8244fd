package request

import (
	"fmt"
	"strings"
)

// Generate keeps prompt untyped so a non string value is a validation
// failure rather than a decode failure.
type Generate struct {
	Prompt any `json:"prompt"`
}

func (g *Generate) Valid() error {
	s, ok := g.Prompt.(string)
	if !ok {
		return fmt.Errorf("prompt must be a string, got %T", g.Prompt)
	}
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("prompt is empty")
	}
	return nil
}

// Text is only meaningful after Valid returned nil. The prompt is forwarded
// exactly as received.
func (g *Generate) Text() string {
	s, _ := g.Prompt.(string)
	return s
}
