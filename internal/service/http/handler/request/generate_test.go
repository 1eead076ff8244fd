package request

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"
)

func TestGenerateValid(t *testing.T) {
	for body, ok := range map[string]bool{
		`{"prompt":"a red fox"}`: true,
		`{"prompt":" fox "}`:     true,
		`{"prompt":""}`:          false,
		`{"prompt":"  \t"}`:      false,
		`{}`:                     false,
		`{"prompt":null}`:        false,
		`{"prompt":42}`:          false,
		`{"prompt":["a"]}`:       false,
		`null`:                   false,
	} {
		var g Generate
		require.NoError(t, jsoniter.Unmarshal([]byte(body), &g), body)
		if ok {
			require.NoError(t, g.Valid(), body)
		} else {
			require.Error(t, g.Valid(), body)
		}
	}
}

func TestGenerateTextUntrimmed(t *testing.T) {
	g := Generate{Prompt: " fox "}
	require.Equal(t, " fox ", g.Text())
}
