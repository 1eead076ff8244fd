package image

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/openai/openai-go"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	mu     sync.Mutex
	calls  atomic.Int32
	status int
	body   string
	got    map[string]any
	auth   string
	path   string
}

func (f *fakeProvider) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.calls.Add(1)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.path = r.URL.Path
	f.auth = r.Header.Get("Authorization")
	data, _ := io.ReadAll(r.Body)
	f.got = map[string]any{}
	_ = jsoniter.Unmarshal(data, &f.got)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(f.status)
	_, _ = io.WriteString(w, f.body)
}

func newTestProvider(t *testing.T, f *fakeProvider) *Provider {
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)
	return NewProvider(srv.URL+"/v1/",
		WithHTTPClient(srv.Client()),
		WithAPIKey(func() string { return "sk-test" }),
	)
}

func TestGenerateForwardsFixedParams(t *testing.T) {
	f := &fakeProvider{status: http.StatusOK, body: `{"created":1,"data":[{"b64_json":"QUJD"}]}`}
	p := newTestProvider(t, f)

	prompt := "  a red fox, {\"json\": true} \n"
	b64, err := p.Generate(context.Background(), prompt)
	require.NoError(t, err)
	require.Equal(t, "QUJD", b64)

	require.Equal(t, int32(1), f.calls.Load())
	require.Equal(t, "/v1/images/generations", f.path)
	require.Equal(t, "Bearer sk-test", f.auth)
	require.Equal(t, prompt, f.got["prompt"])
	require.Equal(t, "black-forest-labs/flux-dev", f.got["model"])
	require.Equal(t, "1024x1024", f.got["size"])
	require.EqualValues(t, 1, f.got["n"])
	require.Equal(t, "b64_json", f.got["response_format"])
	require.Equal(t, "standard", f.got["quality"])
	require.Equal(t, "webp", f.got["response_extension"])
	require.EqualValues(t, 1024, f.got["width"])
	require.EqualValues(t, 1024, f.got["height"])
	require.EqualValues(t, 28, f.got["num_inference_steps"])
	require.EqualValues(t, -1, f.got["seed"])
}

func TestGeneratePassesPayloadByteForByte(t *testing.T) {
	payload := "UklGRhoAAABXRUJQVlA4TA0AAAAvAAAAEAcQERGIiP4HAA=="
	f := &fakeProvider{status: http.StatusOK, body: `{"data":[{"b64_json":"` + payload + `"},{"b64_json":"ignored"}]}`}
	p := newTestProvider(t, f)

	b64, err := p.Generate(context.Background(), "anything")
	require.NoError(t, err)
	require.Equal(t, payload, b64)
}

func TestGenerateEmptyData(t *testing.T) {
	for name, body := range map[string]string{
		"empty list":      `{"data":[]}`,
		"missing data":    `{}`,
		"missing payload": `{"data":[{"url":"https://example.com/a.webp"}]}`,
	} {
		t.Run(name, func(t *testing.T) {
			f := &fakeProvider{status: http.StatusOK, body: body}
			p := newTestProvider(t, f)
			_, err := p.Generate(context.Background(), "a red fox")
			require.ErrorIs(t, err, NoImageError)
		})
	}
}

func TestGenerateProviderErrorIsNotRetried(t *testing.T) {
	f := &fakeProvider{status: http.StatusInternalServerError, body: `{"error":{"message":"boom"}}`}
	p := newTestProvider(t, f)

	_, err := p.Generate(context.Background(), "a red fox")
	require.Error(t, err)
	var apiErr *openai.Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	require.Equal(t, int32(1), f.calls.Load())
}

func TestGenerateMissingCredential(t *testing.T) {
	f := &fakeProvider{status: http.StatusOK, body: `{"data":[{"b64_json":"QUJD"}]}`}
	srv := httptest.NewServer(f)
	defer srv.Close()
	p := NewProvider(srv.URL+"/v1/", WithHTTPClient(srv.Client()))

	_, err := p.Generate(context.Background(), "a red fox")
	require.ErrorIs(t, err, MissingCredentialError)
	require.Zero(t, f.calls.Load())
}

func TestFirstB64(t *testing.T) {
	_, err := FirstB64(nil)
	require.ErrorIs(t, err, NoImageError)

	b64, err := FirstB64(&openai.ImagesResponse{Data: []openai.Image{{B64JSON: "QUJD"}}})
	require.NoError(t, err)
	require.Equal(t, "QUJD", b64)
}
