package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/reusedev/draw-lite/internal/consts"
	"github.com/reusedev/draw-lite/internal/modules/http_client"
	"github.com/reusedev/draw-lite/internal/modules/logs"
	"github.com/reusedev/draw-lite/internal/modules/observer"
	"github.com/reusedev/draw-lite/tools"
)

var (
	SubmittingError = errors.New("a generation is already in flight")
	NoResultError   = errors.New("no generated image")
)

// Session holds the state of one generation view. Every response carries the
// sequence number of the submission that issued it and is dropped unless that
// number is still the latest, so a late answer can never overwrite newer state.
type Session struct {
	observer.Subjects
	mu       sync.Mutex
	endpoint string
	client   *http_client.HttpClient
	state    UIState
	seq      uint64
}

// Events passed to attached observers, data is the UIState after the change.
const (
	EventSubmitting  = "submitting"
	EventResult      = "result"
	EventError       = "error"
	EventImageLoaded = "image_loaded"
	EventReset       = "reset"
)

type Option func(s *Session)

func WithHTTPClient(c *http.Client) Option {
	return func(s *Session) {
		s.client = http_client.NewWithClient(c)
	}
}

// NewSession targets the proxy at baseURL, e.g. http://localhost:8080.
func NewSession(baseURL string, opts ...Option) *Session {
	s := &Session{
		endpoint: tools.FullURL(baseURL, consts.GenerateRoute),
		client:   http_client.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) State() UIState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) SetPrompt(prompt string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Prompt = prompt
}

// Submit blocks until the proxy answers. It returns SubmittingError without
// touching state when another submission is still in flight.
func (s *Session) Submit(ctx context.Context, prompt string) (Outcome, error) {
	s.mu.Lock()
	if s.state.IsSubmitting {
		s.mu.Unlock()
		return Outcome{}, SubmittingError
	}
	s.seq++
	seq := s.seq
	s.state = UIState{Prompt: prompt, IsSubmitting: true, IsImageLoading: true}
	state := s.state
	s.mu.Unlock()
	s.Notify(EventSubmitting, state)

	var outcome Outcome
	if strings.TrimSpace(prompt) == "" {
		outcome = Outcome{Err: &GenerationError{Kind: KindValidation, Message: consts.ErrPromptRequired}}
	} else {
		outcome = s.request(ctx, prompt)
	}
	return s.apply(seq, outcome), nil
}

func (s *Session) apply(seq uint64, outcome Outcome) Outcome {
	s.mu.Lock()
	if seq != s.seq {
		s.mu.Unlock()
		outcome.Stale = true
		return outcome
	}
	s.state.IsSubmitting = false
	event := EventResult
	if outcome.Err != nil {
		s.state.Error = outcome.Err
		s.state.IsImageLoading = false
		event = EventError
	} else {
		s.state.Result = outcome.Result
	}
	state := s.state
	s.mu.Unlock()
	s.Notify(event, state)
	return outcome
}

func (s *Session) request(ctx context.Context, prompt string) Outcome {
	req, err := s.client.NewRequest(http.MethodPost, s.endpoint,
		http_client.WithHeader("Content-Type", "application/json"),
		http_client.WithBody(generateRequest{Prompt: prompt}),
		http_client.WithContext(ctx),
	)
	if err != nil {
		return transportFailure(err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return transportFailure(err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportFailure(err)
	}

	var data generateResponse
	decodeErr := jsoniter.Unmarshal(body, &data)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		gErr := &GenerationError{Kind: KindHTTPStatus, Message: data.Error, Detail: data.Detail, StatusCode: resp.StatusCode}
		if decodeErr != nil || gErr.Message == "" {
			gErr.Message = consts.ErrGenerateFailed
		}
		logs.Logger.Warn().Int("status_code", resp.StatusCode).
			Str("error", gErr.Message).
			Str("detail", gErr.Detail).
			Msg("generate api error")
		return Outcome{Err: gErr}
	}
	if decodeErr != nil {
		return transportFailure(decodeErr)
	}
	if data.ImageURL == "" {
		logs.Logger.Warn().Int("status_code", resp.StatusCode).Msg("generate api returned no image")
		return Outcome{Err: &GenerationError{Kind: KindProviderContract, Message: consts.ErrGenerateFailed, StatusCode: resp.StatusCode}}
	}
	return Outcome{Result: newResult(data.ImageURL)}
}

func transportFailure(err error) Outcome {
	logs.Logger.Err(err).Msg("generate request failed")
	msg := err.Error()
	if msg == "" {
		msg = consts.ErrUnexpectedClient
	}
	return Outcome{Err: &GenerationError{Kind: KindTransport, Message: msg}}
}

// Render decodes the current image the way an image element would and marks
// loading as finished, whether or not the payload turned out displayable.
func (s *Session) Render() (Rendered, error) {
	s.mu.Lock()
	result := s.state.Result
	s.state.IsImageLoading = false
	state := s.state
	s.mu.Unlock()
	if result == nil {
		return Rendered{}, NoResultError
	}
	s.Notify(EventImageLoaded, state)
	data, err := result.Bytes()
	if err != nil {
		return Rendered{Src: result.Src()}, err
	}
	w, h, err := tools.WebPSize(data)
	if err != nil {
		return Rendered{Src: result.Src()}, err
	}
	return Rendered{Src: result.Src(), Width: w, Height: h}, nil
}

// Download saves the current image as generated-image.webp under dir.
// Without a result it does nothing and returns an empty path.
func (s *Session) Download(dir string) (string, error) {
	s.mu.Lock()
	result := s.state.Result
	s.mu.Unlock()
	if result == nil {
		return "", nil
	}
	data, err := result.Bytes()
	if err != nil {
		return "", err
	}
	return tools.WriteFile(dir, consts.DownloadName, data)
}

// Reset drops all state. A submission still in flight becomes stale.
func (s *Session) Reset() {
	s.mu.Lock()
	s.seq++
	s.state = UIState{}
	s.mu.Unlock()
	s.Notify(EventReset, UIState{})
}
