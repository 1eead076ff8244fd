package consts

const (
	NebiusBaseURL = "https://api.studio.nebius.com/v1/"
	APIKeyEnv     = "NEBIUS_API_KEY"
)

type Model string

const (
	FluxDev     Model = "black-forest-labs/flux-dev"
	FluxSchnell Model = "black-forest-labs/flux-schnell"
)

func (m Model) String() string {
	return string(m)
}

// Generation parameters fixed by the proxy. Only the prompt comes from the caller.
const (
	ImageSize         = "1024x1024"
	ImageWidth        = 1024
	ImageHeight       = 1024
	ImageCount        = 1
	QualityStandard   = "standard"
	ResponseFormatB64 = "b64_json"
	ImageExtension    = "webp"
	InferenceSteps    = 28
	NegativePrompt    = ""
	RandomSeed        = -1
)

const (
	MimeTypeWebP    = "image/webp"
	DataURIPrefix   = "data:" + MimeTypeWebP + ";base64,"
	DownloadName    = "generated-image." + ImageExtension
	GenerateRoute   = "/api/generate"
	RequestIDKey    = "request_id"
	RequestIDHeader = "X-Request-ID"
)

const (
	ErrPromptRequired   = "Prompt is required"
	ErrGenerateFailed   = "Failed to generate image"
	ErrUnexpectedClient = "An unexpected error occurred"
)
