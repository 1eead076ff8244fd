package response

type Error struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

var (
	ParamErrorWithMessage = func(message string) Error {
		return Error{Error: message}
	}

	InternalError = func(message string, detail string) Error {
		return Error{Error: message, Detail: detail}
	}
)
