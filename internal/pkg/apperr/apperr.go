package apperr

import "fmt"

// Kind classifies a failure so HTTP layers can map it to a status code
// without inspecting error strings or concrete types.
type Kind int

const (
	KindInternal Kind = iota
	KindConfiguration
	KindValidation
	KindNotReady
	KindTimeout
	KindUnreachable
	KindDownstream
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindValidation:
		return "validation"
	case KindNotReady:
		return "not_ready"
	case KindTimeout:
		return "timeout"
	case KindUnreachable:
		return "unreachable"
	case KindDownstream:
		return "downstream"
	default:
		return "internal"
	}
}

// Error is the tagged error carried between services and HTTP handlers.
// StatusCode and Body are only set for KindDownstream.
type Error struct {
	Kind       Kind
	Message    string
	StatusCode int
	Body       []byte
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Downstream records an error status relayed from another service.
func Downstream(statusCode int, body []byte) *Error {
	return &Error{
		Kind:       KindDownstream,
		Message:    fmt.Sprintf("downstream responded with status %d", statusCode),
		StatusCode: statusCode,
		Body:       body,
	}
}
