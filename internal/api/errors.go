package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a normalized transport failure.
type Kind int

const (
	KindNetwork       Kind = iota // no response reached the client
	KindAuthorization             // credentials missing, invalid, or expired
	KindServer                    // 5xx
	KindClient                    // other 4xx
	KindValidation                // client-side, never dispatched
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindAuthorization:
		return "authorization"
	case KindServer:
		return "server"
	case KindClient:
		return "client"
	case KindValidation:
		return "validation"
	default:
		return ""
	}
}

// Error is the uniform failure shape produced for every failed operation.
//
// Status is 0 when no response was received (network failure) or the error
// originated client-side.
type Error struct {
	Kind    Kind
	Message string
	Status  int
}

func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s error (status %d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

// AsError extracts an *Error from err, normalizing unknown errors into
// KindNetwork so callers always observe one shape.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return &Error{Kind: KindNetwork, Message: err.Error()}
}

// IsAuthorization reports whether err is a normalized authorization failure.
func IsAuthorization(err error) bool {
	e := AsError(err)
	return e != nil && e.Kind == KindAuthorization
}

// NetworkError constructs the canonical no-response failure.
func NetworkError() *Error {
	return &Error{Kind: KindNetwork, Message: "network error"}
}

// ValidationError constructs a client-side validation failure that is never
// dispatched to the server.
func ValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// normalizeStatus converts a non-2xx response into an *Error following the
// interceptor contract: 401 forces the authorization path, 5xx falls back
// to a generic server message unless the envelope supplies one, and other
// 4xx surface the envelope message when present.
func normalizeStatus(status int, body []byte) *Error {
	message := envelopeMessage(body)

	switch {
	case status == http.StatusUnauthorized:
		if message == "" {
			message = "unauthorized"
		}
		return &Error{Kind: KindAuthorization, Message: message, Status: status}
	case status >= 500:
		if message == "" {
			message = "server error"
		}
		return &Error{Kind: KindServer, Message: message, Status: status}
	default:
		if message == "" {
			message = "something went wrong"
		}
		return &Error{Kind: KindClient, Message: message, Status: status}
	}
}

// envelopeMessage extracts the message field from an envelope body, if any.
func envelopeMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	return envelope.Message
}
