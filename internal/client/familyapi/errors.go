package familyapi

import (
	"errors"
	"fmt"
)

// ErrTransport marks failures where no response was received.
var ErrTransport = errors.New("unable to reach the server")

// APIError is a failure reported by the server itself.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server error %d: %s", e.Status, e.Message)
}

func newAPIError(status int, body []byte) *APIError {
	msg := errorMessage(body)
	if msg == "" {
		msg = fallbackErrorMessage
	}
	return &APIError{Status: status, Message: msg}
}

// UserMessage is the text a view shows for err.
func UserMessage(err error) string {
	var apiErr *APIError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &apiErr):
		return apiErr.Message
	case errors.Is(err, ErrTransport):
		return ErrTransport.Error()
	}
	return err.Error()
}
