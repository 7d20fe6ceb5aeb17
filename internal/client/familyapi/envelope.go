package familyapi

import (
	"encoding/json"
	"fmt"

	"github.com/s21platform/family-web/internal/model"
)

const fallbackErrorMessage = "something went wrong, please try again"

type authPayload struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Result  json.RawMessage `json:"result"`
}

// decodeAuth extracts the session from an auth response. The server has
// answered with more than one shape over time; they are tried in order:
//
//  1. {token, user}
//  2. {data: {token, user}}
//  3. {result: {token, user}}
//
// The first level that carries a token wins. A user without a token is
// never accepted.
func decodeAuth(body []byte) (*model.Session, error) {
	var top struct {
		authPayload
		envelope
	}
	if err := json.Unmarshal(body, &top); err != nil {
		return nil, fmt.Errorf("failed to decode auth response: %w", err)
	}

	candidates := []authPayload{top.authPayload}
	for _, nested := range []json.RawMessage{top.Data, top.Result} {
		if len(nested) == 0 || nested[0] != '{' {
			continue
		}
		var p authPayload
		if err := json.Unmarshal(nested, &p); err != nil {
			continue
		}
		candidates = append(candidates, p)
	}

	for _, c := range candidates {
		if c.Token == "" {
			continue
		}
		s := &model.Session{Token: c.Token}
		if c.User != nil {
			s.User = *c.User
		}
		return s, nil
	}

	return nil, fmt.Errorf("auth response carries no token")
}

// errorMessage returns the server supplied explanation, trying "message",
// "error" and "msg" in that order.
func errorMessage(body []byte) string {
	var e struct {
		Message string          `json:"message"`
		Error   json.RawMessage `json:"error"`
		Msg     string          `json:"msg"`
	}
	if err := json.Unmarshal(body, &e); err != nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	if len(e.Error) > 0 {
		var s string
		if err := json.Unmarshal(e.Error, &s); err == nil && s != "" {
			return s
		}
		var nested struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(e.Error, &nested); err == nil && nested.Message != "" {
			return nested.Message
		}
	}
	return e.Msg
}

// reportsFailure is true for 2xx bodies that still say {"success": false}.
func reportsFailure(body []byte) bool {
	var e envelope
	if err := json.Unmarshal(body, &e); err != nil {
		return false
	}
	return e.Success != nil && !*e.Success
}
