package familyapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/s21platform/family-web/internal/config"
	"github.com/s21platform/family-web/internal/model"
)

const maxResponseBytes = 4 << 20

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(cfg *config.Config) *Client {
	return NewWithHTTPClient(cfg.FamilyAPI.BaseURL, &http.Client{
		Timeout: cfg.FamilyAPI.Timeout,
	})
}

func NewWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

func (c *Client) SignIn(ctx context.Context, creds model.Credentials) (*model.Session, error) {
	body, err := c.do(ctx, http.MethodPost, "/auth/login", "", creds)
	if err != nil {
		return nil, err
	}
	return decodeAuth(body)
}

func (c *Client) Register(ctx context.Context, reg model.Registration) (*model.Session, error) {
	body, err := c.do(ctx, http.MethodPost, "/auth/register", "", reg)
	if err != nil {
		return nil, err
	}
	return decodeAuth(body)
}

func (c *Client) AcceptInvite(ctx context.Context, inviteToken string, acc model.InviteAcceptance) (*model.Session, error) {
	path := "/auth/accept-invite/" + url.PathEscape(inviteToken)
	body, err := c.do(ctx, http.MethodPost, path, "", acc)
	if err != nil {
		return nil, err
	}
	return decodeAuth(body)
}

func (c *Client) ListFamilies(ctx context.Context, token string) ([]model.Family, error) {
	var resp struct {
		Data []model.Family `json:"data"`
	}
	if err := c.getJSON(ctx, "/families", token, &resp); err != nil {
		return nil, err
	}
	return nonNil(resp.Data), nil
}

func (c *Client) ListMembers(ctx context.Context, token, familyID string) ([]model.Member, error) {
	var resp struct {
		Data []model.Member `json:"data"`
	}
	if err := c.getJSON(ctx, "/families/"+url.PathEscape(familyID)+"/members", token, &resp); err != nil {
		return nil, err
	}
	return nonNil(resp.Data), nil
}

func (c *Client) ListEvents(ctx context.Context, token, familyID string) ([]model.Event, error) {
	var resp struct {
		Data []model.Event `json:"data"`
	}
	if err := c.getJSON(ctx, "/events/"+url.PathEscape(familyID), token, &resp); err != nil {
		return nil, err
	}
	return nonNil(resp.Data), nil
}

func (c *Client) RSVP(ctx context.Context, token, eventID, status string) (*model.Event, error) {
	payload := map[string]string{"status": status}
	body, err := c.do(ctx, http.MethodPost, "/events/"+url.PathEscape(eventID)+"/rsvp", token, payload)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Data *model.Event `json:"data"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode rsvp response: %w", err)
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("rsvp response carries no event")
	}
	return resp.Data, nil
}

func (c *Client) SendMessage(ctx context.Context, token, familyID, content string) (*model.Message, error) {
	payload := map[string]string{
		"familyId": familyID,
		"content":  content,
	}
	body, err := c.do(ctx, http.MethodPost, "/messages", token, payload)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Message *model.Message `json:"message"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode send message response: %w", err)
	}
	if resp.Message == nil || resp.Message.ID == "" {
		return nil, fmt.Errorf("send message response carries no message id")
	}
	return resp.Message, nil
}

func (c *Client) FetchMessages(ctx context.Context, token, familyID string) ([]model.Message, error) {
	var resp struct {
		Messages []model.Message `json:"messages"`
	}
	if err := c.getJSON(ctx, "/messages/family/"+url.PathEscape(familyID), token, &resp); err != nil {
		return nil, err
	}
	return nonNil(resp.Messages), nil
}

func (c *Client) AdminListMembers(ctx context.Context, token, familyID string) ([]model.User, error) {
	var resp struct {
		Members []model.User `json:"members"`
	}
	if err := c.getJSON(ctx, "/admin/families/"+url.PathEscape(familyID)+"/members", token, &resp); err != nil {
		return nil, err
	}
	return nonNil(resp.Members), nil
}

func (c *Client) getJSON(ctx context.Context, path, token string, out interface{}) error {
	body, err := c.do(ctx, http.MethodGet, path, token, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response of %s: %w", path, err)
	}
	return nil
}

// do performs the request and returns the body of a successful response.
// Transport failures wrap ErrTransport; server failures are *APIError.
func (c *Client) do(ctx context.Context, method, path, token string, in interface{}) ([]byte, error) {
	var reqBody io.Reader
	if in != nil {
		jsonData, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %w", ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, body)
	}
	if reportsFailure(body) {
		return nil, newAPIError(resp.StatusCode, body)
	}

	return body, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
