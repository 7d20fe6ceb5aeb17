package socket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/s21platform/family-web/internal/config"
	"github.com/s21platform/family-web/internal/model"
)

const (
	eventBufferSize     = 64
	defaultWriteTimeout = 10 * time.Second
)

var (
	ErrNotConnected       = errors.New("stream is not connected")
	ErrReconnectExhausted = errors.New("stream reconnect attempts exhausted")
)

type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}

type Settings struct {
	URL               string
	Token             string
	ReconnectAttempts int
	ReconnectDelay    time.Duration
	HandshakeTimeout  time.Duration
	WriteTimeout      time.Duration
}

func SettingsFromConfig(cfg *config.Config, token string) Settings {
	return Settings{
		URL:               cfg.Socket.URL,
		Token:             token,
		ReconnectAttempts: cfg.Socket.ReconnectAttempts,
		ReconnectDelay:    cfg.Socket.ReconnectDelay,
		HandshakeTimeout:  cfg.Socket.HandshakeTimeout,
	}
}

// Client keeps one streaming connection alive. Consecutive dial failures
// are retried ReconnectAttempts times, ReconnectDelay apart; a successful
// connect resets the count.
type Client struct {
	settings Settings
	dialer   *websocket.Dialer
	logger   Logger
	events   chan model.StreamEvent

	mu   sync.Mutex
	conn *websocket.Conn
}

func New(settings Settings, logger Logger) *Client {
	if settings.WriteTimeout == 0 {
		settings.WriteTimeout = defaultWriteTimeout
	}
	return &Client{
		settings: settings,
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: settings.HandshakeTimeout,
		},
		logger: logger,
		events: make(chan model.StreamEvent, eventBufferSize),
	}
}

// Events is closed when Run returns.
func (c *Client) Events() <-chan model.StreamEvent {
	return c.events
}

// Run connects and keeps reconnecting until ctx is done or the retry budget
// is spent. Cancelling ctx closes the transport.
func (c *Client) Run(ctx context.Context) error {
	defer close(c.events)

	failures := 0
	for {
		c.emit(ctx, model.StreamEvent{Kind: model.StreamConnecting})

		conn, err := c.dial(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			failures++
			c.logger.Warn(fmt.Sprintf("stream connect failed (%d/%d): %v", failures, c.settings.ReconnectAttempts, err))
			if failures > c.settings.ReconnectAttempts {
				err = fmt.Errorf("%w: %w", ErrReconnectExhausted, err)
				c.emit(ctx, model.StreamEvent{Kind: model.StreamGaveUp, Err: err})
				return err
			}
			if !c.wait(ctx) {
				return nil
			}
			continue
		}
		failures = 0

		c.setConn(conn)
		c.emit(ctx, model.StreamEvent{Kind: model.StreamConnected})

		err = c.read(ctx, conn)
		c.setConn(nil)

		if ctx.Err() != nil {
			return nil
		}
		c.logger.Info(fmt.Sprintf("stream disconnected: %v", err))
		c.emit(ctx, model.StreamEvent{Kind: model.StreamDisconnected, Err: err})
		if !c.wait(ctx) {
			return nil
		}
	}
}

// Join announces membership of the family channel on the live connection.
func (c *Client) Join(familyID string) error {
	data, err := json.Marshal(familyID)
	if err != nil {
		return fmt.Errorf("failed to marshal family id: %w", err)
	}
	return c.write(model.StreamFrame{Event: model.JoinFamilyEvent, Data: data})
}

func (c *Client) dial(ctx context.Context) (*websocket.Conn, error) {
	header := http.Header{}
	header.Set("Authorization", "Bearer "+c.settings.Token)

	conn, resp, err := c.dialer.DialContext(ctx, c.settings.URL, header)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("handshake rejected with status %d: %w", resp.StatusCode, err)
		}
		return nil, err
	}
	return conn, nil
}

func (c *Client) read(ctx context.Context, conn *websocket.Conn) error {
	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			c.mu.Lock()
			_ = conn.WriteControl(
				websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(time.Second),
			)
			c.mu.Unlock()
			_ = conn.Close()
		case <-done:
			_ = conn.Close()
		}
	}()

	for {
		var frame model.StreamFrame
		if err := conn.ReadJSON(&frame); err != nil {
			return err
		}

		if frame.Event != model.NewMessageEvent {
			continue
		}

		var msg model.Message
		if err := json.Unmarshal(frame.Data, &msg); err != nil {
			c.logger.Warn(fmt.Sprintf("failed to decode broadcast message: %v", err))
			continue
		}
		c.emit(ctx, model.StreamEvent{Kind: model.StreamMessage, Message: &msg})
	}
}

func (c *Client) write(frame model.StreamFrame) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return ErrNotConnected
	}
	_ = c.conn.SetWriteDeadline(time.Now().Add(c.settings.WriteTimeout))
	if err := c.conn.WriteJSON(frame); err != nil {
		return fmt.Errorf("failed to write %s frame: %w", frame.Event, err)
	}
	return nil
}

func (c *Client) setConn(conn *websocket.Conn) {
	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()
}

func (c *Client) emit(ctx context.Context, ev model.StreamEvent) {
	select {
	case c.events <- ev:
	case <-ctx.Done():
	}
}

func (c *Client) wait(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(c.settings.ReconnectDelay):
		return true
	}
}
