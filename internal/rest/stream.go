package rest

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/family-web/internal/chat"
	"github.com/s21platform/family-web/internal/client/familyapi"
	"github.com/s21platform/family-web/internal/config"
	"github.com/s21platform/family-web/internal/model"
)

const (
	commandDraft = "draft"
	commandSend  = "send"

	frameSnapshot = "snapshot"
	frameError    = "error"

	relayWriteTimeout = 10 * time.Second
)

type streamCommand struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

type relayFrame struct {
	Type     string         `json:"type"`
	Snapshot *chat.Snapshot `json:"snapshot,omitempty"`
	Error    string         `json:"error,omitempty"`
}

// channelAPI binds the caller's session to the calls a channel view makes.
type channelAPI struct {
	service FamilyService
	session model.Session
}

func (c channelAPI) SendMessage(ctx context.Context, familyID, content string) (*model.Message, error) {
	return c.service.SendMessage(ctx, c.session, familyID, content)
}

func (c channelAPI) FetchMessages(ctx context.Context, familyID string) ([]model.Message, error) {
	return c.service.Messages(ctx, c.session, familyID)
}

// relay serializes writes to the browser connection.
type relay struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (r *relay) write(frame relayFrame) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	_ = r.conn.SetWriteDeadline(time.Now().Add(relayWriteTimeout))
	return r.conn.WriteJSON(frame)
}

// StreamFamily mounts a channel view for the browser. The view keeps the
// upstream stream alive and pushes a snapshot on every change; the browser
// edits the draft and sends through the same connection.
func (h *Handler) StreamFamily(w http.ResponseWriter, r *http.Request, familyId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("StreamFamily")

	session, ok := h.requireSession(w, r)
	if !ok {
		return
	}
	if err := h.validator.ValidateFamilyID(familyId); err != nil {
		h.writeServiceError(w, err)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to upgrade connection: %v", err))
		return
	}
	defer conn.Close()

	if h.metrics != nil {
		h.metrics.StreamOpened()
		defer h.metrics.StreamClosed()
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	out := &relay{conn: conn}
	opts := []chat.Option{
		chat.WithOnChange(func(s chat.Snapshot) {
			if err := out.write(relayFrame{Type: frameSnapshot, Snapshot: &s}); err != nil {
				cancel()
			}
		}),
	}
	if h.metrics != nil {
		opts = append(opts, chat.WithMetrics(h.metrics))
	}
	view := chat.New(familyId, channelAPI{service: h.service, session: session}, h.validator, logger, opts...)

	go h.readCommands(ctx, cancel, conn, view, out)

	if err := view.Mount(ctx, h.streams.Dial(session.Token)); err != nil {
		logger.Warn(fmt.Sprintf("family %s stream ended: %v", familyId, err))
		_ = out.write(relayFrame{Type: frameError, Error: familyapi.UserMessage(err)})
	}

	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second))
}

func (h *Handler) readCommands(ctx context.Context, cancel context.CancelFunc, conn *websocket.Conn, view *chat.Reconciler, out *relay) {
	defer cancel()
	for {
		var cmd streamCommand
		if err := conn.ReadJSON(&cmd); err != nil {
			return
		}

		switch cmd.Type {
		case commandDraft:
			view.SetDraft(cmd.Content)
		case commandSend:
			if cmd.Content != "" {
				view.SetDraft(cmd.Content)
			}
			if _, err := view.Send(ctx); err != nil {
				_ = out.write(relayFrame{Type: frameError, Error: familyapi.UserMessage(err)})
			}
		default:
			_ = out.write(relayFrame{Type: frameError, Error: fmt.Sprintf("unknown command %q", cmd.Type)})
		}
	}
}
