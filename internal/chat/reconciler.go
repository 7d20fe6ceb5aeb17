// Package chat keeps the message list of a mounted family channel view in
// step with two sources: send acknowledgements and the broadcast feed.
package chat

import (
	"context"
	"crypto/rand"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/s21platform/family-web/internal/model"
)

const (
	SourceAck       = "ack"
	SourceBroadcast = "broadcast"
	SourceHistory   = "history"
)

const sendTimeout = 30 * time.Second

type API interface {
	SendMessage(ctx context.Context, familyID, content string) (*model.Message, error)
	FetchMessages(ctx context.Context, familyID string) ([]model.Message, error)
}

type Stream interface {
	Run(ctx context.Context) error
	Events() <-chan model.StreamEvent
	Join(familyID string) error
}

type Validator interface {
	ValidateMessage(content string) error
}

type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}

type Metrics interface {
	MessageAppended(source string)
	DuplicateSuppressed(source string)
}

// Snapshot is a copy of the view. Pending holds only sends still waiting for
// their HTTP answer; acknowledged ones are already in Messages.
type Snapshot struct {
	FamilyID string          `json:"family_id"`
	State    string          `json:"state"`
	Messages []model.Message `json:"messages"`
	Draft    string          `json:"draft"`
	Pending  []Pending       `json:"pending"`
	Error    string          `json:"error,omitempty"`
}

type Option func(*Reconciler)

func WithOnChange(fn func(Snapshot)) Option {
	return func(r *Reconciler) { r.onChange = fn }
}

// WithTransitions observes pending-send state changes. fn runs under the
// view lock and must not call back into the Reconciler.
func WithTransitions(fn func(Transition)) Option {
	return func(r *Reconciler) { r.onTransition = fn }
}

func WithMetrics(m Metrics) Option {
	return func(r *Reconciler) { r.metrics = m }
}

// Reconciler owns the ordered, id-deduplicated message list of one family
// channel. Display order is append order; nothing is re-sorted by time.
type Reconciler struct {
	familyID  string
	api       API
	validator Validator
	logger    Logger

	onChange     func(Snapshot)
	onTransition func(Transition)
	metrics      Metrics

	mu       sync.Mutex
	state    ConnState
	messages []model.Message
	seen     map[string]source
	draft    string
	pending  map[string]*Pending
	order    []string
	awaiting map[string]*Pending
	lastErr  error
	entropy  *ulid.MonotonicEntropy
}

func New(familyID string, api API, validator Validator, logger Logger, opts ...Option) *Reconciler {
	r := &Reconciler{
		familyID:  familyID,
		api:       api,
		validator: validator,
		logger:    logger,
		state:     Disconnected,
		messages:  []model.Message{},
		seen:      make(map[string]source),
		pending:   make(map[string]*Pending),
		awaiting:  make(map[string]*Pending),
		entropy:   ulid.Monotonic(rand.Reader, 0),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Mount drives the view until ctx is cancelled (Closed) or the stream gives
// up (Disconnected). In-flight sends are not tied to ctx.
func (r *Reconciler) Mount(ctx context.Context, stream Stream) error {
	r.setState(Connecting)

	if err := r.loadHistory(ctx); err != nil {
		r.setError(err)
	}

	runErr := make(chan error, 1)
	go func() {
		runErr <- stream.Run(ctx)
	}()

	for ev := range stream.Events() {
		r.handle(ctx, ev, stream)
	}

	err := <-runErr
	if ctx.Err() != nil {
		r.setState(Closed)
		return nil
	}
	r.setState(Disconnected)
	return err
}

// loadHistory merges the channel history into the list under the usual
// dedupe rule.
func (r *Reconciler) loadHistory(ctx context.Context) error {
	history, err := r.api.FetchMessages(ctx, r.familyID)
	if err != nil {
		r.logger.Warn(fmt.Sprintf("failed to load history of family %s: %v", r.familyID, err))
		return err
	}
	for _, msg := range history {
		r.observe(msg, fromFeed, SourceHistory)
	}
	r.notify()
	return nil
}

func (r *Reconciler) handle(ctx context.Context, ev model.StreamEvent, stream Stream) {
	switch ev.Kind {
	case model.StreamConnecting, model.StreamDisconnected:
		r.setState(Connecting)
	case model.StreamConnected:
		if err := stream.Join(r.familyID); err != nil {
			r.logger.Error(fmt.Sprintf("failed to join family %s: %v", r.familyID, err))
			r.setError(err)
			return
		}
		r.setState(Joined)
		// broadcasts sent before the join reached the server are only in the history
		_ = r.loadHistory(ctx)
	case model.StreamGaveUp:
		r.setError(ev.Err)
		r.setState(Disconnected)
	case model.StreamMessage:
		if ev.Message != nil {
			r.Receive(*ev.Message)
		}
	}
}

// Receive applies a broadcast. It reports whether the message was appended.
func (r *Reconciler) Receive(msg model.Message) bool {
	appended := r.observe(msg, fromFeed, SourceBroadcast)
	r.notify()
	return appended
}

func (r *Reconciler) SetDraft(content string) {
	r.mu.Lock()
	r.draft = content
	r.mu.Unlock()
	r.notify()
}

func (r *Reconciler) Draft() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.draft
}

// Send takes the draft, clears it, and posts it. On failure the text goes
// back into the draft. No placeholder message is shown while in flight.
// The request outlives ctx cancellation and is bounded by sendTimeout only.
func (r *Reconciler) Send(ctx context.Context) (*model.Message, error) {
	r.mu.Lock()
	content := r.draft
	if err := r.validator.ValidateMessage(content); err != nil {
		r.mu.Unlock()
		return nil, err
	}
	p := &Pending{
		LocalID: ulid.MustNew(ulid.Timestamp(time.Now()), r.entropy).String(),
		Content: content,
		State:   SentLocally,
	}
	r.pending[p.LocalID] = p
	r.order = append(r.order, p.LocalID)
	r.draft = ""
	r.lastErr = nil
	r.mu.Unlock()
	r.notify()

	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sendTimeout)
	defer cancel()
	msg, err := r.api.SendMessage(sendCtx, r.familyID, content)

	r.mu.Lock()
	if err != nil {
		r.restoreDraft(content)
		r.lastErr = err
		r.transition(p, Failed)
		r.dropPending(p.LocalID)
		r.mu.Unlock()
		r.notify()
		return nil, err
	}

	p.MessageID = msg.ID
	seen := r.seen[msg.ID]
	r.appendLocked(*msg, fromAck, SourceAck)
	r.transition(p, Acknowledged)
	r.dropPending(p.LocalID)
	if seen&fromFeed != 0 {
		r.transition(p, Reconciled)
	} else {
		r.awaiting[msg.ID] = p
	}
	r.mu.Unlock()
	r.notify()

	return msg, nil
}

func (r *Reconciler) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

func (r *Reconciler) State() ConnState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *Reconciler) snapshotLocked() Snapshot {
	s := Snapshot{
		FamilyID: r.familyID,
		State:    r.state.String(),
		Messages: append([]model.Message(nil), r.messages...),
		Draft:    r.draft,
		Pending:  make([]Pending, 0, len(r.order)),
	}
	for _, id := range r.order {
		s.Pending = append(s.Pending, *r.pending[id])
	}
	if r.lastErr != nil {
		s.Error = r.lastErr.Error()
	}
	return s
}

func (r *Reconciler) observe(msg model.Message, src source, label string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	appended := r.appendLocked(msg, src, label)
	if p, ok := r.awaiting[msg.ID]; ok && src == fromFeed {
		delete(r.awaiting, msg.ID)
		r.transition(p, Reconciled)
	}
	return appended
}

// appendLocked is the single dedupe point: an id is appended once, whatever
// the source.
func (r *Reconciler) appendLocked(msg model.Message, src source, label string) bool {
	if msg.ID == "" {
		return false
	}
	prev, exists := r.seen[msg.ID]
	r.seen[msg.ID] = prev | src
	if exists {
		if r.metrics != nil {
			r.metrics.DuplicateSuppressed(label)
		}
		return false
	}
	r.messages = append(r.messages, msg)
	if r.metrics != nil {
		r.metrics.MessageAppended(label)
	}
	return true
}

func (r *Reconciler) restoreDraft(content string) {
	switch strings.TrimSpace(r.draft) {
	case "":
		r.draft = content
	default:
		r.draft = content + " " + r.draft
	}
}

func (r *Reconciler) transition(p *Pending, to PendingState) {
	from := p.State
	p.State = to
	if r.onTransition != nil {
		r.onTransition(Transition{LocalID: p.LocalID, MessageID: p.MessageID, From: from, To: to})
	}
}

func (r *Reconciler) dropPending(localID string) {
	delete(r.pending, localID)
	for i, id := range r.order {
		if id == localID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

func (r *Reconciler) setState(s ConnState) {
	r.mu.Lock()
	changed := r.state != s
	r.state = s
	r.mu.Unlock()
	if changed {
		r.notify()
	}
}

func (r *Reconciler) setError(err error) {
	r.mu.Lock()
	r.lastErr = err
	r.mu.Unlock()
	r.notify()
}

func (r *Reconciler) notify() {
	if r.onChange == nil {
		return
	}
	r.onChange(r.Snapshot())
}
