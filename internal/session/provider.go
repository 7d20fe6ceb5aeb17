// Package session holds the signed-in credentials of a process behind one
// accessor. The token and the serialized profile live under two keys of a
// durable store; their absence means signed out.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/s21platform/family-web/internal/model"
)

const (
	TokenKey = "token"
	UserKey  = "user"
)

var ErrSignedOut = errors.New("signed out")

type Storage interface {
	GetItem(ctx context.Context, key string) (string, bool, error)
	SetItem(ctx context.Context, key, value string) error
	RemoveItem(ctx context.Context, key string) error
}

type Provider struct {
	storage Storage

	mu      sync.RWMutex
	current *model.Session
}

func New(storage Storage) *Provider {
	return &Provider{storage: storage}
}

// Hydrate reads the stored pair. A half-written pair is treated as signed
// out and removed.
func (p *Provider) Hydrate(ctx context.Context) error {
	token, hasToken, err := p.storage.GetItem(ctx, TokenKey)
	if err != nil {
		return fmt.Errorf("failed to read token: %w", err)
	}
	raw, hasUser, err := p.storage.GetItem(ctx, UserKey)
	if err != nil {
		return fmt.Errorf("failed to read user: %w", err)
	}

	var user model.User
	if hasToken && hasUser {
		if err := json.Unmarshal([]byte(raw), &user); err != nil {
			hasUser = false
		}
	}
	if !hasToken || !hasUser || token == "" {
		p.mu.Lock()
		p.current = nil
		p.mu.Unlock()
		if hasToken || hasUser {
			return p.remove(ctx)
		}
		return nil
	}

	p.mu.Lock()
	p.current = &model.Session{Token: token, User: user}
	p.mu.Unlock()
	return nil
}

// Get returns a copy of the current session.
func (p *Provider) Get() (model.Session, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.current == nil {
		return model.Session{}, ErrSignedOut
	}
	return *p.current, nil
}

func (p *Provider) SignedIn() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current != nil
}

func (p *Provider) Set(ctx context.Context, s model.Session) error {
	if s.Token == "" {
		return errors.New("session without token")
	}
	raw, err := json.Marshal(s.User)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}
	if err := p.storage.SetItem(ctx, TokenKey, s.Token); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}
	if err := p.storage.SetItem(ctx, UserKey, string(raw)); err != nil {
		return fmt.Errorf("failed to store user: %w", err)
	}

	p.mu.Lock()
	p.current = &s
	p.mu.Unlock()
	return nil
}

func (p *Provider) Clear(ctx context.Context) error {
	p.mu.Lock()
	p.current = nil
	p.mu.Unlock()
	return p.remove(ctx)
}

func (p *Provider) remove(ctx context.Context) error {
	if err := p.storage.RemoveItem(ctx, TokenKey); err != nil {
		return fmt.Errorf("failed to remove token: %w", err)
	}
	if err := p.storage.RemoveItem(ctx, UserKey); err != nil {
		return fmt.Errorf("failed to remove user: %w", err)
	}
	return nil
}
