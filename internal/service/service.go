// Package service is the facade shared by the web service and familyctl.
// Validation runs here, before any upstream call.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/s21platform/family-web/internal/event"
	"github.com/s21platform/family-web/internal/model"
	"github.com/s21platform/family-web/internal/tree"
)

var (
	ErrSignInTimeout = errors.New("sign in timed out, please try again")
	ErrForbidden     = errors.New("admin role required")
)

type Logger interface {
	Warn(msg string)
}

type Service struct {
	api       FamilyAPI
	validator Validator
	logger    Logger

	versions  VersionStore
	projector *tree.Projector
	metrics   Metrics

	signInTimeout time.Duration
	maxDepth      int
}

type Option func(*Service)

// WithProjection enables tree memoization keyed by the member-list version.
func WithProjection(versions VersionStore, projector *tree.Projector) Option {
	return func(s *Service) {
		s.versions = versions
		s.projector = projector
	}
}

func WithMetrics(m Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithSignInTimeout(d time.Duration) Option {
	return func(s *Service) { s.signInTimeout = d }
}

func WithMaxDepth(depth int) Option {
	return func(s *Service) { s.maxDepth = depth }
}

func New(api FamilyAPI, validator Validator, logger Logger, opts ...Option) *Service {
	s := &Service{
		api:           api,
		validator:     validator,
		logger:        logger,
		signInTimeout: 15 * time.Second,
		maxDepth:      tree.DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SignIn aborts the upstream request once the sign-in timeout passes, so a
// late answer is never applied.
func (s *Service) SignIn(ctx context.Context, creds model.Credentials) (*model.Session, error) {
	if err := s.validator.ValidateCredentials(creds); err != nil {
		return nil, err
	}

	signInCtx, cancel := context.WithTimeout(ctx, s.signInTimeout)
	defer cancel()

	session, err := s.api.SignIn(signInCtx, creds)
	if err != nil {
		if errors.Is(signInCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, ErrSignInTimeout
		}
		return nil, err
	}
	return session, nil
}

func (s *Service) Register(ctx context.Context, reg model.Registration) (*model.Session, error) {
	if err := s.validator.ValidateRegistration(reg); err != nil {
		return nil, err
	}
	return s.api.Register(ctx, reg)
}

func (s *Service) AcceptInvite(ctx context.Context, inviteToken string, acc model.InviteAcceptance) (*model.Session, error) {
	if err := s.validator.ValidateInviteAcceptance(inviteToken, acc); err != nil {
		return nil, err
	}
	return s.api.AcceptInvite(ctx, inviteToken, acc)
}

func (s *Service) Families(ctx context.Context, session model.Session) ([]model.Family, error) {
	return s.api.ListFamilies(ctx, session.Token)
}

type Tree struct {
	FamilyID string       `json:"family_id"`
	Version  int64        `json:"version"`
	Empty    bool         `json:"empty"`
	Size     int          `json:"size"`
	Roots    []*tree.View `json:"roots"`

	Forest *tree.Forest `json:"-"`
	Cached bool         `json:"-"`
}

// Tree assembles the family forest. Cached forests are per viewer: a user
// only gets a forest that the upstream once served to that same user. When
// the version store is unreachable the cache is bypassed.
func (s *Service) Tree(ctx context.Context, session model.Session, familyID string) (*Tree, error) {
	if err := s.validator.ValidateFamilyID(familyID); err != nil {
		return nil, err
	}

	load := func(ctx context.Context) ([]model.Member, error) {
		return s.api.ListMembers(ctx, session.Token, familyID)
	}

	var (
		forest  *tree.Forest
		version int64
		cached  bool
		err     error
	)
	if s.projector != nil && s.versions != nil && session.User.ID != "" {
		version, err = s.versions.MemberVersion(ctx, familyID)
		if err != nil {
			s.logger.Warn(fmt.Sprintf("failed to get member version of %s, skipping cache: %v", familyID, err))
		} else {
			key := tree.Key{FamilyID: familyID, Version: version, Viewer: session.User.ID}
			forest, cached, err = s.projector.Project(ctx, key, load)
			if err != nil {
				return nil, err
			}
			if !cached {
				s.projector.Invalidate(familyID, version)
			}
			if s.metrics != nil {
				s.metrics.TreeCacheLookup(cached)
			}
		}
	}
	if forest == nil {
		forest, err = assemble(ctx, load)
		if err != nil {
			return nil, err
		}
	}

	return &Tree{
		FamilyID: familyID,
		Version:  version,
		Empty:    forest.Empty(),
		Size:     forest.Size,
		Roots:    forest.Render(s.maxDepth),
		Forest:   forest,
		Cached:   cached,
	}, nil
}

func (s *Service) MaxDepth() int {
	return s.maxDepth
}

func (s *Service) Validator() Validator {
	return s.validator
}

func assemble(ctx context.Context, load tree.Loader) (*tree.Forest, error) {
	members, err := load(ctx)
	if err != nil {
		return nil, err
	}
	if err := tree.Validate(members); err != nil {
		return nil, err
	}
	return tree.Assemble(members), nil
}

func (s *Service) Events(ctx context.Context, session model.Session, familyID string) ([]event.View, error) {
	if err := s.validator.ValidateFamilyID(familyID); err != nil {
		return nil, err
	}
	events, err := s.api.ListEvents(ctx, session.Token, familyID)
	if err != nil {
		return nil, err
	}
	return event.Views(events, session.User.ID), nil
}

// RSVP returns the event as the server answered it. If the answer omits the
// caller's attendance it is applied locally.
func (s *Service) RSVP(ctx context.Context, session model.Session, eventID, status string) (*event.View, error) {
	if err := s.validator.ValidateRSVP(status); err != nil {
		return nil, err
	}
	updated, err := s.api.RSVP(ctx, session.Token, eventID, status)
	if err != nil {
		return nil, err
	}
	if updated.ID == "" {
		updated.ID = eventID
	}
	if event.StatusOf(*updated, session.User.ID) != status {
		event.SetAttendance(updated, session.User.ID, status)
	}
	view := event.ViewOf(*updated, session.User.ID)
	return &view, nil
}

func (s *Service) Messages(ctx context.Context, session model.Session, familyID string) ([]model.Message, error) {
	if err := s.validator.ValidateFamilyID(familyID); err != nil {
		return nil, err
	}
	return s.api.FetchMessages(ctx, session.Token, familyID)
}

func (s *Service) SendMessage(ctx context.Context, session model.Session, familyID, content string) (*model.Message, error) {
	if err := s.validator.ValidateFamilyID(familyID); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateMessage(content); err != nil {
		return nil, err
	}
	return s.api.SendMessage(ctx, session.Token, familyID, content)
}

func (s *Service) AdminMembers(ctx context.Context, session model.Session, familyID string) ([]model.User, error) {
	if !session.User.IsAdmin() {
		return nil, ErrForbidden
	}
	if err := s.validator.ValidateFamilyID(familyID); err != nil {
		return nil, err
	}
	return s.api.AdminListMembers(ctx, session.Token, familyID)
}

// Channel binds the caller's credentials to the calls a channel view makes.
func (s *Service) Channel(session model.Session) *Channel {
	return &Channel{service: s, session: session}
}

type Channel struct {
	service *Service
	session model.Session
}

func (c *Channel) SendMessage(ctx context.Context, familyID, content string) (*model.Message, error) {
	return c.service.SendMessage(ctx, c.session, familyID, content)
}

func (c *Channel) FetchMessages(ctx context.Context, familyID string) ([]model.Message, error) {
	return c.service.Messages(ctx, c.session, familyID)
}
