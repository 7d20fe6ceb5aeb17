//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"
	"time"

	"github.com/s21platform/family-web/internal/chat"
	"github.com/s21platform/family-web/internal/event"
	"github.com/s21platform/family-web/internal/model"
	"github.com/s21platform/family-web/internal/service"
)

type FamilyService interface {
	SignIn(ctx context.Context, creds model.Credentials) (*model.Session, error)
	Register(ctx context.Context, reg model.Registration) (*model.Session, error)
	AcceptInvite(ctx context.Context, inviteToken string, acc model.InviteAcceptance) (*model.Session, error)
	Families(ctx context.Context, session model.Session) ([]model.Family, error)
	Tree(ctx context.Context, session model.Session, familyID string) (*service.Tree, error)
	Events(ctx context.Context, session model.Session, familyID string) ([]event.View, error)
	RSVP(ctx context.Context, session model.Session, eventID, status string) (*event.View, error)
	Messages(ctx context.Context, session model.Session, familyID string) ([]model.Message, error)
	SendMessage(ctx context.Context, session model.Session, familyID, content string) (*model.Message, error)
	AdminMembers(ctx context.Context, session model.Session, familyID string) ([]model.User, error)
}

type SessionRepo interface {
	CreateSession(ctx context.Context, session *model.Session) (string, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type SessionTokens interface {
	GenerateSessionToken(sessionID string) (string, time.Time, error)
}

type Validator interface {
	ValidateMessage(content string) error
	ValidateFamilyID(familyID string) error
}

type StreamDialer interface {
	Dial(token string) chat.Stream
}

type Metrics interface {
	MessageAppended(source string)
	DuplicateSuppressed(source string)
	StreamOpened()
	StreamClosed()
}
