//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package service

import (
	"context"

	"github.com/s21platform/family-web/internal/model"
)

type FamilyAPI interface {
	SignIn(ctx context.Context, creds model.Credentials) (*model.Session, error)
	Register(ctx context.Context, reg model.Registration) (*model.Session, error)
	AcceptInvite(ctx context.Context, inviteToken string, acc model.InviteAcceptance) (*model.Session, error)
	ListFamilies(ctx context.Context, token string) ([]model.Family, error)
	ListMembers(ctx context.Context, token, familyID string) ([]model.Member, error)
	ListEvents(ctx context.Context, token, familyID string) ([]model.Event, error)
	RSVP(ctx context.Context, token, eventID, status string) (*model.Event, error)
	SendMessage(ctx context.Context, token, familyID, content string) (*model.Message, error)
	FetchMessages(ctx context.Context, token, familyID string) ([]model.Message, error)
	AdminListMembers(ctx context.Context, token, familyID string) ([]model.User, error)
}

type VersionStore interface {
	MemberVersion(ctx context.Context, familyID string) (int64, error)
}

type Validator interface {
	ValidateCredentials(creds model.Credentials) error
	ValidateRegistration(reg model.Registration) error
	ValidateInviteAcceptance(inviteToken string, acc model.InviteAcceptance) error
	ValidateMessage(content string) error
	ValidateRSVP(status string) error
	ValidateFamilyID(familyID string) error
}

type Metrics interface {
	TreeCacheLookup(hit bool)
}
