//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package infra

import (
	"context"

	"github.com/s21platform/family-web/internal/model"
)

type SessionRepo interface {
	GetSession(ctx context.Context, sessionID string) (*model.Session, error)
}

type SessionTokens interface {
	ValidateSessionToken(tokenString string) (*model.SessionClaims, error)
}
