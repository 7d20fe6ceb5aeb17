package infra

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/family-web/internal/config"
	"github.com/s21platform/family-web/internal/model"
	"github.com/s21platform/family-web/internal/pkg/jwt"
	"github.com/s21platform/family-web/internal/repository/postgres"
)

func LoggerHTTP(next http.Handler, logger logger_lib.LoggerInterface) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), config.KeyLogger, logger)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionHTTP resolves the session cookie. Requests without a live session
// pass through anonymous; handlers that need one answer 401 themselves.
func SessionHTTP(sessions SessionRepo, tokens SessionTokens, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			session, err := resolve(r.Context(), sessions, tokens, cookie.Value)
			if err != nil {
				logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
				logger.Warn(fmt.Sprintf("dropping session cookie: %v", err))
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), config.KeySession, *session)
			ctx = context.WithValue(ctx, config.KeyUUID, session.User.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func resolve(ctx context.Context, sessions SessionRepo, tokens SessionTokens, cookie string) (*model.Session, error) {
	claims, err := tokens.ValidateSessionToken(cookie)
	if err != nil {
		return nil, err
	}

	session, err := sessions.GetSession(ctx, claims.Subject)
	if errors.Is(err, postgres.ErrSessionNotFound) {
		return nil, fmt.Errorf("session %s is gone", claims.Subject)
	}
	if err != nil {
		return nil, err
	}

	if jwt.CredentialExpired(session.Token, time.Now()) {
		return nil, fmt.Errorf("upstream credential of session %s expired", claims.Subject)
	}
	return session, nil
}

func SessionFromContext(ctx context.Context) (model.Session, bool) {
	session, ok := ctx.Value(config.KeySession).(model.Session)
	return session, ok
}
