package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/family-web/internal/client/familyapi"
	"github.com/s21platform/family-web/internal/config"
	api "github.com/s21platform/family-web/internal/generated"
	"github.com/s21platform/family-web/internal/infra"
	"github.com/s21platform/family-web/internal/model"
	"github.com/s21platform/family-web/internal/pkg/validator"
	"github.com/s21platform/family-web/internal/service"
	"github.com/s21platform/family-web/internal/tree"
)

type Handler struct {
	service   FamilyService
	sessions  SessionRepo
	tokens    SessionTokens
	validator Validator
	streams   StreamDialer
	metrics   Metrics
	cookie    config.Session
	upgrader  websocket.Upgrader
}

func New(
	familyService FamilyService,
	sessions SessionRepo,
	tokens SessionTokens,
	validator Validator,
	streams StreamDialer,
	metrics Metrics,
	cookie config.Session,
) *Handler {
	return &Handler{
		service:   familyService,
		sessions:  sessions,
		tokens:    tokens,
		validator: validator,
		streams:   streams,
		metrics:   metrics,
		cookie:    cookie,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("Login")

	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	session, err := h.service.SignIn(r.Context(), model.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to sign in: %v", err))
		h.writeServiceError(w, err)
		return
	}

	h.startSession(w, r, logger, session)
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("Register")

	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	session, err := h.service.Register(r.Context(), model.Registration{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to register: %v", err))
		h.writeServiceError(w, err)
		return
	}

	h.startSession(w, r, logger, session)
}

func (h *Handler) AcceptInvite(w http.ResponseWriter, r *http.Request, inviteToken string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("AcceptInvite")

	var req api.AcceptInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	acc := model.InviteAcceptance{
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	}
	if req.FirstName != nil {
		acc.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		acc.LastName = *req.LastName
	}

	session, err := h.service.AcceptInvite(r.Context(), inviteToken, acc)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to accept invite: %v", err))
		h.writeServiceError(w, err)
		return
	}

	h.startSession(w, r, logger, session)
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetSession")

	session, ok := infra.SessionFromContext(r.Context())
	if !ok {
		h.writeError(w, "not signed in", http.StatusUnauthorized)
		return
	}

	response := api.SessionResponse{User: toUser(session.User)}
	if !session.ExpiresAt.IsZero() {
		response.ExpiresAt = &session.ExpiresAt
	}
	h.writeJSON(w, response, http.StatusOK)
}

// DeleteSession always clears the cookie, even when the record is already
// gone.
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("DeleteSession")

	if session, ok := infra.SessionFromContext(r.Context()); ok {
		if err := h.sessions.DeleteSession(r.Context(), session.ID); err != nil {
			logger.Error(fmt.Sprintf("failed to delete session %s: %v", session.ID, err))
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListFamilies(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ListFamilies")

	session, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	families, err := h.service.Families(r.Context(), session)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to list families: %v", err))
		h.writeServiceError(w, err)
		return
	}

	response := api.FamiliesResponse{Families: make([]api.Family, 0, len(families))}
	for _, f := range families {
		response.Families = append(response.Families, toFamily(f))
	}
	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetFamilyTree(w http.ResponseWriter, r *http.Request, familyId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetFamilyTree")

	session, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	forest, err := h.service.Tree(r.Context(), session, familyId)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to build tree of family %s: %v", familyId, err))
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, api.TreeResponse{
		FamilyId: familyId,
		Empty:    forest.Empty,
		Size:     forest.Size,
		Roots:    toTreeNodes(forest.Roots),
	}, http.StatusOK)
}

func (h *Handler) ListFamilyEvents(w http.ResponseWriter, r *http.Request, familyId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ListFamilyEvents")

	session, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	views, err := h.service.Events(r.Context(), session, familyId)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to list events of family %s: %v", familyId, err))
		h.writeServiceError(w, err)
		return
	}

	response := api.EventsResponse{Events: make([]api.EventView, 0, len(views))}
	for _, v := range views {
		response.Events = append(response.Events, toEventView(v))
	}
	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) RsvpEvent(w http.ResponseWriter, r *http.Request, eventId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("RsvpEvent")

	session, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	var req api.RsvpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	view, err := h.service.RSVP(r.Context(), session, eventId, string(req.Status))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to rsvp to event %s: %v", eventId, err))
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, toEventView(*view), http.StatusOK)
}

func (h *Handler) ListFamilyMessages(w http.ResponseWriter, r *http.Request, familyId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ListFamilyMessages")

	session, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	messages, err := h.service.Messages(r.Context(), session, familyId)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to fetch messages of family %s: %v", familyId, err))
		h.writeServiceError(w, err)
		return
	}

	response := api.MessagesResponse{Messages: make([]api.Message, 0, len(messages))}
	for _, m := range messages {
		response.Messages = append(response.Messages, toMessage(m))
	}
	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) SendFamilyMessage(w http.ResponseWriter, r *http.Request, familyId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SendFamilyMessage")

	session, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	var req api.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	message, err := h.service.SendMessage(r.Context(), session, familyId, req.Content)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to send message to family %s: %v", familyId, err))
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, toMessage(*message), http.StatusOK)
}

func (h *Handler) AdminListFamilyMembers(w http.ResponseWriter, r *http.Request, familyId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("AdminListFamilyMembers")

	session, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	users, err := h.service.AdminMembers(r.Context(), session, familyId)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to list members of family %s: %v", familyId, err))
		h.writeServiceError(w, err)
		return
	}

	response := api.AdminMembersResponse{Members: make([]api.User, 0, len(users))}
	for _, u := range users {
		response.Members = append(response.Members, toUser(u))
	}
	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) startSession(w http.ResponseWriter, r *http.Request, logger logger_lib.LoggerInterface, session *model.Session) {
	session.ExpiresAt = time.Now().Add(h.cookie.TTL)

	sessionID, err := h.sessions.CreateSession(r.Context(), session)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to store session: %v", err))
		h.writeError(w, "failed to create session", http.StatusInternalServerError)
		return
	}

	token, expiresAt, err := h.tokens.GenerateSessionToken(sessionID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to sign session cookie: %v", err))
		h.writeError(w, "failed to create session", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	h.writeJSON(w, api.SessionResponse{
		User:      toUser(session.User),
		ExpiresAt: &expiresAt,
	}, http.StatusOK)
}

func (h *Handler) requireSession(w http.ResponseWriter, r *http.Request) (model.Session, bool) {
	session, ok := infra.SessionFromContext(r.Context())
	if !ok {
		h.writeError(w, "not signed in", http.StatusUnauthorized)
	}
	return session, ok
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	var (
		vErr   *validator.Error
		apiErr *familyapi.APIError
	)
	switch {
	case errors.As(err, &vErr):
		h.writeError(w, vErr.Reason, http.StatusBadRequest)
	case errors.Is(err, service.ErrSignInTimeout):
		h.writeError(w, err.Error(), http.StatusGatewayTimeout)
	case errors.Is(err, service.ErrForbidden):
		h.writeError(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, tree.ErrParentCycle):
		h.writeError(w, "family tree has a parent cycle", http.StatusUnprocessableEntity)
	case errors.Is(err, familyapi.ErrTransport), errors.Is(err, context.DeadlineExceeded):
		h.writeError(w, familyapi.ErrTransport.Error(), http.StatusBadGateway)
	case errors.As(err, &apiErr):
		h.writeError(w, apiErr.Message, upstreamStatus(apiErr.Status))
	default:
		h.writeError(w, "internal error", http.StatusInternalServerError)
	}
}

// upstreamStatus passes client errors through; anything else is the
// upstream's fault.
func upstreamStatus(status int) int {
	if status >= 400 && status < 500 {
		return status
	}
	return http.StatusBadGateway
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}
