package member

import (
	"context"
	"encoding/json"
	"fmt"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/family-web/internal/config"
	"github.com/s21platform/family-web/internal/model"
)

type Handler struct {
	repo VersionRepo
}

func New(repo VersionRepo) *Handler {
	return &Handler{repo: repo}
}

// Handler bumps the member-list version so the next tree request assembles
// a fresh forest. Undecodable events are logged and skipped.
func (h *Handler) Handler(ctx context.Context, in []byte) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("MemberChanged")

	var msg model.MemberChanged
	if err := json.Unmarshal(in, &msg); err != nil {
		logger.Error(fmt.Sprintf("failed to unmarshal member event: %v", err))
		return nil
	}
	if msg.FamilyID == "" {
		logger.Warn("member event without family id")
		return nil
	}

	version, err := h.repo.BumpMemberVersion(ctx, msg.FamilyID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to bump member version: %v", err))
		return err
	}

	logger.Info(fmt.Sprintf("family %s members now at version %d", msg.FamilyID, version))
	return nil
}
