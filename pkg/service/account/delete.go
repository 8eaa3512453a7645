package account

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/amirasaad/finance/pkg/domain"
	repository "github.com/amirasaad/finance/pkg/repository/account"
	"github.com/amirasaad/finance/pkg/result"
)

// DeleteRequest identifies the account to delete.
type DeleteRequest struct {
	ID string `json:"id" validate:"required"`
}

// DeleteResponse reports whether the account was removed.
type DeleteResponse struct {
	ID      string
	Deleted bool
}

// DeleteAccount removes an account. Deleting an absent id fails with
// domain.ErrNotFound.
type DeleteAccount struct {
	repo   repository.Repository
	logger *slog.Logger
}

// NewDeleteAccount returns a DeleteAccount use-case.
func NewDeleteAccount(deps Deps) *DeleteAccount {
	return &DeleteAccount{repo: deps.Repo, logger: deps.logger()}
}

// Execute removes the account with req.ID.
func (uc *DeleteAccount) Execute(ctx context.Context, req DeleteRequest) result.Result[DeleteResponse] {
	logger := uc.logger.With("op", "DeleteAccount", "id", req.ID)
	req.ID = strings.TrimSpace(req.ID)
	if err := validateRequest(req); err != nil {
		return result.Fail[DeleteResponse](err)
	}

	existing, err := uc.repo.FindByID(ctx, req.ID)
	if err != nil {
		logger.Error("DeleteAccount failed: load", "error", err)
		return result.Fail[DeleteResponse](fmt.Errorf("%w: %w", domain.ErrPersistence, err))
	}
	if existing == nil {
		return result.Fail[DeleteResponse](fmt.Errorf("%w: account %s", domain.ErrNotFound, req.ID))
	}

	removed, err := uc.repo.Delete(ctx, req.ID)
	if err != nil {
		logger.Error("DeleteAccount failed: delete", "error", err)
		return result.Fail[DeleteResponse](fmt.Errorf("%w: %w", domain.ErrPersistence, err))
	}
	if !removed {
		return result.Fail[DeleteResponse](fmt.Errorf("%w: account %s", domain.ErrNotFound, req.ID))
	}
	logger.Info("DeleteAccount completed")
	return result.Ok(DeleteResponse{ID: req.ID, Deleted: true})
}
