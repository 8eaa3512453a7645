package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/amirasaad/finance/pkg/domain"
	"github.com/amirasaad/finance/pkg/domain/account"
	"github.com/amirasaad/finance/pkg/eventbus"
	repository "github.com/amirasaad/finance/pkg/repository/account"
	"github.com/amirasaad/finance/pkg/result"
)

// UpdateRequest changes an existing account. Nil fields keep their current value.
type UpdateRequest struct {
	ID          string   `json:"id" validate:"required"`
	Name        *string  `json:"name,omitempty"`
	Type        *string  `json:"type,omitempty" validate:"omitempty,account_type"`
	Balance     *float64 `json:"balance,omitempty" validate:"omitempty,gte=0"`
	IsActive    *bool    `json:"isActive,omitempty"`
	IsDefault   *bool    `json:"isDefault,omitempty"`
	Description *string  `json:"description,omitempty"`
	Color       *string  `json:"color,omitempty"`
}

// UpdateResponse carries the replacement account.
type UpdateResponse struct {
	Account *account.Account
}

// UpdateAccount applies a partial update and publishes account.updated.
type UpdateAccount struct {
	repo   repository.Repository
	bus    eventbus.EventBus
	logger *slog.Logger
}

// NewUpdateAccount returns an UpdateAccount use-case.
func NewUpdateAccount(deps Deps) *UpdateAccount {
	return &UpdateAccount{repo: deps.Repo, bus: deps.EventBus, logger: deps.logger()}
}

// Execute loads the account, builds a replacement that keeps createdAt, and
// saves it. A failed publish is logged; the saved update stands.
func (uc *UpdateAccount) Execute(ctx context.Context, req UpdateRequest) result.Result[UpdateResponse] {
	logger := uc.logger.With("op", "UpdateAccount", "id", req.ID)

	if err := validateRequest(req); err != nil {
		logger.Warn("UpdateAccount rejected", "error", err)
		return result.Fail[UpdateResponse](err)
	}

	current, err := uc.repo.FindByID(ctx, req.ID)
	if err != nil {
		logger.Error("UpdateAccount failed: load", "error", err)
		return result.Fail[UpdateResponse](fmt.Errorf("%w: %w", domain.ErrPersistence, err))
	}
	if current == nil {
		return result.Fail[UpdateResponse](fmt.Errorf("%w: account %s", domain.ErrNotFound, req.ID))
	}

	b := current.ToBuilder()
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name != "" && name != current.Name() {
			matches, err := uc.repo.FindByName(ctx, name)
			if err != nil {
				logger.Error("UpdateAccount failed: name lookup", "error", err)
				return result.Fail[UpdateResponse](fmt.Errorf("%w: %w", domain.ErrPersistence, err))
			}
			if duplicateName(matches, name, current.ID()) {
				return result.Fail[UpdateResponse](errDuplicateName(name))
			}
		}
		b = b.WithName(name)
	}
	if req.Type != nil {
		b = b.WithType(account.Type(strings.TrimSpace(*req.Type)))
	}
	if req.Balance != nil {
		b = b.WithBalance(*req.Balance)
	}
	if req.IsActive != nil {
		b = b.WithActive(*req.IsActive)
	}
	if req.IsDefault != nil {
		b = b.WithDefault(*req.IsDefault)
	}
	if req.Description != nil {
		b = b.WithDescription(*req.Description)
	}
	if req.Color != nil {
		b = b.WithColor(*req.Color)
	}

	updated, err := b.WithCreatedAt(current.CreatedAt()).Build()
	if err != nil {
		logger.Warn("UpdateAccount rejected: invalid account", "error", err)
		return result.Fail[UpdateResponse](asValidation(err))
	}

	saved, err := uc.repo.Save(ctx, updated)
	if err != nil {
		logger.Error("UpdateAccount failed: save", "error", err)
		return result.Fail[UpdateResponse](fmt.Errorf("%w: %w", domain.ErrPersistence, err))
	}

	publish(ctx, uc.bus, logger, account.NewUpdatedEvent(saved))
	logger.Info("UpdateAccount completed")
	return result.Ok(UpdateResponse{Account: saved})
}

func publish(ctx context.Context, bus eventbus.EventBus, logger *slog.Logger, event domain.Event) {
	if bus == nil {
		return
	}
	if err := bus.Publish(ctx, event); err != nil && !errors.Is(err, context.Canceled) {
		logger.Warn("event publish failed", "event", event.Type(), "error", err)
	}
}
