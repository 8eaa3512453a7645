package account

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/amirasaad/finance/pkg/domain"
	"github.com/amirasaad/finance/pkg/domain/account"
	"github.com/amirasaad/finance/pkg/money"
	repository "github.com/amirasaad/finance/pkg/repository/account"
	"github.com/amirasaad/finance/pkg/result"
)

// CreateRequest describes a new account. Currency defaults to BRL.
type CreateRequest struct {
	Name        string  `json:"name" validate:"required"`
	Type        string  `json:"type" validate:"required,account_type"`
	Balance     float64 `json:"balance" validate:"gte=0"`
	Currency    string  `json:"currency" validate:"omitempty,len=3,uppercase"`
	IsActive    *bool   `json:"isActive,omitempty"`
	IsDefault   bool    `json:"isDefault"`
	Description string  `json:"description,omitempty"`
	Color       string  `json:"color,omitempty"`
}

// CreateResponse carries the persisted account.
type CreateResponse struct {
	Account *account.Account
}

// CreateAccount creates an account with a generated id. Names must be
// unique across the repository.
type CreateAccount struct {
	repo   repository.Repository
	logger *slog.Logger
	newID  func() string
}

// NewCreateAccount returns a CreateAccount use-case.
func NewCreateAccount(deps Deps) *CreateAccount {
	return &CreateAccount{repo: deps.Repo, logger: deps.logger(), newID: deps.newID}
}

// Execute validates req, rejects duplicate names and persists the account.
func (uc *CreateAccount) Execute(ctx context.Context, req CreateRequest) result.Result[CreateResponse] {
	logger := uc.logger.With("op", "CreateAccount", "name", req.Name, "type", req.Type)

	if err := validateRequest(req); err != nil {
		logger.Warn("CreateAccount rejected", "error", err)
		return result.Fail[CreateResponse](err)
	}
	name := strings.TrimSpace(req.Name)

	matches, err := uc.repo.FindByName(ctx, name)
	if err != nil {
		logger.Error("CreateAccount failed: name lookup", "error", err)
		return result.Fail[CreateResponse](fmt.Errorf("%w: %w", domain.ErrPersistence, err))
	}
	if duplicateName(matches, name, "") {
		logger.Warn("CreateAccount rejected: duplicate name")
		return result.Fail[CreateResponse](errDuplicateName(name))
	}

	b := account.New().
		WithID(uc.newID()).
		WithName(name).
		WithType(account.Type(strings.TrimSpace(req.Type))).
		WithCurrency(money.Code(req.Currency)).
		WithBalance(req.Balance).
		WithDefault(req.IsDefault).
		WithDescription(req.Description).
		WithColor(req.Color)
	if req.IsActive != nil {
		b = b.WithActive(*req.IsActive)
	}
	a, err := b.Build()
	if err != nil {
		logger.Warn("CreateAccount rejected: invalid account", "error", err)
		return result.Fail[CreateResponse](asValidation(err))
	}

	saved, err := uc.repo.Save(ctx, a)
	if err != nil {
		logger.Error("CreateAccount failed: save", "error", err)
		return result.Fail[CreateResponse](fmt.Errorf("%w: %w", domain.ErrPersistence, err))
	}
	logger.Info("CreateAccount completed", "id", saved.ID())
	return result.Ok(CreateResponse{Account: saved})
}
