package account

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/amirasaad/finance/pkg/domain"
	"github.com/amirasaad/finance/pkg/domain/account"
	repository "github.com/amirasaad/finance/pkg/repository/account"
	"github.com/amirasaad/finance/pkg/result"
)

// GetByIDRequest identifies the account to load.
type GetByIDRequest struct {
	ID string `json:"id" validate:"required"`
}

// GetByIDResponse carries the account, or nil when no account has the id.
type GetByIDResponse struct {
	Account *account.Account
}

// GetAccountByID looks an account up by id. A missing account is a
// successful result with a nil Account.
type GetAccountByID struct {
	repo   repository.Repository
	logger *slog.Logger
}

// NewGetAccountByID returns a GetAccountByID use-case.
func NewGetAccountByID(deps Deps) *GetAccountByID {
	return &GetAccountByID{repo: deps.Repo, logger: deps.logger()}
}

// Execute returns the account with req.ID.
func (uc *GetAccountByID) Execute(ctx context.Context, req GetByIDRequest) result.Result[GetByIDResponse] {
	req.ID = strings.TrimSpace(req.ID)
	if err := validateRequest(req); err != nil {
		return result.Fail[GetByIDResponse](err)
	}
	a, err := uc.repo.FindByID(ctx, req.ID)
	if err != nil {
		uc.logger.Error("GetAccountByID failed", "id", req.ID, "error", err)
		return result.Fail[GetByIDResponse](fmt.Errorf("%w: %w", domain.ErrPersistence, err))
	}
	return result.Ok(GetByIDResponse{Account: a})
}

// CountResponse holds account totals.
type CountResponse struct {
	Total  int
	Active int
}

// CountAccounts reports how many accounts exist and how many are active.
type CountAccounts struct {
	repo   repository.Repository
	logger *slog.Logger
}

// NewCountAccounts returns a CountAccounts use-case.
func NewCountAccounts(deps Deps) *CountAccounts {
	return &CountAccounts{repo: deps.Repo, logger: deps.logger()}
}

// Execute returns the total and active account counts.
func (uc *CountAccounts) Execute(ctx context.Context) result.Result[CountResponse] {
	total, err := uc.repo.Count(ctx)
	if err != nil {
		uc.logger.Error("CountAccounts failed", "error", err)
		return result.Fail[CountResponse](fmt.Errorf("%w: %w", domain.ErrList, err))
	}
	active, err := uc.repo.CountActive(ctx)
	if err != nil {
		uc.logger.Error("CountAccounts failed: active", "error", err)
		return result.Fail[CountResponse](fmt.Errorf("%w: %w", domain.ErrList, err))
	}
	return result.Ok(CountResponse{Total: total, Active: active})
}
