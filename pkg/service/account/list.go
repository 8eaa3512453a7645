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

// ListRequest holds optional filters. Zero values mean "no filter".
type ListRequest struct {
	Type       string `json:"type,omitempty" validate:"omitempty,account_type"`
	Name       string `json:"name,omitempty"`
	ActiveOnly bool   `json:"activeOnly,omitempty"`
}

// ListResponse carries the matching accounts ordered by name.
type ListResponse struct {
	Accounts []*account.Account
	Total    int
}

// GetAccounts lists accounts. A single filter maps to one repository call;
// several filters are fetched independently and intersected by id.
type GetAccounts struct {
	repo   repository.Repository
	logger *slog.Logger
}

// NewGetAccounts returns a GetAccounts use-case.
func NewGetAccounts(deps Deps) *GetAccounts {
	return &GetAccounts{repo: deps.Repo, logger: deps.logger()}
}

type fetchFunc func(context.Context) ([]*account.Account, error)

// Execute validates the filters and returns the matching accounts.
func (uc *GetAccounts) Execute(ctx context.Context, req ListRequest) result.Result[ListResponse] {
	logger := uc.logger.With("op", "GetAccounts")
	if err := validateRequest(req); err != nil {
		return result.Fail[ListResponse](err)
	}

	var fetches []fetchFunc
	if t := strings.TrimSpace(req.Type); t != "" {
		fetches = append(fetches, func(ctx context.Context) ([]*account.Account, error) {
			return uc.repo.FindByType(ctx, account.Type(t))
		})
	}
	if req.Name != "" {
		fetches = append(fetches, func(ctx context.Context) ([]*account.Account, error) {
			return uc.repo.FindByName(ctx, req.Name)
		})
	}
	if req.ActiveOnly {
		fetches = append(fetches, uc.repo.FindActive)
	}
	if len(fetches) == 0 {
		fetches = append(fetches, uc.repo.FindAll)
	}

	var accounts []*account.Account
	for i, fetch := range fetches {
		set, err := fetch(ctx)
		if err != nil {
			logger.Error("GetAccounts failed", "error", err)
			return result.Fail[ListResponse](fmt.Errorf("%w: %w", domain.ErrList, err))
		}
		if i == 0 {
			accounts = set
			continue
		}
		accounts = intersect(accounts, set)
	}
	if accounts == nil {
		accounts = []*account.Account{}
	}
	return result.Ok(ListResponse{Accounts: accounts, Total: len(accounts)})
}

// intersect keeps the accounts of a whose id also appears in b, in a's order.
func intersect(a, b []*account.Account) []*account.Account {
	ids := make(map[string]struct{}, len(b))
	for _, acc := range b {
		ids[acc.ID()] = struct{}{}
	}
	out := make([]*account.Account, 0, len(a))
	for _, acc := range a {
		if _, ok := ids[acc.ID()]; ok {
			out = append(out, acc)
		}
	}
	return out
}
