package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/amirasaad/finance/pkg/domain"
	"github.com/amirasaad/finance/pkg/domain/account"
	"github.com/amirasaad/finance/pkg/money"
	repository "github.com/amirasaad/finance/pkg/repository/account"
	"github.com/amirasaad/finance/pkg/result"
)

// MoneyRequest moves Amount into or out of an account. An empty currency
// means the account's own currency.
type MoneyRequest struct {
	ID       string  `json:"id" validate:"required"`
	Amount   float64 `json:"amount" validate:"gt=0"`
	Currency string  `json:"currency" validate:"omitempty,len=3,uppercase"`
}

// MoneyResponse carries the account after the operation.
type MoneyResponse struct {
	Account *account.Account
}

// Deposit adds money to an account balance.
type Deposit struct {
	op moneyOperation
}

// NewDeposit returns a Deposit use-case.
func NewDeposit(deps Deps) *Deposit {
	return &Deposit{op: moneyOperation{name: "Deposit", repo: deps.Repo, logger: deps.logger(), apply: (*account.Account).AddMoney}}
}

// Execute adds req.Amount to the account balance.
func (uc *Deposit) Execute(ctx context.Context, req MoneyRequest) result.Result[MoneyResponse] {
	return uc.op.execute(ctx, req)
}

// Withdraw subtracts money from an account balance. Withdrawing more than
// the balance fails with account.ErrInsufficientBalance.
type Withdraw struct {
	op moneyOperation
}

// NewWithdraw returns a Withdraw use-case.
func NewWithdraw(deps Deps) *Withdraw {
	return &Withdraw{op: moneyOperation{name: "Withdraw", repo: deps.Repo, logger: deps.logger(), apply: (*account.Account).SubtractMoney}}
}

// Execute subtracts req.Amount from the account balance.
func (uc *Withdraw) Execute(ctx context.Context, req MoneyRequest) result.Result[MoneyResponse] {
	return uc.op.execute(ctx, req)
}

type moneyOperation struct {
	name   string
	repo   repository.Repository
	logger *slog.Logger
	apply  func(*account.Account, money.Money) (*account.Account, error)
}

func (o moneyOperation) execute(ctx context.Context, req MoneyRequest) result.Result[MoneyResponse] {
	logger := o.logger.With("op", o.name, "id", req.ID, "amount", req.Amount)
	if err := validateRequest(req); err != nil {
		return result.Fail[MoneyResponse](err)
	}

	current, err := o.repo.FindByID(ctx, req.ID)
	if err != nil {
		logger.Error(o.name+" failed: load", "error", err)
		return result.Fail[MoneyResponse](fmt.Errorf("%w: %w", domain.ErrPersistence, err))
	}
	if current == nil {
		return result.Fail[MoneyResponse](fmt.Errorf("%w: account %s", domain.ErrNotFound, req.ID))
	}

	code := money.Code(req.Currency)
	if code == "" {
		code = current.Currency()
	}
	amount, err := money.New(req.Amount, code)
	if err != nil {
		return result.Fail[MoneyResponse](asValidation(err))
	}

	next, err := o.apply(current, amount)
	if err != nil {
		logger.Warn(o.name+" rejected", "error", err)
		if errors.Is(err, account.ErrInsufficientBalance) {
			return result.Fail[MoneyResponse](err)
		}
		return result.Fail[MoneyResponse](asValidation(err))
	}

	saved, err := o.repo.Save(ctx, next)
	if err != nil {
		logger.Error(o.name+" failed: save", "error", err)
		return result.Fail[MoneyResponse](fmt.Errorf("%w: %w", domain.ErrPersistence, err))
	}
	logger.Info(o.name+" completed", "balance", saved.Balance().String())
	return result.Ok(MoneyResponse{Account: saved})
}
