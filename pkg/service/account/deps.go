// Package account holds the account use-cases. Each use-case validates its
// request, talks to storage only through the repository port and reports
// the outcome as a result.Result, so expected failures never panic across
// the package boundary.
package account

import (
	"io"
	"log/slog"

	"github.com/amirasaad/finance/pkg/eventbus"
	repository "github.com/amirasaad/finance/pkg/repository/account"
	"github.com/google/uuid"
)

// Deps are the collaborators shared by the account use-cases.
type Deps struct {
	Repo repository.Repository
	// EventBus is optional. A nil bus disables event publishing.
	EventBus eventbus.EventBus
	Logger   *slog.Logger
	// NewID generates account identifiers. Defaults to uuid.NewString.
	NewID func() string
}

func (d Deps) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return d.Logger
}

func (d Deps) newID() string {
	if d.NewID == nil {
		return uuid.NewString()
	}
	return d.NewID()
}

// UseCases bundles every account use-case built from the same Deps.
type UseCases struct {
	Create   *CreateAccount
	Update   *UpdateAccount
	Delete   *DeleteAccount
	GetByID  *GetAccountByID
	List     *GetAccounts
	Deposit  *Deposit
	Withdraw *Withdraw
	Count    *CountAccounts
}

// New builds every account use-case from deps.
func New(deps Deps) *UseCases {
	return &UseCases{
		Create:   NewCreateAccount(deps),
		Update:   NewUpdateAccount(deps),
		Delete:   NewDeleteAccount(deps),
		GetByID:  NewGetAccountByID(deps),
		List:     NewGetAccounts(deps),
		Deposit:  NewDeposit(deps),
		Withdraw: NewWithdraw(deps),
		Count:    NewCountAccounts(deps),
	}
}
