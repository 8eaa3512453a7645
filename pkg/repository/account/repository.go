// Package account defines the persistence port for the Account aggregate.
package account

import (
	"context"

	"github.com/amirasaad/finance/pkg/domain/account"
)

// Repository is the contract between the account use-cases and storage.
// Every method fails with a storage error when the underlying I/O fails.
// Listing methods return accounts ordered by name ascending.
type Repository interface {
	// Save inserts the account or, when its ID already exists, updates every
	// mutable column. It returns the account as passed.
	Save(ctx context.Context, a *account.Account) (*account.Account, error)

	// FindByID returns nil and no error when the account does not exist.
	FindByID(ctx context.Context, id string) (*account.Account, error)

	// FindAll returns every account.
	FindAll(ctx context.Context) ([]*account.Account, error)

	// FindActive returns active accounts. Stores without an active flag may
	// return the same as FindAll.
	FindActive(ctx context.Context) ([]*account.Account, error)

	// FindByType returns accounts of the given type. Stores with a coarser
	// classification match by their bucket, so the result may be a superset.
	FindByType(ctx context.Context, t account.Type) ([]*account.Account, error)

	// FindByName returns accounts whose name contains query, case-insensitively.
	FindByName(ctx context.Context, query string) ([]*account.Account, error)

	// Delete reports whether a row was removed. A missing ID is not an error.
	Delete(ctx context.Context, id string) (bool, error)

	// Count returns the number of accounts.
	Count(ctx context.Context) (int, error)

	// CountActive returns the number of active accounts.
	CountActive(ctx context.Context) (int, error)
}
