// Package mapper converts between domain entities and their persistence DTOs.
//
// The account mapping is lossy in both directions. Going to the DTO, the five
// domain types collapse into two kinds and credit-card balances are dropped.
// Coming back, every "propria" account becomes "corrente", every "externa"
// becomes "cartao_credito", isActive is forced true and the currency falls
// back to the default.
package mapper

import (
	"errors"
	"fmt"
	"time"

	"github.com/amirasaad/finance/pkg/domain/account"
	"github.com/amirasaad/finance/pkg/dto"
)

// ErrUnknownKind is returned when a DTO carries a kind other than propria or externa.
var ErrUnknownKind = errors.New("unknown account kind")

// KindOf returns the storage bucket for a domain type.
func KindOf(t account.Type) dto.Kind {
	if t == account.TypeCartaoCredito {
		return dto.KindExterna
	}
	return dto.KindPropria
}

// TypeOf returns the domain type reconstructed from a storage bucket.
func TypeOf(k dto.Kind) (account.Type, error) {
	switch k {
	case dto.KindPropria:
		return account.TypeCorrente, nil
	case dto.KindExterna:
		return account.TypeCartaoCredito, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, k)
	}
}

// AccountToDomain maps a DTO to an Account. A nil saldo becomes a zero balance.
func AccountToDomain(d dto.Account) (*account.Account, error) {
	t, err := TypeOf(d.Type)
	if err != nil {
		return nil, err
	}
	createdAt, err := time.Parse(time.RFC3339Nano, d.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid createdAt %q: %w", d.CreatedAt, err)
	}
	var saldo float64
	if d.Saldo != nil {
		saldo = *d.Saldo
	}
	return account.New().
		WithID(d.ID).
		WithName(d.Name).
		WithType(t).
		WithBalance(saldo).
		WithActive(true).
		WithDefault(d.IsDefault).
		WithCreatedAt(createdAt).
		Build()
}

// AccountToDTO maps an Account to its persistence shape.
func AccountToDTO(a *account.Account) dto.Account {
	var saldo *float64
	if !a.IsCreditCard() {
		v := a.Balance().Value()
		saldo = &v
	}
	return dto.Account{
		ID:        a.ID(),
		Name:      a.Name(),
		Type:      KindOf(a.Type()),
		Saldo:     saldo,
		IsDefault: a.IsDefault(),
		CreatedAt: a.CreatedAt().UTC().Format(dto.TimeLayout),
	}
}

// AccountsToDomain maps DTOs in order. The first failure aborts the batch.
func AccountsToDomain(ds []dto.Account) ([]*account.Account, error) {
	out := make([]*account.Account, 0, len(ds))
	for i, d := range ds {
		a, err := AccountToDomain(d)
		if err != nil {
			return nil, fmt.Errorf("account %d (%s): %w", i, d.ID, err)
		}
		out = append(out, a)
	}
	return out, nil
}

// AccountsToDTO maps accounts in order.
func AccountsToDTO(as []*account.Account) []dto.Account {
	out := make([]dto.Account, 0, len(as))
	for _, a := range as {
		out = append(out, AccountToDTO(a))
	}
	return out
}
