package account

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/amirasaad/finance/pkg/money"
	"github.com/google/uuid"
)

var (
	// ErrEmptyID is returned when an account is built without an identifier.
	ErrEmptyID = errors.New("account id is required")

	// ErrEmptyName is returned when the account name is blank.
	ErrEmptyName = errors.New("account name is required")

	// ErrInvalidType is returned when the account type is not one of the known types.
	ErrInvalidType = errors.New("invalid account type")

	// ErrNegativeBalance is returned when an account would hold a negative balance.
	ErrNegativeBalance = errors.New("account balance cannot be negative")

	// ErrInsufficientBalance is returned when a withdrawal exceeds the balance.
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// Account is the aggregate root for a user's financial account.
//
// Invariants:
//   - ID is non-empty.
//   - Name is non-empty after trimming.
//   - Type is one of the known types.
//   - Balance is never negative.
//
// Accounts are immutable: AddMoney and SubtractMoney return new instances.
type Account struct {
	id          string
	name        string
	accountType Type
	balance     money.Money
	isActive    bool
	isDefault   bool
	description string
	color       string
	createdAt   time.Time
}

// Builder provides a fluent API for constructing Account instances.
type Builder struct {
	id          string
	name        string
	accountType Type
	balance     float64
	currency    money.Code
	isActive    bool
	isDefault   bool
	description string
	color       string
	createdAt   time.Time
}

// New creates a Builder with defaults: a fresh UUID, the default currency,
// an active non-default account created now.
func New() *Builder {
	return &Builder{
		id:        uuid.NewString(),
		currency:  money.DefaultCode,
		isActive:  true,
		createdAt: time.Now(),
	}
}

// WithID sets the identifier.
func (b *Builder) WithID(id string) *Builder {
	b.id = id
	return b
}

// WithName sets the display name.
func (b *Builder) WithName(name string) *Builder {
	b.name = name
	return b
}

// WithType sets the account type.
func (b *Builder) WithType(t Type) *Builder {
	b.accountType = t
	return b
}

// WithBalance sets the balance in the main currency unit.
func (b *Builder) WithBalance(value float64) *Builder {
	b.balance = value
	return b
}

// WithCurrency sets the balance currency.
func (b *Builder) WithCurrency(code money.Code) *Builder {
	b.currency = code
	return b
}

// WithMoney sets both balance and currency from m.
func (b *Builder) WithMoney(m money.Money) *Builder {
	b.balance = m.Value()
	b.currency = m.Currency()
	return b
}

// WithActive sets the active flag.
func (b *Builder) WithActive(active bool) *Builder {
	b.isActive = active
	return b
}

// WithDefault marks the account as the default one.
func (b *Builder) WithDefault(isDefault bool) *Builder {
	b.isDefault = isDefault
	return b
}

// WithDescription sets an optional description.
func (b *Builder) WithDescription(description string) *Builder {
	b.description = description
	return b
}

// WithColor sets an optional display color.
func (b *Builder) WithColor(color string) *Builder {
	b.color = color
	return b
}

// WithCreatedAt sets the creation timestamp. This is primarily for hydrating
// an existing account from a data store.
func (b *Builder) WithCreatedAt(t time.Time) *Builder {
	b.createdAt = t
	return b
}

// Build validates every invariant and returns the Account. It never returns
// a partially valid account.
func (b *Builder) Build() (*Account, error) {
	if strings.TrimSpace(b.id) == "" {
		return nil, ErrEmptyID
	}
	name := strings.TrimSpace(b.name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if !b.accountType.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidType, b.accountType)
	}
	if b.balance < 0 {
		return nil, ErrNegativeBalance
	}
	bal, err := money.New(b.balance, b.currency)
	if err != nil {
		return nil, err
	}
	createdAt := b.createdAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	return &Account{
		id:          b.id,
		name:        name,
		accountType: b.accountType,
		balance:     bal,
		isActive:    b.isActive,
		isDefault:   b.isDefault,
		description: b.description,
		color:       b.color,
		createdAt:   createdAt,
	}, nil
}

// ToBuilder returns a Builder preloaded with every field of a, so a
// replacement account can be built from it.
func (a *Account) ToBuilder() *Builder {
	return &Builder{
		id:          a.id,
		name:        a.name,
		accountType: a.accountType,
		balance:     a.balance.Value(),
		currency:    a.balance.Currency(),
		isActive:    a.isActive,
		isDefault:   a.isDefault,
		description: a.description,
		color:       a.color,
		createdAt:   a.createdAt,
	}
}

// ID returns the account identifier.
func (a *Account) ID() string { return a.id }

// Name returns the display name.
func (a *Account) Name() string { return a.name }

// Type returns the account kind.
func (a *Account) Type() Type { return a.accountType }

// Balance returns the current balance.
func (a *Account) Balance() money.Money { return a.balance }

// Currency returns the currency of the balance.
func (a *Account) Currency() money.Code { return a.balance.Currency() }

// IsActive reports whether the account is in use.
func (a *Account) IsActive() bool { return a.isActive }

// IsDefault reports whether the account is the default one.
func (a *Account) IsDefault() bool { return a.isDefault }

// Description returns the free-form description.
func (a *Account) Description() string { return a.description }

// Color returns the display color.
func (a *Account) Color() string { return a.color }

// CreatedAt returns the creation timestamp.
func (a *Account) CreatedAt() time.Time { return a.createdAt }

// IsCreditCard reports whether the account is a credit card.
func (a *Account) IsCreditCard() bool { return a.accountType == TypeCartaoCredito }

// IsCash reports whether the account holds cash.
func (a *Account) IsCash() bool { return a.accountType == TypeDinheiro }

// IsEmpty reports whether the balance is zero.
func (a *Account) IsEmpty() bool { return a.balance.IsZero() }

// HasSufficientBalance reports whether the balance covers amount. Amounts in
// another currency are never covered.
func (a *Account) HasSufficientBalance(amount money.Money) bool {
	ok, err := a.balance.GreaterThanOrEqual(amount)
	return err == nil && ok
}

// AddMoney returns a copy of a with amount added to the balance.
func (a *Account) AddMoney(amount money.Money) (*Account, error) {
	bal, err := a.balance.Add(amount)
	if err != nil {
		return nil, err
	}
	next := *a
	next.balance = bal
	return &next, nil
}

// SubtractMoney returns a copy of a with amount removed from the balance.
// It fails with ErrInsufficientBalance when amount exceeds the balance.
func (a *Account) SubtractMoney(amount money.Money) (*Account, error) {
	if !a.balance.IsSameCurrency(amount) {
		return nil, fmt.Errorf("%w: %s and %s", money.ErrMismatchedCurrencies, a.balance.Currency(), amount.Currency())
	}
	if !a.HasSufficientBalance(amount) {
		return nil, fmt.Errorf("%w: balance %s, requested %s", ErrInsufficientBalance, a.balance, amount)
	}
	bal, err := a.balance.Subtract(amount)
	if err != nil {
		return nil, err
	}
	next := *a
	next.balance = bal
	return &next, nil
}

// Equals reports identity equality: two accounts are equal iff their IDs match.
func (a *Account) Equals(other *Account) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.id == other.id
}

// String implements fmt.Stringer.
func (a *Account) String() string {
	return fmt.Sprintf("Account{id=%s name=%q type=%s balance=%s}", a.id, a.name, a.accountType, a.balance)
}
