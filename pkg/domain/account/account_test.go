package account_test

import (
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	domainaccount "github.com/amirasaad/finance/pkg/domain/account"
	"github.com/amirasaad/finance/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain runs before any tests and applies globally for all tests in the package.
func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	os.Exit(m.Run())
}

func newChecking(t *testing.T, balance float64) *domainaccount.Account {
	t.Helper()
	acc, err := domainaccount.New().
		WithName("Conta Principal").
		WithType(domainaccount.TypeCorrente).
		WithBalance(balance).
		Build()
	require.NoError(t, err)
	return acc
}

func TestNewAccount_Defaults(t *testing.T) {
	t.Parallel()
	before := time.Now()
	acc := newChecking(t, 0)

	assert.NotEmpty(t, acc.ID(), "Account ID should not be empty")
	assert.True(t, acc.IsActive())
	assert.False(t, acc.IsDefault())
	assert.Equal(t, money.BRL, acc.Currency())
	assert.True(t, acc.IsEmpty())
	assert.False(t, acc.CreatedAt().Before(before))
}

func TestBuild_Invariants(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		builder *domainaccount.Builder
		wantErr error
	}{
		{
			name:    "empty name",
			builder: domainaccount.New().WithName("   ").WithType(domainaccount.TypeCorrente),
			wantErr: domainaccount.ErrEmptyName,
		},
		{
			name:    "invalid type",
			builder: domainaccount.New().WithName("x").WithType("conta_magica"),
			wantErr: domainaccount.ErrInvalidType,
		},
		{
			name:    "missing type",
			builder: domainaccount.New().WithName("x"),
			wantErr: domainaccount.ErrInvalidType,
		},
		{
			name:    "negative balance",
			builder: domainaccount.New().WithName("x").WithType(domainaccount.TypeDinheiro).WithBalance(-0.01),
			wantErr: domainaccount.ErrNegativeBalance,
		},
		{
			name:    "empty id",
			builder: domainaccount.New().WithID("").WithName("x").WithType(domainaccount.TypeDinheiro),
			wantErr: domainaccount.ErrEmptyID,
		},
		{
			name:    "invalid currency",
			builder: domainaccount.New().WithName("x").WithType(domainaccount.TypeDinheiro).WithCurrency("xx"),
			wantErr: money.ErrInvalidCurrency,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc, err := tt.builder.Build()
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, acc)
		})
	}
}

func TestBuild_NonNegativeBalanceHolds(t *testing.T) {
	t.Parallel()
	for _, v := range []float64{-1000, -1, -0.5, 0, 0.01, 1, 1000} {
		acc, err := domainaccount.New().WithName("x").WithType(domainaccount.TypeCorrente).WithBalance(v).Build()
		if v < 0 {
			assert.ErrorIs(t, err, domainaccount.ErrNegativeBalance, "value %v", v)
			continue
		}
		require.NoError(t, err)
		assert.GreaterOrEqual(t, acc.Balance().Value(), 0.0)
	}
}

func TestBuild_TrimsName(t *testing.T) {
	t.Parallel()
	acc, err := domainaccount.New().WithName("  Carteira ").WithType(domainaccount.TypeDinheiro).Build()
	require.NoError(t, err)
	assert.Equal(t, "Carteira", acc.Name())
}

func TestPredicates(t *testing.T) {
	t.Parallel()
	card, err := domainaccount.New().WithName("Visa").WithType(domainaccount.TypeCartaoCredito).Build()
	require.NoError(t, err)
	cash, err := domainaccount.New().WithName("Carteira").WithType(domainaccount.TypeDinheiro).WithBalance(10).Build()
	require.NoError(t, err)

	assert.True(t, card.IsCreditCard())
	assert.False(t, card.IsCash())
	assert.True(t, cash.IsCash())
	assert.False(t, cash.IsEmpty())
	assert.True(t, cash.HasSufficientBalance(money.Must(10, money.BRL)))
	assert.False(t, cash.HasSufficientBalance(money.Must(10.01, money.BRL)))
	assert.False(t, cash.HasSufficientBalance(money.Must(1, money.USD)))
}

func TestSubtractMoney_IsCopyOnWrite(t *testing.T) {
	t.Parallel()
	acc := newChecking(t, 1000)

	next, err := acc.SubtractMoney(money.Must(300, money.BRL))
	require.NoError(t, err)

	assert.Equal(t, 700.0, next.Balance().Value())
	assert.Equal(t, 1000.0, acc.Balance().Value(), "receiver must be unchanged")
	assert.True(t, next.Equals(acc))
	assert.Equal(t, acc.Name(), next.Name())
	assert.Equal(t, acc.CreatedAt(), next.CreatedAt())
}

func TestSubtractMoney_Insufficient(t *testing.T) {
	t.Parallel()
	acc := newChecking(t, 1000)

	next, err := acc.SubtractMoney(money.Must(1500, money.BRL))
	assert.ErrorIs(t, err, domainaccount.ErrInsufficientBalance)
	assert.Nil(t, next)
	assert.Equal(t, 1000.0, acc.Balance().Value())
}

func TestSubtractMoney_CurrencyMismatch(t *testing.T) {
	t.Parallel()
	_, err := newChecking(t, 1000).SubtractMoney(money.Must(1, money.USD))
	assert.ErrorIs(t, err, money.ErrMismatchedCurrencies)
}

func TestAddMoney(t *testing.T) {
	t.Parallel()
	acc := newChecking(t, 1000)

	next, err := acc.AddMoney(money.Must(500, money.BRL))
	require.NoError(t, err)
	assert.Equal(t, 1500.0, next.Balance().Value())
	assert.Equal(t, 1000.0, acc.Balance().Value())

	_, err = acc.AddMoney(money.Must(1, money.EUR))
	assert.ErrorIs(t, err, money.ErrMismatchedCurrencies)
}

func TestEquals_ByID(t *testing.T) {
	t.Parallel()
	a, err := domainaccount.New().WithID("acc-1").WithName("A").WithType(domainaccount.TypeCorrente).Build()
	require.NoError(t, err)
	b, err := domainaccount.New().WithID("acc-1").WithName("B").WithType(domainaccount.TypePoupanca).WithBalance(5).Build()
	require.NoError(t, err)
	c, err := domainaccount.New().WithID("acc-2").WithName("A").WithType(domainaccount.TypeCorrente).Build()
	require.NoError(t, err)

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
	assert.False(t, a.Equals(nil))
}

func TestToBuilder_PreservesFields(t *testing.T) {
	t.Parallel()
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	acc, err := domainaccount.New().
		WithID("acc-1").
		WithName("Reserva").
		WithType(domainaccount.TypePoupanca).
		WithBalance(12.34).
		WithActive(false).
		WithDefault(true).
		WithDescription("emergency").
		WithColor("#00ff00").
		WithCreatedAt(created).
		Build()
	require.NoError(t, err)

	clone, err := acc.ToBuilder().WithName("Reserva 2").Build()
	require.NoError(t, err)
	assert.Equal(t, "Reserva 2", clone.Name())
	assert.Equal(t, acc.ID(), clone.ID())
	assert.Equal(t, acc.Type(), clone.Type())
	assert.True(t, acc.Balance().Equals(clone.Balance()))
	assert.False(t, clone.IsActive())
	assert.True(t, clone.IsDefault())
	assert.Equal(t, "emergency", clone.Description())
	assert.Equal(t, "#00ff00", clone.Color())
	assert.Equal(t, created, clone.CreatedAt())
}

func TestParseType(t *testing.T) {
	t.Parallel()
	for _, typ := range domainaccount.Types() {
		got, err := domainaccount.ParseType(" " + typ.String() + " ")
		require.NoError(t, err)
		assert.Equal(t, typ, got)
	}
	_, err := domainaccount.ParseType("cheque")
	assert.ErrorIs(t, err, domainaccount.ErrInvalidType)
}

func TestUpdatedEvent(t *testing.T) {
	t.Parallel()
	acc := newChecking(t, 1)
	evt := domainaccount.NewUpdatedEvent(acc)
	assert.Equal(t, domainaccount.EventTypeUpdated, evt.Type())
	assert.Same(t, acc, evt.Account)
	assert.False(t, evt.OccurredAt().IsZero())
}
