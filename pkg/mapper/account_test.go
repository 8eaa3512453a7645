package mapper_test

import (
	"testing"
	"time"

	"github.com/amirasaad/finance/pkg/domain/account"
	"github.com/amirasaad/finance/pkg/dto"
	"github.com/amirasaad/finance/pkg/mapper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func build(t *testing.T, typ account.Type, balance float64) *account.Account {
	t.Helper()
	a, err := account.New().
		WithName("Conta " + typ.String()).
		WithType(typ).
		WithBalance(balance).
		WithCreatedAt(time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)).
		Build()
	require.NoError(t, err)
	return a
}

func TestAccountToDTO(t *testing.T) {
	a := build(t, account.TypePoupanca, 250.5)
	d := mapper.AccountToDTO(a)

	assert.Equal(t, a.ID(), d.ID)
	assert.Equal(t, a.Name(), d.Name)
	assert.Equal(t, dto.KindPropria, d.Type)
	require.NotNil(t, d.Saldo)
	assert.Equal(t, 250.5, *d.Saldo)
	assert.False(t, d.IsDefault)
	assert.Equal(t, "2024-03-01T12:30:00.000Z", d.CreatedAt)
}

func TestAccountToDTO_CreditCardSaldoIsNil(t *testing.T) {
	for _, balance := range []float64{0, 10, 9999.99} {
		d := mapper.AccountToDTO(build(t, account.TypeCartaoCredito, balance))
		assert.Equal(t, dto.KindExterna, d.Type)
		assert.Nil(t, d.Saldo, "balance %v", balance)
	}
}

func TestRoundTrip_OwnTypesCollapseToCorrente(t *testing.T) {
	own := []account.Type{account.TypeCorrente, account.TypePoupanca, account.TypeInvestimento, account.TypeDinheiro}
	for _, typ := range own {
		t.Run(typ.String(), func(t *testing.T) {
			a := build(t, typ, 42)
			back, err := mapper.AccountToDomain(mapper.AccountToDTO(a))
			require.NoError(t, err)

			assert.Equal(t, account.TypeCorrente, back.Type())
			assert.Equal(t, a.ID(), back.ID())
			assert.True(t, a.Balance().Equals(back.Balance()))
			assert.True(t, a.CreatedAt().Equal(back.CreatedAt()))
		})
	}
}

func TestRoundTrip_CreditCardLosesBalance(t *testing.T) {
	a := build(t, account.TypeCartaoCredito, 300)
	back, err := mapper.AccountToDomain(mapper.AccountToDTO(a))
	require.NoError(t, err)
	assert.Equal(t, account.TypeCartaoCredito, back.Type())
	assert.True(t, back.IsEmpty())
}

func TestAccountToDomain(t *testing.T) {
	d := dto.Account{
		ID:        "acc-1",
		Name:      "Nubank",
		Type:      dto.KindExterna,
		IsDefault: true,
		CreatedAt: "2023-12-31T23:59:59.123Z",
	}
	a, err := mapper.AccountToDomain(d)
	require.NoError(t, err)

	assert.Equal(t, "acc-1", a.ID())
	assert.Equal(t, account.TypeCartaoCredito, a.Type())
	assert.True(t, a.IsEmpty())
	assert.True(t, a.IsActive())
	assert.True(t, a.IsDefault())
	assert.Equal(t, 123*time.Millisecond, time.Duration(a.CreatedAt().Nanosecond()))
}

func TestAccountToDomain_Errors(t *testing.T) {
	base := dto.Account{ID: "a", Name: "x", Type: dto.KindPropria, Saldo: ptr(1), CreatedAt: "2024-01-01T00:00:00.000Z"}

	unknown := base
	unknown.Type = "interna"
	_, err := mapper.AccountToDomain(unknown)
	assert.ErrorIs(t, err, mapper.ErrUnknownKind)

	negative := base
	negative.Saldo = ptr(-5)
	_, err = mapper.AccountToDomain(negative)
	assert.ErrorIs(t, err, account.ErrNegativeBalance)

	badTime := base
	badTime.CreatedAt = "yesterday"
	_, err = mapper.AccountToDomain(badTime)
	assert.Error(t, err)

	noName := base
	noName.Name = ""
	_, err = mapper.AccountToDomain(noName)
	assert.ErrorIs(t, err, account.ErrEmptyName)
}

func TestAccountsToDomain_PreservesOrderAndFailsFast(t *testing.T) {
	ds := []dto.Account{
		{ID: "b", Name: "B", Type: dto.KindPropria, Saldo: ptr(1), CreatedAt: "2024-01-01T00:00:00.000Z"},
		{ID: "a", Name: "A", Type: dto.KindExterna, CreatedAt: "2024-01-01T00:00:00.000Z"},
	}
	as, err := mapper.AccountsToDomain(ds)
	require.NoError(t, err)
	require.Len(t, as, 2)
	assert.Equal(t, "b", as[0].ID())
	assert.Equal(t, "a", as[1].ID())

	ds = append(ds, dto.Account{ID: "c", Name: "C", Type: "???", CreatedAt: "2024-01-01T00:00:00.000Z"})
	as, err = mapper.AccountsToDomain(ds)
	assert.ErrorIs(t, err, mapper.ErrUnknownKind)
	assert.Nil(t, as)
}

func TestAccountsToDTO(t *testing.T) {
	as := []*account.Account{build(t, account.TypeDinheiro, 1), build(t, account.TypeCartaoCredito, 2)}
	ds := mapper.AccountsToDTO(as)
	require.Len(t, ds, 2)
	assert.Equal(t, as[0].ID(), ds[0].ID)
	assert.Equal(t, dto.KindPropria, ds[0].Type)
	assert.Equal(t, dto.KindExterna, ds[1].Type)
	assert.Empty(t, mapper.AccountsToDTO(nil))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, dto.KindExterna, mapper.KindOf(account.TypeCartaoCredito))
	for _, typ := range []account.Type{account.TypeCorrente, account.TypePoupanca, account.TypeInvestimento, account.TypeDinheiro} {
		assert.Equal(t, dto.KindPropria, mapper.KindOf(typ))
	}
}
