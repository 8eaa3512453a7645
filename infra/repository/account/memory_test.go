package account

import (
	"context"
	"sync"
	"testing"
	"time"

	domainaccount "github.com/amirasaad/finance/pkg/domain/account"
	"github.com/amirasaad/finance/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_Lossless(t *testing.T) {
	ctx := context.Background()
	r := NewMemory()

	inactive, err := domainaccount.New().
		WithID("2").
		WithName("Old savings").
		WithType(domainaccount.TypePoupanca).
		WithCurrency(money.USD).
		WithBalance(3.5).
		WithActive(false).
		Build()
	require.NoError(t, err)
	_, err = r.Save(ctx, inactive)
	require.NoError(t, err)
	_, err = r.Save(ctx, build(t, "1", "Bank", domainaccount.TypeCorrente, 10))
	require.NoError(t, err)

	got, err := r.FindByID(ctx, "2")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domainaccount.TypePoupanca, got.Type())
	assert.Equal(t, money.USD, got.Currency())
	assert.False(t, got.IsActive())

	all, err := r.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bank", "Old savings"}, names(all))

	active, err := r.FindActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bank"}, names(active))

	n, err := r.CountActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	savings, err := r.FindByType(ctx, domainaccount.TypePoupanca)
	require.NoError(t, err)
	assert.Equal(t, []string{"Old savings"}, names(savings))

	found, err := r.FindByName(ctx, "SAV")
	require.NoError(t, err)
	assert.Equal(t, []string{"Old savings"}, names(found))
}

func TestMemoryRepository_SaveKeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	r := NewMemory()

	a := build(t, "1", "Bank", domainaccount.TypeCorrente, 10)
	_, err := r.Save(ctx, a)
	require.NoError(t, err)

	later, err := a.ToBuilder().WithName("Renamed").WithCreatedAt(time.Now()).Build()
	require.NoError(t, err)
	saved, err := r.Save(ctx, later)
	require.NoError(t, err)
	assert.True(t, saved.CreatedAt().Equal(a.CreatedAt()), "Save returns what was stored")

	got, err := r.FindByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name())
	assert.True(t, got.CreatedAt().Equal(a.CreatedAt()))
}

func TestMemoryRepository_Delete(t *testing.T) {
	ctx := context.Background()
	r := NewMemory()
	_, err := r.Save(ctx, build(t, "1", "Bank", domainaccount.TypeCorrente, 10))
	require.NoError(t, err)

	removed, err := r.Delete(ctx, "1")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = r.Delete(ctx, "1")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestMemoryRepository_Concurrent(t *testing.T) {
	ctx := context.Background()
	r := NewMemory()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a, err := domainaccount.New().WithName("acc").WithType(domainaccount.TypeDinheiro).Build()
			if err != nil {
				return
			}
			_, _ = r.Save(ctx, a)
			_, _ = r.FindAll(ctx)
		}()
	}
	wg.Wait()

	n, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50, n)
}
