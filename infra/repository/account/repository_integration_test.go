package account

import (
	"context"
	"testing"

	domainaccount "github.com/amirasaad/finance/pkg/domain/account"
	"github.com/amirasaad/finance/pkg/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLRepository_Postgres(t *testing.T) {
	ctx := context.Background()
	db := testutils.SetupPostgres(t)

	r, err := NewSQL(ctx, db, testutils.DiscardLogger())
	require.NoError(t, err)
	_, err = NewSQL(ctx, db, nil)
	require.NoError(t, err, "table creation is idempotent")

	_, err = r.Save(ctx, build(t, "1", "Conta Principal", domainaccount.TypeCorrente, 1000.55))
	require.NoError(t, err)
	_, err = r.Save(ctx, build(t, "2", "Visa", domainaccount.TypeCartaoCredito, 10))
	require.NoError(t, err)

	renamed, err := build(t, "1", "Conta Principal", domainaccount.TypeCorrente, 1000.55).
		ToBuilder().WithName("Principal").WithDefault(true).Build()
	require.NoError(t, err)
	_, err = r.Save(ctx, renamed)
	require.NoError(t, err)

	got, err := r.FindByID(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Principal", got.Name())
	assert.True(t, got.IsDefault())
	assert.InDelta(t, 1000.55, got.Balance().Value(), 0.0001, "saldo keeps double precision")

	card, err := r.FindByID(ctx, "2")
	require.NoError(t, err)
	assert.True(t, card.IsEmpty())

	byName, err := r.FindByName(ctx, "PRINC")
	require.NoError(t, err)
	assert.Equal(t, []string{"Principal"}, names(byName))

	n, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	removed, err := r.Delete(ctx, "2")
	require.NoError(t, err)
	assert.True(t, removed)
}
