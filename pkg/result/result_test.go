package result_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/amirasaad/finance/pkg/result"
	"github.com/stretchr/testify/assert"
)

func TestOk(t *testing.T) {
	r := result.Ok(42)
	assert.True(t, r.IsOk())
	assert.False(t, r.IsFail())
	assert.Equal(t, 42, r.Value())
	assert.NoError(t, r.Err())

	v, err := r.Unwrap()
	assert.Equal(t, 42, v)
	assert.NoError(t, err)
}

func TestFail(t *testing.T) {
	boom := errors.New("boom")
	r := result.Fail[int](boom)
	assert.True(t, r.IsFail())
	assert.Zero(t, r.Value())
	assert.ErrorIs(t, r.Err(), boom)

	assert.ErrorIs(t, result.Fail[string](nil).Err(), result.ErrNilFailure)
}

func TestMap(t *testing.T) {
	ok := result.Map(result.Ok(7), strconv.Itoa)
	assert.Equal(t, "7", ok.Value())

	boom := errors.New("boom")
	failed := result.Map(result.Fail[int](boom), strconv.Itoa)
	assert.ErrorIs(t, failed.Err(), boom)
}
