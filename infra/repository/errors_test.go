package repository

import (
	"errors"
	"testing"

	"github.com/amirasaad/finance/pkg/domain"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMapGormErrorToDomain(t *testing.T) {
	t.Parallel()
	other := errors.New("some other error")

	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{"nil error returns nil", nil, nil},
		{"duplicate key maps to ErrAlreadyExists", gorm.ErrDuplicatedKey, domain.ErrAlreadyExists},
		{"record not found maps to ErrNotFound", gorm.ErrRecordNotFound, domain.ErrNotFound},
		{"wrapped duplicate key maps", errors.Join(errors.New("outer"), gorm.ErrDuplicatedKey), domain.ErrAlreadyExists},
		{"non-GORM error returns original", other, other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := MapGormErrorToDomain(tt.input)
			if tt.expected == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.expected)
		})
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	assert.NoError(t, WrapError(func() error { return nil }))
	assert.ErrorIs(t, WrapError(func() error { return gorm.ErrRecordNotFound }), domain.ErrNotFound)
}
