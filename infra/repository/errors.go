package repository

import (
	"errors"

	"github.com/amirasaad/finance/pkg/domain"
	"gorm.io/gorm"
)

// MapGormErrorToDomain converts GORM errors to domain errors so database
// details stay inside the infrastructure layer. Errors without a mapping are
// returned unchanged.
func MapGormErrorToDomain(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errors.Join(domain.ErrAlreadyExists, err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	default:
		return err
	}
}

// WrapError runs a GORM operation and maps its error.
//
// Usage:
//
//	err := WrapError(func() error {
//	    return r.db.WithContext(ctx).Exec(query, args...).Error
//	})
func WrapError(op func() error) error {
	return MapGormErrorToDomain(op())
}
