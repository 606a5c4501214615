package repository

import (
	"errors"

	"github.com/amirasaad/finledger/pkg/domain"
	"gorm.io/gorm"
)

// MapGormErrorToDomain converts GORM errors to ledger domain errors.
// Database errors stay inside the infrastructure layer; anything unmapped is
// returned unchanged.
func MapGormErrorToDomain(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.ErrDuplicateAccount
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrCustomerNotFound
	}
	return err
}

// WrapError runs a GORM operation and maps its error.
//
//	err := WrapError(func() error {
//	    return r.db.WithContext(ctx).Create(&m).Error
//	})
func WrapError(op func() error) error {
	return MapGormErrorToDomain(op())
}
