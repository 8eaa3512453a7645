package account

import (
	"errors"
	"fmt"
	"strings"

	"github.com/amirasaad/finance/pkg/domain"
	"github.com/amirasaad/finance/pkg/domain/account"
	"github.com/amirasaad/finance/pkg/money"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("account_type", func(fl validator.FieldLevel) bool {
		return account.Type(strings.TrimSpace(fl.Field().String())).IsValid()
	}); err != nil {
		panic(err)
	}
	return v
}

// validateRequest runs the struct tags of req and turns failures into a
// single ErrValidation error naming the offending fields.
func validateRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "account_type":
		return fmt.Sprintf("invalid account type %q", fe.Value())
	case "gte":
		return field + " cannot be negative"
	case "gt":
		return field + " must be positive"
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}

// asValidation classifies errors raised while building an entity.
func asValidation(err error) error {
	switch {
	case errors.Is(err, account.ErrEmptyID),
		errors.Is(err, account.ErrEmptyName),
		errors.Is(err, account.ErrInvalidType),
		errors.Is(err, account.ErrNegativeBalance),
		errors.Is(err, money.ErrInvalidAmount),
		errors.Is(err, money.ErrInvalidDecimals),
		errors.Is(err, money.ErrInvalidCurrency),
		errors.Is(err, money.ErrAmountExceedsMaxSafeInt),
		errors.Is(err, money.ErrMismatchedCurrencies):
		return fmt.Errorf("%w: %w", domain.ErrValidation, err)
	default:
		return err
	}
}

// duplicateName reports whether another account already uses name. The
// repository search is case-insensitive; the comparison here is exact.
func duplicateName(matches []*account.Account, name, exceptID string) bool {
	for _, a := range matches {
		if a.Name() == name && a.ID() != exceptID {
			return true
		}
	}
	return false
}

func errDuplicateName(name string) error {
	return fmt.Errorf("%w: %w: an account named %q already exists", domain.ErrValidation, domain.ErrAlreadyExists, name)
}
