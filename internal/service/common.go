package service

import (
	"errors"
	"strings"
	"unicode"

	apperrors "github.com/Top-Technologies/downtime/internal/errors"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// normalizePagination clamps page and pageSize and returns limit and offset
func normalizePagination(page, pageSize int) (int, int, int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}
	return page, pageSize, pageSize, (page - 1) * pageSize
}

// validateRequest runs struct validation and turns the first failure into a ValidationError
func validateRequest(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperrors.NewValidationError(toSnake(fe.Field()), "failed on '"+fe.Tag()+"' rule")
	}
	return apperrors.NewValidationError("", err.Error())
}

// mapNotFound swaps gorm's record-not-found for the given domain error
func mapNotFound(err error, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return err
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 && unicode.IsLower(rune(s[i-1])) {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
