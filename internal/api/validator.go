package api

import (
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"
	"github.com/greenmarket/agridash/internal/pkg/constants"
)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()

	// the category filter only accepts the fixed dashboard list
	_ = v.RegisterValidation("pricecategory", func(fl validator.FieldLevel) bool {
		return slices.Contains(constants.Categories, fl.Field().String())
	})

	return &Validator{validate: v}
}

func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return fmt.Errorf("%w: %s", constants.ErrBadRequest, err)
	}
	return nil
}
