package api

import (
	"github.com/go-playground/validator/v10"
	"github.com/ougirez/constituency/internal/pkg/validation"
)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validation.New()}
}

func (v *Validator) Validate(i interface{}) error {
	return validation.Struct(v.validate, i)
}
