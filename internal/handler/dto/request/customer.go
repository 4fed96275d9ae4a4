package request

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

type Customer struct {
	FirstName string  `json:"first_name" binding:"required,max=255"`
	LastName  string  `json:"last_name" binding:"required,max=255"`
	Email     string  `json:"email" binding:"required,email,max=255"`
	Phone     *string `json:"phone,omitempty" binding:"omitempty,phone"`
}

var phonePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

// ValidatePhone backs the "phone" binding tag.
func ValidatePhone(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}

// RegisterValidators installs the custom binding tags on v.
func RegisterValidators(v *validator.Validate) error {
	return v.RegisterValidation("phone", ValidatePhone)
}
