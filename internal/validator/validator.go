// Package validator registers the custom binding rules used by request models.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"opportunity-team/internal/models"
)

// validateObjectID validates that a string is a hex ObjectID
func validateObjectID(fl validator.FieldLevel) bool {
	return primitive.IsValidObjectID(fl.Field().String())
}

// validateAccessLevel validates that a string is a known access level
func validateAccessLevel(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case models.AccessEdit, models.AccessRead:
		return true
	}
	return false
}

// register adds the custom rules to v.
func register(v *validator.Validate) {
	_ = v.RegisterValidation("objectid", validateObjectID)
	_ = v.RegisterValidation("accesslevel", validateAccessLevel)
}

// RegisterCustomValidators registers all custom validators with gin's validator
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		register(v)
	}
}
