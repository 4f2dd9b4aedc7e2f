package validator

import (
	"math"

	"github.com/go-playground/validator/v10"

	"github.com/mateim4/archer-capacity-planner/internal/planner"
)

func haPolicyValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	return planner.HAPolicy(val).Valid()
}

// overcommitRatioValidator accepts ratios of 1.0 or above. Ratios below
// one would shrink capacity, which is a caller mistake, not a scenario.
func overcommitRatioValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(float64)
	if !ok {
		return false
	}

	return !math.IsNaN(val) && val >= 1.0
}
