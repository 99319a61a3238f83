package domain

import "github.com/go-playground/validator/v10"

// NewValidator returns a validator that checks the struct tags on profiles and
// candidates plus the budget pairing rule.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(validateBudget, Profile{})
	return v
}

// validateBudget enforces that budget bounds come as a pair with min <= max.
func validateBudget(sl validator.StructLevel) {
	p := sl.Current().Interface().(Profile)
	switch {
	case p.BudgetMin == nil && p.BudgetMax == nil:
	case p.BudgetMin == nil:
		sl.ReportError(p.BudgetMin, "budget_min", "BudgetMin", "required_with", "BudgetMax")
	case p.BudgetMax == nil:
		sl.ReportError(p.BudgetMax, "budget_max", "BudgetMax", "required_with", "BudgetMin")
	case *p.BudgetMin > *p.BudgetMax:
		sl.ReportError(p.BudgetMin, "budget_min", "BudgetMin", "ltefield", "BudgetMax")
	}
}
