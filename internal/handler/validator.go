package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dhairyapractice/Solo-leveling/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	// Register custom validations for domain enums
	_ = v.RegisterValidation("difficulty", validateDifficulty)
	_ = v.RegisterValidation("questtype", validateQuestType)
	_ = v.RegisterValidation("itemtype", validateItemType)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// This prevents leaking internal struct names and provides cleaner error messages
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "difficulty":
			errs[field] = "Must be one of S, A, B, C, D"
		case "questtype":
			errs[field] = "Must be daily, weekly or monthly"
		case "itemtype":
			errs[field] = "Must be shop or reward"
		case "url":
			errs[field] = "Invalid URL format"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s characters", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "gte":
			errs[field] = fmt.Sprintf("Must be %s or greater", e.Param())
		case "excludesall":
			errs[field] = "Contains invalid characters"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// Custom validation function for quest difficulty ranks
func validateDifficulty(fl validator.FieldLevel) bool {
	rank := fl.Field().String()
	// Allow empty if not required (handled by 'required' tag if needed)
	if rank == "" {
		return true
	}
	return domain.Difficulty(strings.ToUpper(rank)).Valid()
}

// Custom validation function for quest cadence
func validateQuestType(fl validator.FieldLevel) bool {
	questType := fl.Field().String()
	if questType == "" {
		return true
	}
	switch strings.ToLower(questType) {
	case domain.QuestTypeDaily, domain.QuestTypeWeekly, domain.QuestTypeMonthly:
		return true
	}
	return false
}

// Custom validation function for the shop/reward item split
func validateItemType(fl validator.FieldLevel) bool {
	itemType := fl.Field().String()
	if itemType == "" {
		return true
	}
	return domain.ItemType(strings.ToLower(itemType)).Valid()
}
