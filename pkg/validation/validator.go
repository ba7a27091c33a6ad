package validation

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate

	// MaxClassNameLength bounds a configured node class name
	MaxClassNameLength = 256

	// Bare class names (K2Node_Knot) or script paths
	// (/Script/BlueprintGraph.K2Node_Knot).
	classPattern = regexp.MustCompile(`^/?[A-Za-z0-9_]+(/[A-Za-z0-9_]+)*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("classname", func(fl validator.FieldLevel) bool {
		return classPattern.MatchString(fl.Field().String())
	})
}

// Struct validates v against its `validate` struct tags.
func Struct(v any) error {
	if v == nil {
		return errors.New("value cannot be nil")
	}
	if err := validate.Struct(v); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// ValidateClassName checks a single node class name.
func ValidateClassName(name string) error {
	if name == "" {
		return errors.New("class name cannot be empty")
	}
	if len(name) > MaxClassNameLength {
		return fmt.Errorf("class name '%s' exceeds maximum length of %d characters", name, MaxClassNameLength)
	}
	if !classPattern.MatchString(name) {
		return fmt.Errorf("class name '%s' is invalid (expected Name or /Path/Package.Name)", name)
	}
	return nil
}

// ValidateClassList checks every name in a list and rejects duplicates.
func ValidateClassList(names []string) error {
	seen := make(map[string]struct{}, len(names))
	for i, name := range names {
		if err := ValidateClassName(name); err != nil {
			return fmt.Errorf("index %d: %w", i, err)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("index %d: duplicate class name '%s'", i, name)
		}
		seen[name] = struct{}{}
	}
	return nil
}

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	// Return the first validation error in a user-friendly format
	for _, e := range validationErrs {
		field := e.Field()
		param := e.Param()

		switch e.Tag() {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "min", "gte":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "max", "lte":
			return fmt.Errorf("%s: must not exceed %s", field, param)
		case "oneof":
			return fmt.Errorf("%s: must be one of [%s]", field, param)
		case "classname":
			return fmt.Errorf("%s: '%v' is not a valid class name", field, e.Value())
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, e.Tag())
		}
	}

	return err
}
