package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// LogLevels and LogFormats list the accepted spellings, case-insensitive.
var (
	LogLevels  = []string{"trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled"}
	LogFormats = []string{"console", "text", "json"}
)

var configValidator = sync.OnceValue(func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("loglevel", oneOfFold(LogLevels))
	_ = v.RegisterValidation("logformat", oneOfFold(LogFormats))
	return v
})

func oneOfFold(allowed []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return slices.Contains(allowed, strings.ToLower(fl.Field().String()))
	}
}

// ValidateConfig checks every section of cfg and reports all violations
// at once.
func ValidateConfig(cfg *GlobalConfig) error {
	err := configValidator().Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("configuration validation error: %w", err)
	}

	problems := make([]string, len(fieldErrs))
	for i, fe := range fieldErrs {
		problems[i] = describeFieldError(fe)
	}
	return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(problems, "\n  "))
}

func describeFieldError(fe validator.FieldError) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: rule '%s'", fe.Namespace(), fe.Tag())
	if fe.Param() != "" {
		fmt.Fprintf(&b, " (expected: %s)", fe.Param())
	}
	fmt.Fprintf(&b, ", got '%v'", fe.Value())
	return b.String()
}
