package apperror

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError converts validator.ValidationErrors into a single
// AppError that lists every violated rule.
func MapValidationError(err error) error {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return New(
			CodeInvalidInput,
			"Invalid input",
			http.StatusBadRequest,
		)
	}

	violations := make([]string, 0, len(errs))
	for _, e := range errs {
		field := formatFieldName(e.Field())
		switch e.Tag() {
		case "required":
			violations = append(violations, fmt.Sprintf("%s is required", field))
		default:
			violations = append(violations, fmt.Sprintf("%s is invalid", field))
		}
	}

	return NewValidation(violations)
}
