package validate

import (
	"errors"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

const maxSafeLength = 120

// unsafeFragments are substrings rejected by the "safe" tag: markup, quoting
// and SQL comment/terminator sequences.
var unsafeFragments = []string{"<", ">", "\"", "'", "`", ";", "\\", "--", "/*", "*/", "{", "}", "$("}

// Validator wraps go-playground/validator with the project's custom tags.
type Validator struct {
	v *validator.Validate
}

// New builds a Validator with the "safe" tag registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("safe", func(fl validator.FieldLevel) bool {
		return IsSafe(fl.Field().String())
	})
	return &Validator{v: v}
}

// Struct validates s and returns the failing fields keyed by JSON-ish name.
func (v *Validator) Struct(s any) (map[string]any, bool) {
	err := v.v.Struct(s)
	if err == nil {
		return nil, true
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return map[string]any{"_": err.Error()}, false
	}
	details := make(map[string]any, len(fieldErrs))
	for _, fe := range fieldErrs {
		details[lowerFirst(fe.Field())] = fe.Tag()
	}
	return details, false
}

// IsSafe reports whether s is a non-blank, printable string of bounded
// length that contains none of the unsafe fragments.
func IsSafe(s string) bool {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || len([]rune(trimmed)) > maxSafeLength {
		return false
	}
	for _, r := range trimmed {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	for _, frag := range unsafeFragments {
		if strings.Contains(trimmed, frag) {
			return false
		}
	}
	return true
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
