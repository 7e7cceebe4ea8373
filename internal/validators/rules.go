package validators

import (
	"errors"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
)

// phonePattern accepts +639171234567, 09171234567 and 9171234567.
var phonePattern = regexp.MustCompile(`^(\+639|09|9)\d{9}$`)

const passwordSpecials = "@$!%*?&#"

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

var (
	hasUpper   = regexp.MustCompile(`[A-Z]`)
	hasLower   = regexp.MustCompile(`[a-z]`)
	hasDigit   = regexp.MustCompile(`[0-9]`)
	hasSpecial = regexp.MustCompile(`[` + regexp.QuoteMeta(passwordSpecials) + `]`)
)

// strongPassword reports every missing password ingredient at once.
func strongPassword(value interface{}) error {
	password, _ := value.(string)
	if password == "" {
		return nil
	}

	var problems []string
	if len(password) < 8 {
		problems = append(problems, "must be at least 8 characters long")
	}
	if len(password) > maxPasswordBytes {
		problems = append(problems, "must be at most 72 bytes long")
	}
	if !hasUpper.MatchString(password) {
		problems = append(problems, "must contain at least one uppercase letter")
	}
	if !hasLower.MatchString(password) {
		problems = append(problems, "must contain at least one lowercase letter")
	}
	if !hasDigit.MatchString(password) {
		problems = append(problems, "must contain at least one number")
	}
	if !hasSpecial.MatchString(password) {
		problems = append(problems, "must contain at least one special character ("+passwordSpecials+")")
	}

	if len(problems) == 0 {
		return nil
	}
	return errors.New(strings.Join(problems, "; "))
}

// positive rejects zero and negative numbers. Nil pointers pass.
func positive(value interface{}) error {
	var ok bool
	switch v := value.(type) {
	case int:
		ok = v > 0
	case *int:
		ok = v == nil || *v > 0
	case int64:
		ok = v > 0
	case *int64:
		ok = v == nil || *v > 0
	case float64:
		ok = v > 0
	case *float64:
		ok = v == nil || *v > 0
	default:
		return nil
	}
	if !ok {
		return errors.New("must be a positive number")
	}
	return nil
}

// notNegative rejects negative numbers.
func notNegative(value interface{}) error {
	var ok bool
	switch v := value.(type) {
	case int:
		ok = v >= 0
	case float64:
		ok = v >= 0
	default:
		return nil
	}
	if !ok {
		return errors.New("must not be negative")
	}
	return nil
}

// positiveIDs rejects lists holding non-positive ids.
func positiveIDs(value interface{}) error {
	var ids []int64
	switch v := value.(type) {
	case []int64:
		ids = v
	case *[]int64:
		if v == nil {
			return nil
		}
		ids = *v
	}
	for _, id := range ids {
		if id <= 0 {
			return errors.New("must contain only positive ids")
		}
	}
	return nil
}

// notBlank rejects strings made only of whitespace. Nil pointers pass.
func notBlank(value interface{}) error {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case *string:
		if v == nil {
			return nil
		}
		s = *v
	default:
		return nil
	}
	if strings.TrimSpace(s) == "" {
		return errors.New("cannot be blank")
	}
	return nil
}

func in[T any](values []T) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// onlyFields narrows err to the given JSON field names.
func onlyFields(err error, fields []string) error {
	if err == nil || len(fields) == 0 {
		return err
	}

	var errs validation.Errors
	if !errors.As(err, &errs) {
		return err
	}

	kept := validation.Errors{}
	for _, field := range fields {
		if fieldErr, ok := errs[field]; ok {
			kept[field] = fieldErr
		}
	}
	if len(kept) == 0 {
		return nil
	}
	return kept
}
