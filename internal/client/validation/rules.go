// Package validation holds the sign-in form schema: a pure function from a
// Credentials candidate to per-field errors, plus the touched-field filter
// that decides which of those errors are shown.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/signin/internal/client/models"
)

// Field names a form field by its JSON key.
type Field string

const (
	FieldEmail    Field = "email"
	FieldPassword Field = "password"
)

// Fields lists the form fields in display order.
var Fields = []Field{FieldEmail, FieldPassword}

// Kind classifies a field error.
type Kind string

const (
	Required      Kind = "required"
	InvalidFormat Kind = "invalid_format"
	TooShort      Kind = "too_short"
)

// MinPasswordLength is the shortest accepted password, in characters.
const MinPasswordLength = 6

// FieldError is one failed rule on one field.
type FieldError struct {
	Kind    Kind
	Message string
}

var messages = map[Field]map[Kind]string{
	FieldEmail: {
		Required:      "Email is required",
		InvalidFormat: "Invalid email",
	},
	FieldPassword: {
		Required: "Password is required",
		TooShort: "Password must be at least 6 characters",
	},
}

// signInForm carries the rules as validator tags. required is listed first
// so an empty value reports Required only.
type signInForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Rules evaluates the sign-in schema. The zero value is not usable; build
// one with New. A Rules value is safe for concurrent use.
type Rules struct {
	validate *validator.Validate
}

// New returns Rules whose error fields are named by their JSON keys.
func New() *Rules {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Rules{validate: v}
}

// Validate checks c against the schema.
func (r *Rules) Validate(c models.Credentials) Result {
	res := Result{Errors: map[Field]FieldError{}}

	err := r.validate.Struct(signInForm{Email: c.Email, Password: c.Password})
	if err == nil {
		return res
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Only reachable with a broken schema; fail closed on every field.
		for _, f := range Fields {
			res.Errors[f] = newFieldError(f, Required)
		}
		return res
	}

	for _, fe := range verrs {
		f := Field(fe.Field())
		if _, seen := res.Errors[f]; seen {
			continue
		}
		res.Errors[f] = newFieldError(f, kindOf(fe.Tag()))
	}
	return res
}

func kindOf(tag string) Kind {
	switch tag {
	case "required":
		return Required
	case "min":
		return TooShort
	default:
		return InvalidFormat
	}
}

func newFieldError(f Field, k Kind) FieldError {
	msg, ok := messages[f][k]
	if !ok {
		msg = string(f) + " is invalid"
	}
	return FieldError{Kind: k, Message: msg}
}
