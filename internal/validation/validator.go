// Package validation checks inbound payloads against the schemas declared as
// struct tags on the request types in internal/model. It is purely
// structural: nothing here touches the store.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"

	"job_board/internal/apperr"

	"github.com/go-playground/validator/v10"
)

// TagName is the struct tag holding validation rules, matching gin's binding tag.
const TagName = "binding"

const dateLayout = "2006-01-02"

// maxPasswordBytes is bcrypt's input limit. It counts bytes, not runes.
const maxPasswordBytes = 72

// Validator validates request payloads and reports every violated constraint.
type Validator struct {
	validate *validator.Validate
}

// New builds a Validator with the project's custom rules registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName(TagName)
	v.RegisterTagNameFunc(jsonFieldName)

	// Registration of built-in names cannot fail; only invalid tags error here.
	_ = v.RegisterValidation("mobile", isMobile)
	_ = v.RegisterValidation("isodate", isISODate)
	_ = v.RegisterValidation("bcryptlen", isBcryptLength)

	return &Validator{validate: v}
}

// Struct validates payload. It returns nil, or one ValidationFailed error listing
// every violation.
func (v *Validator) Struct(payload any) error {
	err := v.validate.Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validating payload: %w", err)
	}

	violations := make([]apperr.FieldViolation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, apperr.FieldViolation{
			Field:   fieldPath(fe),
			Message: messageFor(fe),
		})
	}
	return apperr.Validation(violations)
}

// Decode strictly decodes a JSON body into dst. Syntax errors, type mismatches
// and unknown fields are reported as ValidationFailed.
func (v *Validator) Decode(r io.Reader, dst any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err == nil {
		if dec.More() {
			return invalidBody("body", "body must contain a single JSON object")
		}
		return nil
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		return invalidBody("body", "request body is required")
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return invalidBody("body", "request body must be valid JSON")
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return invalidBody(field, fmt.Sprintf("%s must be of type %s", field, jsonType(typeErr.Type)))
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		field := strings.Trim(strings.TrimPrefix(err.Error(), "json: unknown field "), `"`)
		return invalidBody(field, field+" is not allowed")
	default:
		return invalidBody("body", "request body could not be decoded")
	}
}

// ParseISODate parses a YYYY-MM-DD date or an RFC 3339 timestamp.
func ParseISODate(value string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

func invalidBody(field, message string) error {
	return apperr.Validation([]apperr.FieldViolation{{Field: field, Message: message}})
}

func isMobile(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) != 10 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isBcryptLength(fl validator.FieldLevel) bool {
	return len(fl.Field().String()) <= maxPasswordBytes
}

func isISODate(fl validator.FieldLevel) bool {
	_, err := ParseISODate(fl.Field().String())
	return err == nil
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// fieldPath drops the top-level struct name from the namespace so nested and
// array elements read as "technicalSkills[1]".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fe.Field()
}

func messageFor(fe validator.FieldError) string {
	field := fieldPath(fe)
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "mobile":
		return field + " must be a valid 10-digit number"
	case "email|mobile":
		return field + " must be a valid email or 10-digit mobile number"
	case "isodate":
		return field + " must be a valid date (YYYY-MM-DD)"
	case "uuid4":
		return field + " must be a valid id"
	case "oneof":
		return field + " must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain at least %s items", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain at most %s items", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
	case "bcryptlen":
		return fmt.Sprintf("%s must be at most %d bytes long", field, maxPasswordBytes)
	case "nefield":
		return fmt.Sprintf("%s must be different from %s", field, lowerFirst(fe.Param()))
	default:
		return field + " is invalid"
	}
}

func jsonType(t reflect.Type) string {
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Bool:
		return "boolean"
	case reflect.Struct, reflect.Map:
		return "object"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	default:
		return t.String()
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
