// Package validator adapts go-playground/validator to echo and renders its failures as
// domain validation errors.
package validator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

const (
	tagJSONNumberArray = "jsonnumarray"
	tagGTEFieldOpt     = "gtefieldopt"

	numberArraySchemaURL = "number-array.json"
	numberArraySchema    = `{"type": "array", "items": {"type": "number"}}`
)

// CustomValidator implements echo.Validator
type CustomValidator struct {
	validate    *validator.Validate
	numberArray *jsonschema.Schema
}

// New creates the request validator with the storefront's custom rules registered.
func New() (*CustomValidator, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(numberArraySchemaURL, strings.NewReader(numberArraySchema)); err != nil {
		return nil, errors.Wrap(err, "failed to add number array schema")
	}
	schema, err := compiler.Compile(numberArraySchemaURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compile number array schema")
	}

	cv := &CustomValidator{
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		numberArray: schema,
	}

	cv.validate.RegisterTagNameFunc(fieldName)

	if err := cv.validate.RegisterValidation(tagJSONNumberArray, cv.isJSONNumberArray); err != nil {
		return nil, errors.Wrapf(err, "failed to register %s", tagJSONNumberArray)
	}
	if err := cv.validate.RegisterValidation(tagGTEFieldOpt, isGTEFieldWhenPresent); err != nil {
		return nil, errors.Wrapf(err, "failed to register %s", tagGTEFieldOpt)
	}

	return cv, nil
}

// Validate checks i and returns a *domainerrors.ValidationError listing every violation.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "failed to validate request")
	}

	violations := make([]domainerrors.FieldViolation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, domainerrors.FieldViolation{
			Path:    fe.Field(),
			Message: message(fe),
		})
	}

	return domainerrors.NewValidationError(violations...)
}

// fieldName reports fields by their wire name: query, then path param, then JSON.
func fieldName(field reflect.StructField) string {
	for _, tag := range []string{"query", "param", "json"} {
		name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}

	return field.Name
}

// isJSONNumberArray accepts text that parses as a JSON array whose items are all numbers.
func (cv *CustomValidator) isJSONNumberArray(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(fl.Field().String())))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return false
	}
	// Trailing content such as "[1] [2]" is not one array.
	if dec.More() {
		return false
	}

	return cv.numberArray.Validate(v) == nil
}

// isGTEFieldWhenPresent is gtefield for optional numbers: it only fails when both this
// field and the named sibling are set and this one is smaller.
func isGTEFieldWhenPresent(fl validator.FieldLevel) bool {
	parent := reflect.Indirect(fl.Parent())
	other := parent.FieldByName(fl.Param())
	if !other.IsValid() {
		return false
	}

	if other.Kind() == reflect.Ptr {
		if other.IsNil() {
			return true
		}
		other = other.Elem()
	}

	field := fl.Field()

	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		return field.Float() >= other.Float()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return field.Int() >= other.Int()
	default:
		return false
	}
}

// message renders a violation the way API clients already expect.
func message(fe validator.FieldError) string {
	numeric := isNumericKind(fe.Kind())

	switch fe.Tag() {
	case "gt":
		if numeric {
			return "Number must be greater than " + fe.Param()
		}
	case "min":
		if numeric {
			return "Number must be greater than or equal to " + fe.Param()
		}

		return fmt.Sprintf("String must contain at least %s character(s)", fe.Param())
	case "max":
		if numeric {
			return "Number must be less than or equal to " + fe.Param()
		}

		return fmt.Sprintf("String must contain at most %s character(s)", fe.Param())
	case "oneof":
		options := strings.Fields(fe.Param())
		for i, o := range options {
			options[i] = "'" + o + "'"
		}

		return fmt.Sprintf("Invalid enum value. Expected %s, received '%v'", strings.Join(options, " | "), fe.Value())
	case tagJSONNumberArray:
		return "Must be a JSON array of numbers"
	case tagGTEFieldOpt:
		return fmt.Sprintf("%s must be greater than or equal to %s", fe.Field(), lowerFirst(fe.Param()))
	}

	return fmt.Sprintf("Failed on the '%s' rule", fe.Tag())
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}

	return strings.ToLower(s[:1]) + s[1:]
}
