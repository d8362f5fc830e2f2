package models

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// inputFields are the exact json keys of FoodInput.
var inputFields = jsonFieldNames(reflect.TypeOf(FoodInput{}))

func jsonFieldNames(t reflect.Type) []string {
	names := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if name := strings.SplitN(t.Field(i).Tag.Get("json"), ",", 2)[0]; name != "" && name != "-" {
			names = append(names, name)
		}
	}
	return names
}

// ParseFood decodes a create or update body and validates it. The body must
// be a single JSON object. Keys are matched exactly, so "NAME" does not fill
// name. Unknown keys, including a client supplied id, are ignored.
func ParseFood(body io.Reader) (Food, error) {
	dec := json.NewDecoder(body)
	var raw map[string]json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return Food{}, decodeError(err)
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); err != io.EOF {
		return Food{}, &ValidationError{
			Fields: []FieldError{{Field: "body", Message: "unexpected data after JSON object"}},
			Cause:  err,
		}
	}

	exact := make(map[string]json.RawMessage, len(inputFields))
	for _, name := range inputFields {
		if v, ok := raw[name]; ok {
			exact[name] = v
		}
	}
	b, err := json.Marshal(exact)
	if err != nil {
		return Food{}, &ValidationError{Cause: err}
	}

	var input FoodInput
	if err := json.Unmarshal(b, &input); err != nil {
		return Food{}, decodeError(err)
	}
	if err := ValidateFood(input); err != nil {
		return Food{}, err
	}
	return input.Food(), nil
}

// ValidateFood checks the field rules of a decoded body.
func ValidateFood(input FoodInput) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &ValidationError{Cause: err}
	}
	out := &ValidationError{}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   fe.Field(),
			Message: tagMessage(fe.Tag()),
		})
	}
	return out
}

func tagMessage(tag string) string {
	switch tag {
	case "required":
		return "field required"
	case "min":
		return "must not be empty"
	default:
		return "failed " + tag + " check"
	}
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return &ValidationError{
			Fields: []FieldError{{Field: field, Message: "expected " + expectedShape(typeErr.Type)}},
			Cause:  err,
		}
	}
	if errors.Is(err, io.EOF) {
		return &ValidationError{
			Fields: []FieldError{{Field: "body", Message: "field required"}},
			Cause:  err,
		}
	}
	return &ValidationError{Cause: err}
}

func expectedShape(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Slice:
		return "array of " + expectedShape(t.Elem())
	case reflect.Struct, reflect.Map:
		return "object"
	default:
		return t.Kind().String()
	}
}
