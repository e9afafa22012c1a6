package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"reflect"
	"strings"

	"floorplan/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

func registerFiniteValidation(field val.FieldLevel) bool {
	switch field.Field().Kind() {
	case reflect.Float32, reflect.Float64:
		v := field.Field().Float()

		return !math.IsNaN(v) && !math.IsInf(v, 0)
	default:
		return true
	}
}

func registerNotBlankValidation(field val.FieldLevel) bool {
	if field.Field().Kind() != reflect.String {
		return false
	}

	return strings.TrimSpace(field.Field().String()) != ""
}

// jsonName reports fields by their wire name so callers can map failures back to inputs.
func jsonName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}

	if name == "" {
		return field.Name
	}

	return name
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonName)

	err := validate.RegisterValidation("finite", registerFiniteValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("notblank", registerNotBlankValidation)
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		field, msg := message(err)

		return failure.InvalidField(field, msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		_, msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
