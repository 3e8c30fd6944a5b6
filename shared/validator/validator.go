package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"nyumba/shared/base64"
	"nyumba/shared/constant"
	"nyumba/shared/failure"
	"slices"
	"strconv"
	"strings"
	"time"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

func registerDateFormatValidation(field val.FieldLevel) bool {
	value, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	if value == "" {
		return true
	}

	_, err := time.Parse(constant.DateFormat, value)

	return err == nil
}

func registerMimetypeValidation(field val.FieldLevel) bool {
	str, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	contentType := base64.GetContentType(str)
	if contentType == "" {
		return false
	}

	allowedTypes := strings.Split(field.Param(), " ")

	return slices.Contains(allowedTypes, contentType)
}

func registerFileSizeValidation(field val.FieldLevel) bool {
	str, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	maxSizeMB, err := strconv.ParseFloat(field.Param(), 64)
	if err != nil {
		return false
	}

	bytesConversion := 1024.0
	maxSizeBytes := int(maxSizeMB * bytesConversion * bytesConversion)

	return len(str) <= maxSizeBytes
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	if err := validate.RegisterValidation("dateformat", registerDateFormatValidation); err != nil {
		panic(err)
	}

	if err := validate.RegisterValidation("mimetypes", registerMimetypeValidation); err != nil {
		panic(err)
	}

	if err := validate.RegisterValidation("maxfilesize", registerFileSizeValidation); err != nil {
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
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
