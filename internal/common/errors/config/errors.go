package configErrors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ReadConfigError struct {
	ConfigName string
	Err        error
}

func (e *ReadConfigError) Error() string {
	return fmt.Sprintf("failed to read %s config: %s", e.ConfigName, e.Err.Error())
}

func (e *ReadConfigError) Unwrap() error {
	return e.Err
}

type UnmarshalError struct {
	ConfigName string
	Err        error
}

func (e *UnmarshalError) Error() string {
	return fmt.Sprintf("unable to decode into struct in %s config, error: %s", e.ConfigName, e.Err.Error())
}

func (e *UnmarshalError) Unwrap() error {
	return e.Err
}

type ValidationError struct {
	ConfigName string
	Err        error
}

// Fields returns "<field>: <tag>" for every failed validation rule.
func (e *ValidationError) Fields() []string {
	var validationErrs validator.ValidationErrors
	if !errors.As(e.Err, &validationErrs) {
		return nil
	}

	fields := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fields = append(fields, fmt.Sprintf("%s: %s", fe.Namespace(), fe.Tag()))
	}

	return fields
}

func (e *ValidationError) Error() string {
	if fields := e.Fields(); len(fields) > 0 {
		return fmt.Sprintf("failed to validate %s config: %s", e.ConfigName, strings.Join(fields, ", "))
	}

	return fmt.Sprintf("failed to validate %s config: %s", e.ConfigName, e.Err.Error())
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
