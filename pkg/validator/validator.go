// Package validator checks request payloads against their struct tags.
// Services call Check and treat any non-nil result as a validation
// failure; the returned error carries a single actionable message naming
// the first field that violated its rule.
package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// FieldError is one tag violation on a request payload.
type FieldError struct {
	Field string
	Rule  string
	Param string
}

func (e *FieldError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("field '%s' failed on rule '%s=%s'", e.Field, e.Rule, e.Param)
	}
	return fmt.Sprintf("field '%s' failed on rule '%s'", e.Field, e.Rule)
}

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()
	// "required" alone treats the zero UUID as present; uuid_required
	// rejects it, so ID fields on line items cannot default to nil.
	v.RegisterValidation("uuid_required", func(fl validator.FieldLevel) bool {
		id, ok := fl.Field().Interface().(uuid.UUID)
		return ok && id != uuid.Nil
	})
	return v
}

// Check validates data against its struct tags and returns the first
// violation as a *FieldError, or nil when the payload is valid.
func Check(data interface{}) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err
	}
	first := verrs[0]
	return &FieldError{
		Field: first.StructNamespace(),
		Rule:  first.Tag(),
		Param: first.Param(),
	}
}
