package entity

import (
	"reflect"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var (
	validatorOnce   sync.Once
	recordValidator *validator.Validate
)

// Validator returns the shared validator with record rules registered.
func Validator() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
		v.RegisterStructValidation(validateTask, Task{})
		recordValidator = v
	})

	return recordValidator
}

// Validate checks the invariants a record must satisfy before it is stored.
func Validate(rec Record) error {
	if err := Validator().Struct(rec); err != nil {
		return errors.Wrapf(err, "invalid %s", rec.Kind())
	}

	return nil
}

func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()

		return f
	}

	return nil
}

func validateTask(sl validator.StructLevel) {
	task, _ := sl.Current().Interface().(Task)
	if !task.Consistent() {
		sl.ReportError(task.CompletedAt, "CompletedAt", "completedAt", "completedstatus", task.Status)
	}
}
