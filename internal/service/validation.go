package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	apperrors "hr-payroll-backend/internal/errors"
	"hr-payroll-backend/internal/logger"
	"hr-payroll-backend/internal/metrics"

	"github.com/go-playground/validator/v10"
)

// NewValidator creates a validator that reports fields by their JSON names
func NewValidator() *validator.Validate {
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

// validate runs struct constraints and converts the first failure into an InvalidField error
func validate(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperrors.NewInvalidFieldError(fe.Field(), describe(fe))
	}
	return apperrors.NewInvalidFieldError("", err.Error())
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed on '%s' validation", fe.Tag())
	}
}

// required reports a MissingField error when a write request omits field
func required[T any](value *T, field string) error {
	if value == nil {
		return apperrors.NewMissingFieldError(field)
	}
	return nil
}

// recordWrite counts and logs the outcome of a write transaction
func recordWrite(ctx context.Context, entity, op string, start time.Time, err error, fields map[string]interface{}) {
	metrics.ObserveWrite(entity, op, start, err)

	log := logger.WithContext(ctx).WithFields(fields).WithFields(map[string]interface{}{
		"entity": entity,
		"op":     op,
	})
	switch reason := metrics.Reason(err); reason {
	case "":
		log.Info("write committed")
	case "internal":
		log.WithError(err).Error("write failed")
	default:
		log.WithError(err).WithField("reason", reason).Warn("write rejected")
	}
}
