package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"

	apperrors "hr-payroll-backend/internal/errors"
	"hr-payroll-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"employee A123 not found"`
}

// statusFor maps an application error to its HTTP status
func statusFor(err error) int {
	switch {
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	case apperrors.IsAlreadyExists(err), apperrors.IsLeaderConflict(err):
		return http.StatusConflict
	case apperrors.IsHourCapExceeded(err):
		return http.StatusUnprocessableEntity
	case apperrors.IsValidation(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as {"error": msg}. Internal errors are logged and
// replaced by a generic message.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.FromGinContext(c).WithError(err).Error("request failed")
		c.JSON(status, ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

// bindJSON decodes the request body into req. An empty body decodes to the
// zero request so that the service can report the missing fields. Type
// mismatches become InvalidField errors naming the offending field.
func bindJSON(c *gin.Context, req interface{}) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}

	err := c.ShouldBindJSON(req)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return apperrors.NewInvalidFieldError(typeErr.Field, fmt.Sprintf("must be %s, got %s", typeName(typeErr), typeErr.Value))
	}
	return apperrors.NewInvalidFieldError("", "malformed JSON body")
}

func typeName(err *json.UnmarshalTypeError) string {
	switch err.Type.Kind() {
	case reflect.String:
		return "a string"
	case reflect.Int, reflect.Int64:
		return "an integer"
	case reflect.Float64:
		return "a number"
	default:
		return err.Type.String()
	}
}
