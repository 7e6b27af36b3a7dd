package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var errInvalidRequestBody = errors.New("invalid request body")

// invalidFieldError names a request field whose value has the wrong type.
type invalidFieldError struct {
	field string
}

func (e invalidFieldError) Error() string {
	return "invalid field: " + e.field
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func newAPIError(code int, message string) apiError {
	return apiError{
		Code:    code,
		Message: message,
	}
}

func (e apiError) Error() string {
	return e.Message
}

func abort(c *gin.Context, err apiError) {
	c.AbortWithStatusJSON(err.Code, gin.H{"error": err.Message})
}

func newStatusTextError(status int) apiError {
	return newAPIError(status, http.StatusText(status))
}

func newBadRequestError(message string) apiError {
	return newAPIError(http.StatusBadRequest, message)
}

// newBindError turns a JSON binding failure into a client error naming the offending field.
func newBindError(err error) apiError {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		return newBadRequestError("missing field: " + strings.ToLower(validationErrs[0].Field()))
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return newBadRequestError("invalid field: " + typeErr.Field)
	}

	var fieldErr invalidFieldError
	if errors.As(err, &fieldErr) {
		return newBadRequestError(fieldErr.Error())
	}

	return newBadRequestError(errInvalidRequestBody.Error())
}
