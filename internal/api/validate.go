package api

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/jung/hannum/internal/numeral"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// numshape accepts an optional minus sign, digits and at most one point
	_ = v.RegisterValidation("numshape", func(fl validator.FieldLevel) bool {
		return numeral.IsValidNumber(fl.Field().String())
	})

	return v
}

// validateStruct runs the struct tag rules on data and converts failures
// into error messages, one per field. The failing tag is the error code.
func validateStruct(data any) []ErrorMessage {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []ErrorMessage{BuildErrorMessage(ErrcodeUnknown, nil, err.Error())}
	}

	messages := make([]ErrorMessage, 0, len(validationErrs))
	for _, fe := range validationErrs {
		field := fe.Field()
		var vals []string
		if s, ok := fe.Value().(string); ok && s != "" {
			vals = append(vals, s)
		}
		messages = append(messages, BuildErrorMessage(fe.Tag(), &field, vals...))
	}
	return messages
}

// bindRequest decodes the request envelope into T and validates it. On
// failure the error response has already been written.
func bindRequest[T any](c *gin.Context) (T, bool) {
	var req Request[T]
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, BuildErrorMessage(ErrcodeInvalidJSON, nil))
		return req.Data, false
	}
	if messages := validateStruct(req.Data); len(messages) > 0 {
		sendError(c, http.StatusBadRequest, messages...)
		return req.Data, false
	}
	return req.Data, true
}
