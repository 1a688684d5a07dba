package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jung/hannum/internal/numeral"
)

// Response status values
const (
	SuccessStatus = "success"
	ErrorStatus   = "error"
)

// Error codes returned in ErrorMessage.ErrCode
const (
	ErrcodeInvalidJSON    = "invalid_json"
	ErrcodeEmpty          = "empty"
	ErrcodeNotNumber      = "not_number"
	ErrcodeInvalidNumber  = "invalid_number"
	ErrcodeNotNumeral     = "not_numeral"
	ErrcodeTooLong        = "too_long"
	ErrcodeRequestTimeout = "request_timeout"
	ErrcodeUnknown        = "unknown"
)

var inputErrcodes = map[numeral.InputError]string{
	numeral.ErrEmptyInput:    ErrcodeEmpty,
	numeral.ErrNotNumber:     ErrcodeNotNumber,
	numeral.ErrInvalidNumber: ErrcodeInvalidNumber,
	numeral.ErrNotNumeral:    ErrcodeNotNumeral,
}

// Request is the standard request envelope
type Request[T any] struct {
	Data T `json:"data"`
}

// Response is the standard response envelope
type Response struct {
	Status   string         `json:"status"`
	Data     any            `json:"data"`
	Messages []ErrorMessage `json:"messages"`
}

// ErrorMessage describes one problem with a request
type ErrorMessage struct {
	ErrCode string   `json:"errcode"`
	Field   *string  `json:"field,omitempty"`
	Vals    []string `json:"vals,omitempty"`
}

// BuildErrorMessage creates an ErrorMessage. fieldName may be nil.
func BuildErrorMessage(errcode string, fieldName *string, vals ...string) ErrorMessage {
	return ErrorMessage{
		ErrCode: errcode,
		Field:   fieldName,
		Vals:    vals,
	}
}

// NewSuccessResponse wraps data in a success envelope
func NewSuccessResponse(data any) *Response {
	return &Response{Status: SuccessStatus, Data: data}
}

// NewErrorResponse wraps messages in an error envelope
func NewErrorResponse(messages ...ErrorMessage) *Response {
	return &Response{Status: ErrorStatus, Messages: messages}
}

// inputErrorMessage maps a resolver error to its error code. The
// user-facing message is passed as the single val.
func inputErrorMessage(err error, field string) ErrorMessage {
	var inputErr numeral.InputError
	if errors.As(err, &inputErr) {
		if code, ok := inputErrcodes[inputErr]; ok {
			return BuildErrorMessage(code, &field, inputErr.Error())
		}
	}
	return BuildErrorMessage(ErrcodeUnknown, &field, err.Error())
}

func sendSuccess(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewSuccessResponse(data))
}

func sendError(c *gin.Context, code int, messages ...ErrorMessage) {
	c.AbortWithStatusJSON(code, NewErrorResponse(messages...))
}
