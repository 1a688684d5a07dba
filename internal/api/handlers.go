package api

import (
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/remiges-tech/logharbour/logharbour"

	"github.com/jung/hannum/internal/numeral"
)

// Operation labels used for metrics and logs
const (
	opFormat  = "format"
	opParse   = "parse"
	opConvert = "convert"
)

// FormatRequest is the data of POST /api/v1/format
type FormatRequest struct {
	Value string `json:"value" validate:"required,numshape"`
}

// ParseRequest is the data of POST /api/v1/parse
type ParseRequest struct {
	Text string `json:"text" validate:"required"`
}

// FormatResponse is every representation of Value
type FormatResponse struct {
	Value float64 `json:"value"`
	numeral.Formats
}

// ConversionResponse is the result of reading text as a number
type ConversionResponse struct {
	Value   float64         `json:"value"`
	Formats numeral.Formats `json:"formats"`
}

type handler struct {
	maxInputLength int
	metrics        *Metrics
	logger         *logharbour.Logger
}

// tooLong rejects inputs over the configured rune count
func (h *handler) tooLong(c *gin.Context, field, s string) bool {
	if h.maxInputLength <= 0 || utf8.RuneCountInString(s) <= h.maxInputLength {
		return false
	}
	sendError(c, http.StatusBadRequest,
		BuildErrorMessage(ErrcodeTooLong, &field, strconv.Itoa(h.maxInputLength)))
	return true
}

func (h *handler) format(c *gin.Context) {
	req, ok := bindRequest[FormatRequest](c)
	if !ok || expired(c) || h.tooLong(c, "value", req.Value) {
		return
	}

	v, err := strconv.ParseFloat(req.Value, 64)
	if err != nil {
		h.metrics.ObserveConversion(opFormat, err)
		sendError(c, http.StatusBadRequest, inputErrorMessage(numeral.ErrInvalidNumber, "value"))
		return
	}

	h.metrics.ObserveConversion(opFormat, nil)
	sendSuccess(c, FormatResponse{Value: v, Formats: numeral.Format(v)})
}

func (h *handler) parse(c *gin.Context) {
	req, ok := bindRequest[ParseRequest](c)
	if !ok || expired(c) || h.tooLong(c, "text", req.Text) {
		return
	}

	v, ok := numeral.Parse(req.Text)
	if !ok {
		h.metrics.ObserveConversion(opParse, numeral.ErrNotNumeral)
		h.logger.Debug0().LogActivity("Text not readable as a numeral", map[string]any{"text": req.Text})
		sendError(c, http.StatusBadRequest, inputErrorMessage(numeral.ErrNotNumeral, "text"))
		return
	}

	h.metrics.ObserveConversion(opParse, nil)
	sendSuccess(c, ConversionResponse{Value: v, Formats: numeral.Format(v)})
}

func (h *handler) convert(c *gin.Context) {
	q := c.Query("q")
	if expired(c) || h.tooLong(c, "q", q) {
		return
	}

	v, err := numeral.Resolve(q)
	h.metrics.ObserveConversion(opConvert, err)
	if err != nil {
		sendError(c, http.StatusBadRequest, inputErrorMessage(err, "q"))
		return
	}

	sendSuccess(c, ConversionResponse{Value: v, Formats: numeral.Format(v)})
}
