package httperr

import (
	"errors"
	"log/slog"
	"net/http"

	"coworking-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	codeInvalidRequest = "INVALID_REQUEST"
	codeInternal       = "INTERNAL_ERROR"
	internalMessage    = "Internal server error"
	stackLogLines      = 20
)

type Body struct {
	Kind    string `json:"kind,omitempty"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

type Response struct {
	Status int  `json:"-"`
	Error  Body `json:"error"`
	Detail any  `json:"detail,omitempty"`
}

type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// AbortWithError keeps err on the gin context so the logging middleware can report it.
func AbortWithError(c *gin.Context, status int, err error, body Body, detail any) {
	if err == nil {
		err = errors.New(body.Message)
	}

	resp := Response{Status: status, Error: body, Detail: detail}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// FromError answers with the status matching err's category. Uncategorized errors become
// an opaque 500.
func FromError(c *gin.Context, err error) {
	e, ok := errs.As(err)
	if !ok || e.Kind() == errs.KindInternal {
		slog.ErrorContext(c.Request.Context(), "request failed",
			slog.String("path", c.Request.URL.Path),
			slog.String("error", err.Error()),
			slog.Any("stack", errs.ExtractStackLines(err, stackLogLines)))
		AbortWithError(c, http.StatusInternalServerError, err, Body{
			Kind:    string(errs.KindInternal),
			Code:    codeInternal,
			Message: internalMessage,
		}, nil)
		return
	}

	if e.Retryable() {
		c.Header("Retry-After", "1")
	}
	AbortWithError(c, StatusOf(e.Kind()), err, Body{
		Kind:    string(e.Kind()),
		Code:    e.Code(),
		Message: e.Message(),
	}, nil)
}

// BindError answers a request that failed gin binding with 400 and the offending fields.
func BindError(c *gin.Context, err error) {
	var detail any
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, FieldError{Field: fe.Namespace(), Rule: fe.Tag()})
		}
		detail = fields
	}

	AbortWithError(c, http.StatusBadRequest, err, Body{
		Kind:    string(errs.KindValidation),
		Code:    codeInvalidRequest,
		Message: "Invalid request",
	}, detail)
}

func StatusOf(kind errs.Kind) int {
	switch kind {
	case errs.KindValidation:
		return http.StatusUnprocessableEntity
	case errs.KindConflict:
		return http.StatusConflict
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindAuthorization:
		return http.StatusForbidden
	case errs.KindConcurrency:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
