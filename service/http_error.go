package service

import (
	"errors"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

// RegisterErrorHandler installs the registry error handler on e.
func RegisterErrorHandler(e *echo.Echo, logger log.Logger) {
	e.HTTPErrorHandler = NewHTTPErrorHandler(NewErrorCodeToStatusCodeMaps(), logger).Handler
}

// NewErrorCodeToStatusCodeMaps returns the MyError code -> HTTP status mapping.
func NewErrorCodeToStatusCodeMaps() map[string]int {
	return map[string]int{
		ErrBadParameter:        http.StatusBadRequest,
		ErrEntityNotFound:      http.StatusNotFound,
		ErrInternalServerError: http.StatusInternalServerError,
	}
}

// HTTPErrorHandler writes handler and middleware errors as {"error":{"code","message"}}.
type HTTPErrorHandler struct {
	statusByCode map[string]int
	logger       log.Logger
}

func NewHTTPErrorHandler(statusByCode map[string]int, logger log.Logger) *HTTPErrorHandler {
	return &HTTPErrorHandler{
		statusByCode: statusByCode,
		logger:       log.WithPrefix(logger, "component", "HTTPErrorHandler"),
	}
}

// Handler is an echo.HTTPErrorHandler.
func (h *HTTPErrorHandler) Handler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	myErr, status := h.classify(err)

	logger := level.Warn(h.logger)
	if status >= http.StatusInternalServerError {
		logger = level.Error(h.logger)
	}
	logger.Log(
		"msg", "HTTP request error",
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
		"status", status,
		"code", myErr.Code,
		"err", err,
	)

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, ErrResponse{Error: myErr})
}

// classify maps err to the envelope error and status. echo.HTTPError keeps its own status;
// everything else goes through statusByCode, with uncoded errors reported as internal.
func (h *HTTPErrorHandler) classify(err error) (*MyError, int) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return fromEchoHTTPError(he, err), he.Code
	}

	myErr := ToMyError(err)
	if myErr == nil {
		myErr = NewMyError(ErrInternalServerError, "an internal server error has occurred", err)
	}
	if status, ok := h.statusByCode[myErr.Code]; ok {
		return myErr, status
	}
	return myErr, http.StatusInternalServerError
}

// fromEchoHTTPError covers routing errors (404, 405) and the OpenAPI validator's 400s.
func fromEchoHTTPError(he *echo.HTTPError, err error) *MyError {
	code := ErrInternalServerError
	switch {
	case he.Code == http.StatusNotFound:
		code = ErrEntityNotFound
	case he.Code >= 400 && he.Code < 500:
		code = ErrBadParameter
	}
	var requestErr *openapi3filter.RequestError
	if errors.As(he.Internal, &requestErr) {
		code = ErrBadParameter
	}

	message, _ := he.Message.(string)
	if message == "" {
		message = http.StatusText(he.Code)
	}
	return NewMyError(code, message, err)
}

// ErrResponse is the JSON error envelope.
type ErrResponse struct {
	Error *MyError `json:"error,omitempty"`
}
