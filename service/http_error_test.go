package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorContext(method string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, "/heartbeat", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeErrResponse(t *testing.T, rec *httptest.ResponseRecorder) *MyError {
	t.Helper()
	var body ErrResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.NotNil(t, body.Error)
	return body.Error
}

func TestNewErrorCodeToStatusCodeMaps(t *testing.T) {
	m := NewErrorCodeToStatusCodeMaps()
	assert.Equal(t, http.StatusBadRequest, m[ErrBadParameter])
	assert.Equal(t, http.StatusNotFound, m[ErrEntityNotFound])
	assert.Equal(t, http.StatusInternalServerError, m[ErrInternalServerError])
}

func TestHTTPErrorHandler_Handler(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedErr  string
	}{
		{
			name:         "bad parameter",
			err:          NewBadParameterError("serviceId is required", nil),
			expectedCode: http.StatusBadRequest,
			expectedErr:  ErrBadParameter,
		},
		{
			name:         "not found",
			err:          NewServiceNotFoundError("svc-1"),
			expectedCode: http.StatusNotFound,
			expectedErr:  ErrEntityNotFound,
		},
		{
			name:         "plain error is internal",
			err:          assert.AnError,
			expectedCode: http.StatusInternalServerError,
			expectedErr:  ErrInternalServerError,
		},
		{
			name:         "echo not found route",
			err:          echo.ErrNotFound,
			expectedCode: http.StatusNotFound,
			expectedErr:  ErrEntityNotFound,
		},
		{
			name:         "echo method not allowed",
			err:          echo.ErrMethodNotAllowed,
			expectedCode: http.StatusMethodNotAllowed,
			expectedErr:  ErrBadParameter,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newErrorContext(http.MethodPost)
			NewHTTPErrorHandler(NewErrorCodeToStatusCodeMaps(), log.NewNopLogger()).Handler(tt.err, c)

			assert.Equal(t, tt.expectedCode, rec.Code)
			body := decodeErrResponse(t, rec)
			assert.Equal(t, tt.expectedErr, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestHTTPErrorHandler_Handler_RequestErrorIsBadParameter(t *testing.T) {
	c, rec := newErrorContext(http.MethodPost)
	he := echo.NewHTTPError(http.StatusBadRequest, "request body has an error")
	he.Internal = &openapi3filter.RequestError{Err: assert.AnError}

	NewHTTPErrorHandler(NewErrorCodeToStatusCodeMaps(), log.NewNopLogger()).Handler(he, c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeErrResponse(t, rec)
	assert.Equal(t, ErrBadParameter, body.Code)
	assert.Equal(t, "request body has an error", body.Message)
}

func TestHTTPErrorHandler_Handler_HeadHasNoBody(t *testing.T) {
	c, rec := newErrorContext(http.MethodHead)
	NewHTTPErrorHandler(NewErrorCodeToStatusCodeMaps(), log.NewNopLogger()).Handler(echo.ErrNotFound, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.Bytes())
}

func TestRegisterErrorHandler(t *testing.T) {
	e := echo.New()
	RegisterErrorHandler(e, log.NewNopLogger())
	require.NotNil(t, e.HTTPErrorHandler)
}
