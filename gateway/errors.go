package gateway

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"

	"github.com/chinmay1088/odyssey-gateway/api"
	"github.com/chinmay1088/odyssey-gateway/builder"
	"github.com/chinmay1088/odyssey-gateway/platform"
	"github.com/chinmay1088/odyssey-gateway/util"
)

// generic messages for faults whose cause stays in the log
const (
	messageProviderUnavailable = "provider request failed"
	messageInternal            = "internal server error"
	messageNotFound            = "not found"
)

// HTTPError is an error rendered as {"message": ...}
type HTTPError struct {
	Code     *int64  `json:"-"`
	Message  *string `json:"message"`
	Internal error   `json:"-"`
}

// NewHTTPError creates an HTTPError
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code:    swag.Int64(int64(code)),
		Message: swag.String(message),
	}
}

func (e *HTTPError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("HTTPError %d: %s, %v", swag.Int64Value(e.Code), swag.StringValue(e.Message), e.Internal)
	}
	return fmt.Sprintf("HTTPError %d: %s", swag.Int64Value(e.Code), swag.StringValue(e.Message))
}

// badRequest is a 400 for caller input the handler itself rejects
func badRequest(format string, args ...interface{}) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, fmt.Sprintf(format, args...))
}

// httpErrorHandler is the single place errors become responses. Provider
// errors keep the provider's status and body.
func (s *Server) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	log := util.LogFromContext(c.Request().Context())

	var (
		providerErr   *api.ProviderError
		transportErr  *api.TransportError
		validationErr *builder.ValidationError
		httpErr       *HTTPError
		echoErr       *echo.HTTPError
	)

	switch {
	case errors.As(err, &providerErr):
		log.Debug().Err(err).Int("status", providerErr.StatusCode).Msg("Passing provider error through")
		if werr := c.JSONBlob(providerErr.StatusCode, providerErr.Body); werr != nil {
			log.Error().Err(werr).Msg("Failed to write provider error")
		}
		return

	case errors.As(err, &validationErr):
		httpErr = NewHTTPError(http.StatusBadRequest, validationErr.Message)

	case errors.Is(err, platform.ErrUnsupportedPlatform):
		httpErr = NewHTTPError(http.StatusBadRequest, err.Error())

	case errors.As(err, &transportErr):
		log.Error().Err(err).Str("op", transportErr.Op).Msg("Provider transport failure")
		httpErr = NewHTTPError(http.StatusInternalServerError, messageProviderUnavailable)

	case errors.As(err, &httpErr):
		// already shaped by the handler

	case errors.As(err, &echoErr):
		httpErr = fromEcho(echoErr)

	default:
		log.Error().Err(err).Msg("Unhandled error")
		httpErr = NewHTTPError(http.StatusInternalServerError, messageInternal)
	}

	code := int(swag.Int64Value(httpErr.Code))
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, httpErr)
	}
	if err != nil {
		log.Error().Err(err).Msg("Failed to write error response")
	}
}

func fromEcho(e *echo.HTTPError) *HTTPError {
	if e.Code == http.StatusNotFound {
		return NewHTTPError(http.StatusNotFound, messageNotFound)
	}
	if msg, ok := e.Message.(string); ok && msg != "" {
		return NewHTTPError(e.Code, msg)
	}
	return NewHTTPError(e.Code, http.StatusText(e.Code))
}
