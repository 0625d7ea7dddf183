package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/identity-service/internal/api/handler"
	"github.com/99minutos/identity-service/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps user error kinds to their HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope with timestamp, status, error, message and path.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		resp := resolveError(err, log, c)
		resp.Timestamp = time.Now().UTC()
		resp.Error = http.StatusText(resp.Status)
		resp.Path = c.Request().URL.Path

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(resp.Status)
			return
		}
		_ = c.JSON(resp.Status, resp)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) handler.ErrorResponse {
	// Echo's own errors (bind failures, 404 from router, auth, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return handler.ErrorResponse{Status: he.Code, Message: fmt.Sprintf("%v", he.Message)}
	}

	var ve *handler.ValidationError
	if errors.As(err, &ve) {
		return handler.ErrorResponse{
			Status:  http.StatusBadRequest,
			Message: "Validation failed",
			Fields:  ve.Fields,
		}
	}

	ue := domain.Classify(err)
	switch ue.Kind {
	case domain.KindNotFound:
		return handler.ErrorResponse{Status: http.StatusNotFound, Message: ue.Error()}
	case domain.KindAlreadyExists:
		return handler.ErrorResponse{Status: http.StatusConflict, Message: ue.Error()}
	case domain.KindInvalidData:
		return handler.ErrorResponse{Status: http.StatusBadRequest, Message: ue.Error()}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return handler.ErrorResponse{Status: http.StatusInternalServerError, Message: "internal server error"}
}
