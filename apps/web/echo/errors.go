package echoweb

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Guilherme-Bernal/distributed-programming-final-project/core"
)

// newWebHTTPErrorHandler handles errors surfacing from the form endpoints;
// unlike the API handler there is no validation-error shape to unpack, the
// services reject bad input through Result messages.
func newWebHTTPErrorHandler(logger core.Logger, signalShutdown func()) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		var code int
		var message interface{}

		switch origErr := errors.Cause(err).(type) {
		case *echo.HTTPError:
			code = origErr.Code
			message = origErr.Message
		default:
			code = http.StatusInternalServerError
			msg := http.StatusText(http.StatusInternalServerError)
			message = msg

			logger.Error(msg, errors.Wrap(err, msg))

			if core.IsShutdown(err) {
				signalShutdown()
			}
		}

		if ctx.Echo().Debug {
			message = err.Error()
		} else if m, ok := message.(string); ok {
			message = echo.Map{"error": m}
		}

		if !ctx.Response().Committed {
			if jErr := ctx.JSON(code, message); jErr != nil {
				ctx.Echo().Logger.Error(jErr)
			}
		}
	}
}
