package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// errorPages maps the HTTP statuses echo raises for routing and method
// problems to the generic user-facing messages of the error pages. None of
// these are recoverable by the handlers; anything unexpected collapses to
// a 500.
var errorPages = map[int]string{
	http.StatusBadRequest:       "bad request",
	http.StatusUnauthorized:     "unauthorized",
	http.StatusForbidden:        "forbidden",
	http.StatusNotFound:         "page not found",
	http.StatusMethodNotAllowed: "method not allowed",
}

// HTTPErrorHandler converts unhandled errors into uniform JSON error
// bodies. Handlers respond directly for domain errors, so this only sees
// routing failures and truly unexpected faults.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	msg := "internal server error"

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := errorPages[code]; ok {
			msg = m
		}
	}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, echo.Map{"error": msg})
}
