package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func TestSetThenPop(t *testing.T) {
	e := echo.New()

	// First request sets the flash.
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)
	require.NoError(t, Set(c, secret, "Venue The Mohawk was successfully listed!"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	// Next request carries the cookie and pops the message.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	c = e.NewContext(req, httptest.NewRecorder())

	msgs := Pop(c, secret)
	assert.Equal(t, []string{"Venue The Mohawk was successfully listed!"}, msgs)
}

func TestPopRejectsTamperedCookie(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "flash", Value: "not-a-signed-token"})
	c := e.NewContext(req, httptest.NewRecorder())

	assert.Nil(t, Pop(c, secret))
}

func TestPopWrongSecret(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)
	require.NoError(t, Set(c, secret, "hello"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(rec.Result().Cookies()[0])
	c = e.NewContext(req, httptest.NewRecorder())

	assert.Nil(t, Pop(c, "other-secret"))
}

func TestPopWithoutCookie(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Nil(t, Pop(c, secret))
}
