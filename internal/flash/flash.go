// Package flash carries one-shot user messages across a redirect, the way
// a server-rendered app flashes "Venue X was successfully listed!" on the
// next page. Messages live in a short-lived cookie signed with the
// application secret so clients can neither forge nor tamper with them.
package flash

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	cookieName = "flash"
	ttl        = 5 * time.Minute
)

type claims struct {
	Messages []string `json:"messages"`
	jwt.RegisteredClaims
}

// Set signs the given messages into the flash cookie on the response.
func Set(c echo.Context, secret string, messages ...string) error {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Messages: messages,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return err
	}
	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(ttl / time.Second),
		HttpOnly: true,
	})
	return nil
}

// Pop reads, verifies and clears the flash cookie, returning its messages.
// A missing, expired or tampered cookie yields no messages; the page simply
// renders without a flash.
func Pop(c echo.Context, secret string) []string {
	ck, err := c.Cookie(cookieName)
	if err != nil || ck.Value == "" {
		return nil
	}
	// Clear regardless of validity so a bad cookie is not re-sent forever.
	c.SetCookie(&http.Cookie{Name: cookieName, Value: "", Path: "/", MaxAge: -1, HttpOnly: true})

	var cl claims
	token, err := jwt.ParseWithClaims(ck.Value, &cl, func(*jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil
	}
	return cl.Messages
}
