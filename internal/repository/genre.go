package repository

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// GenreList is an ordered list of genre names. The genres column is a text
// blob in the form "{rock,jazz}"; GenreList converts between that encoding
// and a proper []string at the store boundary, so read sites never re-derive
// the list by string stripping.
type GenreList []string

// Scan implements sql.Scanner. It accepts the braced form written by Value
// as well as a bare comma-separated list.
func (g *GenreList) Scan(src any) error {
	var raw string
	switch v := src.(type) {
	case nil:
		*g = nil
		return nil
	case []byte:
		raw = string(v)
	case string:
		raw = v
	default:
		return fmt.Errorf("genres: cannot scan %T", src)
	}
	raw = strings.TrimSuffix(strings.TrimPrefix(raw, "{"), "}")
	if raw == "" {
		*g = GenreList{}
		return nil
	}
	*g = GenreList(strings.Split(raw, ","))
	return nil
}

// Value implements driver.Valuer and writes the braced form.
func (g GenreList) Value() (driver.Value, error) {
	return "{" + strings.Join(g, ",") + "}", nil
}
