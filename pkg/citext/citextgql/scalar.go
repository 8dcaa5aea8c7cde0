// Package citextgql maps citext.Text to a gqlgen custom scalar.
//
// Bind it in gqlgen.yml:
//
//	models:
//	  CIText:
//	    model: github.com/heartmarshall/citext/pkg/citext/citextgql.CIText
package citextgql

import (
	"errors"
	"fmt"

	"github.com/99designs/gqlgen/graphql"

	"github.com/heartmarshall/citext/pkg/citext"
)

// ErrNotString is returned when a CIText input value is not a string.
var ErrNotString = errors.New("CIText must be a string")

// MarshalCIText writes the original casing as a GraphQL string.
func MarshalCIText(t citext.Text) graphql.Marshaler {
	return graphql.MarshalString(t.String())
}

// UnmarshalCIText parses a GraphQL input value. Arguments are taken as
// typed, without folding.
func UnmarshalCIText(v any) (citext.Text, error) {
	switch v := v.(type) {
	case string:
		return citext.Parse(v)
	default:
		return citext.Text{}, fmt.Errorf("%w, got %T", ErrNotString, v)
	}
}
