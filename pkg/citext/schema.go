package citext

import "github.com/invopop/jsonschema"

// JSONSchema describes Text as a JSON string for schema reflection.
func (Text) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{Type: "string"}
}

// JSONSchema describes NullText as a JSON string or null.
func (NullText) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		OneOf: []*jsonschema.Schema{
			{Type: "string"},
			{Type: "null"},
		},
	}
}
