package content

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// JSONSchema describes Date as a string, as written in front matter.
func (Date) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "string",
		OneOf: []*jsonschema.Schema{
			{Format: "date"},
			{Format: "date-time"},
		},
	}
}

// Schema returns the JSON Schema of the front matter.
func Schema() *jsonschema.Schema {
	r := jsonschema.Reflector{ExpandedStruct: true}
	sch := r.Reflect(&Meta{})
	sch.Title = "defterm blog post front matter"
	sch.Description = "YAML block delimited by --- at the top of every post."
	return sch
}

// MarshalSchema indents the schema to JSON bytes.
func MarshalSchema(sch *jsonschema.Schema) ([]byte, error) {
	return json.MarshalIndent(sch, "", "  ")
}
