package tool

// Type represents JSON Schema types.
type Type string

const (
	TypeString  Type = "string"
	TypeNumber  Type = "number"
	TypeInteger Type = "integer"
	TypeBoolean Type = "boolean"
	TypeArray   Type = "array"
	TypeObject  Type = "object"
)

// Schema represents a JSON Schema for tool parameters.
type Schema struct {
	Type        Type               `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Required    []string           `json:"required,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Enum        []string           `json:"enum,omitempty"`
	Default     any                `json:"default,omitempty"`
}

// Declaration declares a tool's function signature for callers.
type Declaration struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Parameters  *Schema `json:"parameters,omitempty"`
}

// Object builds an object schema from its properties.
func Object(props map[string]*Schema, required ...string) *Schema {
	return &Schema{Type: TypeObject, Properties: props, Required: required}
}

// String builds a string schema.
func String(desc string) *Schema {
	return &Schema{Type: TypeString, Description: desc}
}

// Integer builds an integer schema with an optional default.
func Integer(desc string, def any) *Schema {
	return &Schema{Type: TypeInteger, Description: desc, Default: def}
}

// Boolean builds a boolean schema with a default.
func Boolean(desc string, def bool) *Schema {
	return &Schema{Type: TypeBoolean, Description: desc, Default: def}
}

// Strings builds an array-of-strings schema.
func Strings(desc string) *Schema {
	return &Schema{Type: TypeArray, Description: desc, Items: &Schema{Type: TypeString}}
}

// Enum builds a string schema restricted to values.
func Enum(desc string, values ...string) *Schema {
	return &Schema{Type: TypeString, Description: desc, Enum: values}
}
