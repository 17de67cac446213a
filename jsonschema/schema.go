package jsonschema

// Schema is the JSON Schema representation produced by Export. Kinds with no
// JSON Schema counterpart are annotated with "x-kind".
type Schema struct {
	ID   string `json:"$id,omitempty"`
	Ref  string `json:"$ref,omitempty"`
	Kind string `json:"x-kind,omitempty"`

	// Core
	Type  string  `json:"type,omitempty"`
	Const any     `json:"const,omitempty"`
	Not   *Schema `json:"not,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	ReadOnly             bool               `json:"readOnly,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`
	PatternProperties    map[string]*Schema `json:"patternProperties,omitempty"`

	// Array; Items is a *Schema or false for closed tuples.
	Items       any       `json:"items,omitempty"`
	PrefixItems []*Schema `json:"prefixItems,omitempty"`
	MinItems    *int      `json:"minItems,omitempty"`
	MaxItems    *int      `json:"maxItems,omitempty"`

	// Composition
	AnyOf []*Schema `json:"anyOf,omitempty"`
	AllOf []*Schema `json:"allOf,omitempty"`

	// Callables
	Parameters []*Schema `json:"x-parameters,omitempty"`
	Returns    *Schema   `json:"x-returns,omitempty"`
	Item       *Schema   `json:"x-item,omitempty"`

	Defs map[string]*Schema `json:"$defs,omitempty"`
}
