package parser

// ArchSpec is the document form of an architecture, shared by the YAML and
// JSON readers.
type ArchSpec struct {
	Name        string            `json:"name" yaml:"name" validate:"required"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`

	Types       []TypeSpec       `json:"types,omitempty" yaml:"types,omitempty" validate:"dive"`
	Components  []ComponentSpec  `json:"components" yaml:"components" validate:"required,min=1,dive"`
	Connections []ConnectionSpec `json:"connections,omitempty" yaml:"connections,omitempty" validate:"dive"`
	Properties  []PropertySpec   `json:"properties,omitempty" yaml:"properties,omitempty" validate:"dive"`
}

// TypeSpec names a type string so components can refer to it.
type TypeSpec struct {
	Name string `json:"name" yaml:"name" validate:"required"`
	Kind string `json:"kind,omitempty" yaml:"kind,omitempty" validate:"omitempty,oneof=primitive composite function interface generic"`
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
}

type ComponentSpec struct {
	Name       string            `json:"name" yaml:"name" validate:"required"`
	Kind       string            `json:"kind,omitempty" yaml:"kind,omitempty"`
	Provides   []InterfaceSpec   `json:"provides,omitempty" yaml:"provides,omitempty" validate:"dive"`
	Requires   []InterfaceSpec   `json:"requires,omitempty" yaml:"requires,omitempty" validate:"dive"`
	Properties map[string]string `json:"properties,omitempty" yaml:"properties,omitempty"`
	Language   string            `json:"language,omitempty" yaml:"language,omitempty"`
}

type InterfaceSpec struct {
	Name    string       `json:"name" yaml:"name" validate:"required"`
	Kind    string       `json:"kind,omitempty" yaml:"kind,omitempty"`
	Methods []MethodSpec `json:"methods,omitempty" yaml:"methods,omitempty" validate:"dive"`
}

type MethodSpec struct {
	Name    string      `json:"name" yaml:"name" validate:"required"`
	Params  []ParamSpec `json:"params,omitempty" yaml:"params,omitempty" validate:"dive"`
	Returns string      `json:"returns,omitempty" yaml:"returns,omitempty"`
}

type ParamSpec struct {
	Name string `json:"name" yaml:"name" validate:"required"`
	Type string `json:"type" yaml:"type" validate:"required"`
	// nil means required
	Required *bool   `json:"required,omitempty" yaml:"required,omitempty"`
	Default  *string `json:"default,omitempty" yaml:"default,omitempty"`
}

type ConnectionSpec struct {
	Name string `json:"name" yaml:"name" validate:"required"`
	From string `json:"from" yaml:"from" validate:"required"`
	To   string `json:"to" yaml:"to" validate:"required"`
	Kind string `json:"kind,omitempty" yaml:"kind,omitempty"`
}

type PropertySpec struct {
	Name        string `json:"name" yaml:"name" validate:"required"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Kind        string `json:"kind" yaml:"kind" validate:"required"`
	Expression  string `json:"expression" yaml:"expression" validate:"required"`
	Priority    string `json:"priority,omitempty" yaml:"priority,omitempty" validate:"omitempty,oneof=critical high medium low CRITICAL HIGH MEDIUM LOW"`
}
