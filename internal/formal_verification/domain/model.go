package domain

type Attrs map[string]string

type Architecture struct {
	Name        string        `json:"name" yaml:"name"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty"`
	Components  []*Component  `json:"components" yaml:"components"`
	Connections []*Connection `json:"connections" yaml:"connections"`
	Properties  []*Property   `json:"properties,omitempty" yaml:"properties,omitempty"`
	Metadata    Attrs         `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

func NewArchitecture(name, description string) *Architecture {
	return &Architecture{
		Name:        name,
		Description: description,
		Components:  []*Component{},
		Connections: []*Connection{},
		Properties:  []*Property{},
		Metadata:    Attrs{},
	}
}

// AddComponent, AddConnection and AddProperty ignore nil.
func (a *Architecture) AddComponent(c *Component) {
	if c == nil {
		return
	}
	a.Components = append(a.Components, c)
}

func (a *Architecture) AddConnection(c *Connection) {
	if c == nil {
		return
	}
	a.Connections = append(a.Connections, c)
}

func (a *Architecture) AddProperty(p *Property) {
	if p == nil {
		return
	}
	a.Properties = append(a.Properties, p)
}

// Component returns the first component with the given name.
func (a *Architecture) Component(name string) (*Component, bool) {
	for _, c := range a.Components {
		if c != nil && c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// Connection returns the first connection with the given name.
func (a *Architecture) Connection(name string) (*Connection, bool) {
	for _, c := range a.Connections {
		if c != nil && c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// PropertiesOfKind keeps declaration order.
func (a *Architecture) PropertiesOfKind(kind PropertyKind) []*Property {
	var out []*Property
	for _, p := range a.Properties {
		if p != nil && p.Kind == kind {
			out = append(out, p)
		}
	}
	return out
}

type Component struct {
	Name           string          `json:"name" yaml:"name"`
	Kind           ComponentKind   `json:"kind" yaml:"kind"`
	Provided       []*Interface    `json:"provided,omitempty" yaml:"provided,omitempty"`
	Required       []*Interface    `json:"required,omitempty" yaml:"required,omitempty"`
	Properties     Attrs           `json:"properties,omitempty" yaml:"properties,omitempty"`
	Implementation *Implementation `json:"implementation,omitempty" yaml:"implementation,omitempty"`
}

// ProvidedInterface looks up a provided interface by name.
func (c *Component) ProvidedInterface(name string) (*Interface, bool) {
	return findInterface(c.Provided, name)
}

// RequiredInterface looks up a required interface by name.
func (c *Component) RequiredInterface(name string) (*Interface, bool) {
	return findInterface(c.Required, name)
}

func findInterface(list []*Interface, name string) (*Interface, bool) {
	for _, it := range list {
		if it != nil && it.Name == name {
			return it, true
		}
	}
	return nil, false
}

type Implementation struct {
	Language     string   `json:"language" yaml:"language"`
	Source       string   `json:"source,omitempty" yaml:"source,omitempty"`
	Dependencies []string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
	BuildConfig  Attrs    `json:"build_config,omitempty" yaml:"build_config,omitempty"`
}

type Interface struct {
	Name       string        `json:"name" yaml:"name"`
	Kind       InterfaceKind `json:"kind" yaml:"kind"`
	Methods    []*Method     `json:"methods,omitempty" yaml:"methods,omitempty"`
	Properties Attrs         `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// Method returns the first method with the given name.
func (i *Interface) Method(name string) (*Method, bool) {
	for _, m := range i.Methods {
		if m != nil && m.Name == name {
			return m, true
		}
	}
	return nil, false
}

type Method struct {
	Name       string       `json:"name" yaml:"name"`
	Parameters []*Parameter `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	// nil means the method declares no return type
	Returns    *string `json:"returns,omitempty" yaml:"returns,omitempty"`
	Properties Attrs   `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type Parameter struct {
	Name     string  `json:"name" yaml:"name"`
	Type     string  `json:"type" yaml:"type"`
	Required bool    `json:"required" yaml:"required"`
	Default  *string `json:"default,omitempty" yaml:"default,omitempty"`
}

type Connection struct {
	Name       string         `json:"name" yaml:"name"`
	Source     string         `json:"source" yaml:"source"`
	Target     string         `json:"target" yaml:"target"`
	Kind       ConnectionKind `json:"kind" yaml:"kind"`
	Properties Attrs          `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type Property struct {
	Name        string       `json:"name" yaml:"name"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Kind        PropertyKind `json:"kind" yaml:"kind"`
	Expression  string       `json:"expression" yaml:"expression"`
	Priority    Priority     `json:"priority" yaml:"priority"`
}

// StringPtr is a small helper for optional string fields (return types, defaults).
func StringPtr(s string) *string { return &s }
