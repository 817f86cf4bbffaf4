package mapper

import (
	"strings"

	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/domain"
	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/ingest/parser"
	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/typesystem"
)

func normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.NewReplacer("-", "_", " ", "_").Replace(s)
	return strings.ToUpper(s)
}

func orDefault(s, def string) string {
	if n := normalize(s); n != "" {
		return n
	}
	return def
}

// ToArchitecture maps the document onto the domain model without
// validating it.
func ToArchitecture(s *parser.ArchSpec) *domain.Architecture {
	a := domain.NewArchitecture(s.Name, s.Description)
	for k, v := range s.Metadata {
		a.Metadata[k] = v
	}

	for _, cs := range s.Components {
		c := &domain.Component{
			Name:       cs.Name,
			Kind:       domain.ComponentKind(orDefault(cs.Kind, string(domain.ComponentService))),
			Properties: domain.Attrs{},
		}
		for k, v := range cs.Properties {
			c.Properties[k] = v
		}
		if cs.Language != "" {
			c.Implementation = &domain.Implementation{Language: cs.Language}
		}
		for _, is := range cs.Provides {
			c.Provided = append(c.Provided, toInterface(is))
		}
		for _, is := range cs.Requires {
			c.Required = append(c.Required, toInterface(is))
		}
		a.AddComponent(c)
	}

	for _, cs := range s.Connections {
		a.AddConnection(&domain.Connection{
			Name:   cs.Name,
			Source: cs.From,
			Target: cs.To,
			Kind:   domain.ConnectionKind(orDefault(cs.Kind, string(domain.ConnectionHTTP))),
		})
	}

	for _, ps := range s.Properties {
		a.AddProperty(&domain.Property{
			Name:        ps.Name,
			Description: ps.Description,
			Kind:        domain.PropertyKind(normalize(ps.Kind)),
			Expression:  ps.Expression,
			Priority:    domain.Priority(orDefault(ps.Priority, string(domain.PriorityMedium))),
		})
	}
	return a
}

func toInterface(is parser.InterfaceSpec) *domain.Interface {
	it := &domain.Interface{
		Name: is.Name,
		Kind: domain.InterfaceKind(orDefault(is.Kind, string(domain.InterfaceREST))),
	}
	for _, ms := range is.Methods {
		m := &domain.Method{Name: ms.Name}
		if strings.TrimSpace(ms.Returns) != "" {
			m.Returns = domain.StringPtr(ms.Returns)
		}
		for _, ps := range ms.Params {
			required := true
			if ps.Required != nil {
				required = *ps.Required
			}
			m.Parameters = append(m.Parameters, &domain.Parameter{
				Name:     ps.Name,
				Type:     ps.Type,
				Required: required,
				Default:  ps.Default,
			})
		}
		it.Methods = append(it.Methods, m)
	}
	return it
}

// ToTypeSystem registers the document's named types in order, so a type
// may refer to any type declared before it.
func ToTypeSystem(s *parser.ArchSpec) *typesystem.TypeSystem {
	ts := typesystem.New()
	for _, t := range s.Types {
		kind := typesystem.DefinitionKind(strings.ToLower(strings.TrimSpace(t.Kind)))
		if kind == "" {
			kind = typesystem.KindComposite
		}
		def := typesystem.Definition{Name: t.Name, Kind: kind}
		if strings.TrimSpace(t.Type) != "" {
			def.Type = ts.Parse(t.Type)
		}
		ts.Define(def)
	}
	return ts
}
