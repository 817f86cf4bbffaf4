package typecheck

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/domain"
	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/typesystem"
)

// Checker validates method types and interface compatibility of an
// architecture. Findings accumulate; nothing aborts the pass.
type Checker struct {
	types *typesystem.TypeSystem
}

func New(ts *typesystem.TypeSystem) *Checker {
	if ts == nil {
		ts = typesystem.New()
	}
	return &Checker{types: ts}
}

func (c *Checker) TypeSystem() *typesystem.TypeSystem { return c.types }

// pass holds the findings of one CheckArchitecture call.
type pass struct {
	types  *typesystem.TypeSystem
	result domain.VerificationResult
}

// CheckArchitecture expects arch to have passed Validate.
func (c *Checker) CheckArchitecture(ctx context.Context, arch *domain.Architecture) domain.VerificationResult {
	start := time.Now()
	p := &pass{types: c.types, result: domain.NewVerificationResult()}

	interfaces := 0
	for _, comp := range arch.Components {
		interfaces += len(comp.Provided) + len(comp.Required)
		p.checkComponentTypes(comp)
	}

	for _, conn := range arch.Connections {
		if err := ctx.Err(); err != nil {
			p.result.AddWarning(fmt.Sprintf("type check interrupted: %v", err))
			p.result.Success = false
			break
		}
		p.checkConnection(arch, conn)
	}

	for _, comp := range arch.Components {
		p.checkSignatures(comp)
	}

	for _, id := range c.types.CheckConstraints() {
		p.result.AddError(domain.CodeConstraintViolation,
			fmt.Sprintf("type constraint '%s' violated", id), "")
	}

	r := p.result
	r.Details["components_checked"] = strconv.Itoa(len(arch.Components))
	r.Details["interfaces_checked"] = strconv.Itoa(interfaces)
	r.Details["type_errors"] = strconv.Itoa(len(r.Errors))
	r.Details["type_warnings"] = strconv.Itoa(len(r.Warnings))
	r.VerificationTime = time.Since(start)
	return r
}

func (p *pass) checkComponentTypes(comp *domain.Component) {
	for _, it := range comp.Provided {
		p.checkInterfaceTypes(comp, it)
	}
	for _, it := range comp.Required {
		p.checkInterfaceTypes(comp, it)
	}
}

func (p *pass) checkInterfaceTypes(comp *domain.Component, it *domain.Interface) {
	for _, m := range it.Methods {
		loc := "Method: " + m.Name
		for _, param := range m.Parameters {
			if !typesystem.IsWellFormed(p.types.Parse(param.Type)) {
				p.result.AddError(domain.CodeInvalidParameterType,
					fmt.Sprintf("invalid parameter type '%s' for '%s' in component '%s' interface '%s'",
						param.Type, param.Name, comp.Name, it.Name), loc)
			}
		}
		if m.Returns != nil && !typesystem.IsWellFormed(p.types.Parse(*m.Returns)) {
			p.result.AddError(domain.CodeInvalidReturnType,
				fmt.Sprintf("invalid return type '%s' in component '%s' interface '%s'",
					*m.Returns, comp.Name, it.Name), loc)
		}
	}
}

func (p *pass) checkConnection(arch *domain.Architecture, conn *domain.Connection) {
	src, okSrc := arch.Component(conn.Source)
	dst, okDst := arch.Component(conn.Target)
	if !okSrc || !okDst {
		return
	}
	loc := "Connection: " + conn.Name

	found := false
	for _, provided := range src.Provided {
		for _, required := range dst.Required {
			if provided.Name != required.Name {
				continue
			}
			found = true
			if provided.Kind != required.Kind {
				p.result.AddWarning(fmt.Sprintf(
					"interface '%s' on connection '%s' is %s on '%s' but %s on '%s'",
					provided.Name, conn.Name, provided.Kind, src.Name, required.Kind, dst.Name))
			}
			if reason := p.incompatibility(provided, required); reason != "" {
				p.result.AddError(domain.CodeInterfaceIncompatible,
					fmt.Sprintf("interface '%s' provided by '%s' is incompatible with the one required by '%s': %s",
						provided.Name, src.Name, dst.Name, reason), loc)
			}
		}
	}

	if !found {
		p.result.AddError(domain.CodeInterfaceNotFound,
			fmt.Sprintf("no matching interface for connection '%s' from '%s' to '%s'",
				conn.Name, conn.Source, conn.Target), loc)
	}
}

// incompatibility returns an empty string when provided satisfies required.
func (p *pass) incompatibility(provided, required *domain.Interface) string {
	for _, want := range required.Methods {
		have, ok := provided.Method(want.Name)
		if !ok {
			return fmt.Sprintf("method '%s' is not provided", want.Name)
		}
		if len(have.Parameters) != len(want.Parameters) {
			return fmt.Sprintf("method '%s' takes %d parameters, %d required",
				want.Name, len(have.Parameters), len(want.Parameters))
		}
		for i := range want.Parameters {
			ht := p.types.Parse(have.Parameters[i].Type)
			wt := p.types.Parse(want.Parameters[i].Type)
			if !typesystem.IsSubtype(ht, wt) {
				return fmt.Sprintf("method '%s' parameter %d: %s is not a subtype of %s",
					want.Name, i+1, have.Parameters[i].Type, want.Parameters[i].Type)
			}
		}
		if have.Returns != nil && want.Returns != nil {
			if !typesystem.IsSubtype(p.types.Parse(*have.Returns), p.types.Parse(*want.Returns)) {
				return fmt.Sprintf("method '%s' returns %s, %s required",
					want.Name, *have.Returns, *want.Returns)
			}
		}
	}
	return ""
}

// checkSignatures reports duplicate methods and parameters of provided
// interfaces, then duplicate provided interface names. Only the second and
// later occurrences are reported.
func (p *pass) checkSignatures(comp *domain.Component) {
	loc := "Component: " + comp.Name
	for _, it := range comp.Provided {
		methods := map[string]bool{}
		for _, m := range it.Methods {
			if methods[m.Name] {
				p.result.AddError(domain.CodeDuplicateMethod,
					fmt.Sprintf("duplicate method '%s' in interface '%s'", m.Name, it.Name), loc)
			}
			methods[m.Name] = true

			params := map[string]bool{}
			for _, param := range m.Parameters {
				if params[param.Name] {
					p.result.AddError(domain.CodeDuplicateParameter,
						fmt.Sprintf("duplicate parameter '%s' in method '%s'", param.Name, m.Name), loc)
				}
				params[param.Name] = true
			}
		}
	}

	names := map[string]bool{}
	for _, it := range comp.Provided {
		if names[it.Name] {
			p.result.AddError(domain.CodeDuplicateInterface,
				fmt.Sprintf("duplicate provided interface '%s'", it.Name), loc)
		}
		names[it.Name] = true
	}
}
