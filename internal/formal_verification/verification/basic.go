package verification

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/domain"
)

func verifyBasic(vc *Context) domain.VerificationResult {
	arch := vc.Architecture
	r := domain.NewVerificationResult()

	for _, c := range arch.Components {
		if strings.TrimSpace(c.Name) == "" {
			r.AddError(domain.CodeEmptyComponentName, "component name cannot be empty", "Component: "+c.Name)
		}
		seen := map[string]bool{}
		for _, it := range c.Provided {
			if seen[it.Name] {
				r.AddError(domain.CodeDuplicateInterfaceName,
					fmt.Sprintf("duplicate interface name '%s' in component '%s'", it.Name, c.Name),
					"Component: "+c.Name)
			}
			seen[it.Name] = true
		}
	}

	for _, c := range arch.Connections {
		if strings.TrimSpace(c.Name) == "" {
			r.AddError(domain.CodeEmptyConnectionName, "connection name cannot be empty", "Connection: "+c.Name)
		}
		if c.Source == c.Target {
			r.AddWarning(fmt.Sprintf("self-connection detected: %s", c.Name))
		}
	}

	for _, p := range arch.Properties {
		if strings.TrimSpace(p.Name) == "" {
			r.AddError(domain.CodeEmptyPropertyName, "property name cannot be empty", "Property: "+p.Name)
		}
		if strings.TrimSpace(p.Expression) == "" {
			r.AddError(domain.CodeEmptyPropertyExpr,
				fmt.Sprintf("property '%s' has an empty expression", p.Name), "Property: "+p.Name)
		}
	}

	r.Details["total_components"] = strconv.Itoa(len(arch.Components))
	r.Details["total_connections"] = strconv.Itoa(len(arch.Connections))
	r.Details["total_properties"] = strconv.Itoa(len(arch.Properties))
	return r
}
