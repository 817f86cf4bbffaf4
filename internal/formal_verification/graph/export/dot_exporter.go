package export

import (
	"fmt"
	"strings"

	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/domain"
	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/modelcheck"
)

func header(b *strings.Builder, title string) {
	b.WriteString("digraph G {\n  rankdir=LR;\n  node [shape=box, style=rounded];\n")
	if title != "" {
		b.WriteString(fmt.Sprintf(`  labelloc="t"; label="%s"; fontname="Helvetica";`, escape(title)))
		b.WriteString("\n")
	}
}

func escape(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

// ArchitectureDOT renders components as nodes and connections as labelled edges.
func ArchitectureDOT(a *domain.Architecture, title string) string {
	var b strings.Builder
	header(&b, title)

	for _, c := range a.Components {
		if c == nil {
			continue
		}
		style := `shape=box,style="rounded,filled",fillcolor="#eef6ff"`
		switch c.Kind {
		case domain.ComponentDatabase:
			style = `shape=cylinder,style="filled",fillcolor="#fff3cd"`
		case domain.ComponentMessageQueue:
			style = `shape=cds,style="filled",fillcolor="#e8f5e9"`
		case domain.ComponentCache:
			style = `shape=box3d,style="filled",fillcolor="#f3e5f5"`
		}
		b.WriteString(fmt.Sprintf(`  "%s" [label="%s\n(%s)", %s];`+"\n",
			escape(c.Name), escape(c.Name), strings.ToLower(string(c.Kind)), style))
	}

	for _, e := range a.Connections {
		if e == nil {
			continue
		}
		b.WriteString(fmt.Sprintf(`  "%s" -> "%s" [label="%s [%s]"];`+"\n",
			escape(e.Source), escape(e.Target), escape(e.Name), strings.ToLower(string(e.Kind))))
	}

	b.WriteString("}\n")
	return b.String()
}

// StateSpaceDOT renders an explored state space in discovery order. The
// initial state is doubled, final states are grey and states that were
// never expanded are dashed. States in highlight are drawn red.
func StateSpaceDOT(space *modelcheck.StateSpace, trans *modelcheck.TransitionSystem, title string, highlight []string) string {
	var b strings.Builder
	header(&b, title)
	if space == nil {
		b.WriteString("}\n")
		return b.String()
	}

	hl := make(map[string]bool, len(highlight))
	for _, id := range highlight {
		hl[id] = true
	}

	for _, id := range space.Order {
		attrs := []string{fmt.Sprintf(`label="%s"`, escape(id))}
		switch {
		case hl[id]:
			attrs = append(attrs, `style="filled"`, `fillcolor="#f8d7da"`)
		case space.Final[id]:
			attrs = append(attrs, `style="filled"`, `fillcolor="#e0e0e0"`)
		case !space.Expanded[id]:
			attrs = append(attrs, `style="dashed"`)
		}
		if id == space.Initial {
			attrs = append(attrs, "peripheries=2")
		}
		b.WriteString(fmt.Sprintf(`  "%s" [%s];`+"\n", escape(id), strings.Join(attrs, ", ")))
	}

	if trans != nil {
		for _, id := range space.Order {
			for _, t := range trans.From(id) {
				b.WriteString(fmt.Sprintf(`  "%s" -> "%s" [label="%s"];`+"\n",
					escape(t.Source), escape(t.Target), escape(t.Label)))
			}
		}
	}

	b.WriteString("}\n")
	return b.String()
}
