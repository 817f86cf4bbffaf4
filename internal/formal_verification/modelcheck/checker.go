package modelcheck

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/domain"
)

const InitialStateID = "initial"

var (
	ErrStateSpaceNotBuilt = errors.New("state space not built")
	ErrUnknownState       = errors.New("unknown state")
)

// ModelChecker explores the activation state space of one architecture and
// evaluates properties over it. A ModelChecker is owned by one goroutine.
type ModelChecker struct {
	cfg         Config
	components  []string
	connections []string

	space *StateSpace
	trans *TransitionSystem
}

func New(cfg Config) *ModelChecker {
	if cfg.Identity == "" {
		cfg.Identity = PathIdentity
	}
	return &ModelChecker{cfg: cfg}
}

func (m *ModelChecker) Config() Config { return m.cfg }

// StateSpace returns nil before BuildStateSpace.
func (m *ModelChecker) StateSpace() *StateSpace { return m.space }

func (m *ModelChecker) Transitions() *TransitionSystem { return m.trans }

// BuildStateSpace replaces any previous space. Hitting MaxStates, Timeout
// or ctx cancellation is not an error: the partial space is kept and
// marked Truncated.
func (m *ModelChecker) BuildStateSpace(ctx context.Context, arch *domain.Architecture) error {
	if err := m.cfg.Validate(); err != nil {
		return err
	}
	if arch == nil {
		return fmt.Errorf("build state space: architecture is nil")
	}

	m.components = m.components[:0]
	for _, c := range arch.Components {
		m.components = append(m.components, c.Name)
	}
	m.connections = m.connections[:0]
	for _, c := range arch.Connections {
		m.connections = append(m.connections, c.Name)
	}

	e := &explorer{
		m:     m,
		ctx:   ctx,
		start: time.Now(),
		space: newStateSpace(),
		trans: newTransitionSystem(),
	}
	init := m.initialState()
	e.space.Initial = init.ID
	e.space.add(init, 0)

	var err error
	if m.cfg.Parallel {
		err = e.runParallel()
	} else {
		e.runSequential()
	}
	m.space, m.trans = e.space, e.trans
	return err
}

func (m *ModelChecker) initialState() *State {
	s := &State{
		ID:          InitialStateID,
		Properties:  map[string]string{},
		Components:  make(map[string]ComponentStatus, len(m.components)),
		Connections: make(map[string]ConnectionState, len(m.connections)),
	}
	for _, c := range m.components {
		s.Components[c] = ComponentInactive
	}
	for _, c := range m.connections {
		s.Connections[c] = ConnectionState{Status: ConnectionDisconnected, Queue: []string{}}
	}
	return s
}

type successor struct {
	state *State
	tr    Transition
}

// successors is pure: it only reads s and the declaration order.
func (m *ModelChecker) successors(s *State) []successor {
	var out []successor
	for _, name := range m.components {
		if s.Components[name] != ComponentInactive {
			continue
		}
		next := s.clone("")
		next.Components[name] = ComponentActive
		out = append(out, m.edge(s, next, "activated_"+name, map[string]string{
			"component": name,
			"from":      string(ComponentInactive),
			"to":        string(ComponentActive),
		}, "activate "+name))
	}
	for _, name := range m.connections {
		cs := s.Connections[name]
		if cs.Status != ConnectionDisconnected {
			continue
		}
		next := s.clone("")
		cs = next.Connections[name]
		cs.Status = ConnectionConnected
		next.Connections[name] = cs
		out = append(out, m.edge(s, next, "connected_"+name, map[string]string{
			"connection": name,
			"from":       string(ConnectionDisconnected),
			"to":         string(ConnectionConnected),
		}, "connect "+name))
	}
	return out
}

func (m *ModelChecker) edge(from, to *State, event string, cond map[string]string, action string) successor {
	if m.cfg.Identity == StructuralIdentity {
		to.ID = m.structuralKey(to)
	} else {
		to.ID = from.ID + "_" + event
	}
	return successor{
		state: to,
		tr: Transition{
			Source:     from.ID,
			Target:     to.ID,
			Label:      event,
			Conditions: cond,
			Actions:    []string{action},
		},
	}
}

// structuralKey renders the status vector as s[<components>|<connections>],
// one bit per entry in declaration order.
func (m *ModelChecker) structuralKey(s *State) string {
	var b strings.Builder
	b.Grow(len(m.components) + len(m.connections) + 3)
	b.WriteString("s[")
	for _, c := range m.components {
		if s.Components[c] == ComponentActive {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	b.WriteByte('|')
	for _, c := range m.connections {
		if s.Connections[c].Status == ConnectionConnected {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	b.WriteByte(']')
	return b.String()
}

type explorer struct {
	m     *ModelChecker
	ctx   context.Context
	start time.Time
	space *StateSpace
	trans *TransitionSystem
}

func (e *explorer) truncate(reason string) {
	if !e.space.Truncated {
		e.space.Truncated = true
		e.space.TruncateReason = reason
	}
}

func (e *explorer) outOfBudget() bool {
	if err := e.ctx.Err(); err != nil {
		e.truncate("cancelled: " + err.Error())
		return true
	}
	if time.Since(e.start) > e.m.cfg.Timeout {
		e.truncate("timeout")
		return true
	}
	return false
}

// merge records the successors of id. It returns false once the state cap
// stops exploration; id then stays unexpanded.
func (e *explorer) merge(id string, succs []successor, queue *[]string) bool {
	depth := e.space.Depth[id] + 1
	for _, s := range succs {
		if _, known := e.space.States[s.state.ID]; !known {
			if e.space.Len() >= e.m.cfg.MaxStates {
				e.truncate("max_states")
				return false
			}
			e.space.add(s.state, depth)
			*queue = append(*queue, s.state.ID)
		}
		e.trans.add(s.tr)
	}
	if len(succs) == 0 {
		e.space.Final[id] = true
	}
	e.space.Expanded[id] = true
	return true
}

func (e *explorer) runSequential() {
	queue := []string{e.space.Initial}
	for head := 0; head < len(queue); head++ {
		if e.outOfBudget() {
			return
		}
		id := queue[head]
		if !e.merge(id, e.m.successors(e.space.States[id]), &queue) {
			return
		}
	}
}

// runParallel expands one BFS level at a time. Successors are generated
// concurrently and merged in frontier order, which reproduces the
// sequential discovery order exactly.
func (e *explorer) runParallel() error {
	workers := e.m.cfg.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	frontier := []string{e.space.Initial}
	for len(frontier) > 0 {
		if e.outOfBudget() {
			return nil
		}

		succs := make([][]successor, len(frontier))
		g, gctx := errgroup.WithContext(e.ctx)
		g.SetLimit(workers)
		for i, id := range frontier {
			st := e.space.States[id]
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				succs[i] = e.m.successors(st)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			if e.ctx.Err() != nil {
				e.truncate("cancelled: " + e.ctx.Err().Error())
				return nil
			}
			return fmt.Errorf("expand level: %w", err)
		}

		var next []string
		for i, id := range frontier {
			if i > 0 && e.outOfBudget() {
				return nil
			}
			if !e.merge(id, succs[i], &next) {
				return nil
			}
		}
		frontier = next
	}
	return nil
}

func (m *ModelChecker) built() error {
	if m.space == nil || m.trans == nil {
		return ErrStateSpaceNotBuilt
	}
	return nil
}
