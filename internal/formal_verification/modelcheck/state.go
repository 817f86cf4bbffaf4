package modelcheck

type ComponentStatus string

const (
	ComponentActive   ComponentStatus = "ACTIVE"
	ComponentInactive ComponentStatus = "INACTIVE"
	ComponentError    ComponentStatus = "ERROR"
	ComponentBusy     ComponentStatus = "BUSY"
	ComponentIdle     ComponentStatus = "IDLE"
)

type ConnectionStatus string

const (
	ConnectionConnected    ConnectionStatus = "CONNECTED"
	ConnectionDisconnected ConnectionStatus = "DISCONNECTED"
	ConnectionBusy         ConnectionStatus = "BUSY"
	ConnectionError        ConnectionStatus = "ERROR"
)

type ConnectionState struct {
	Status ConnectionStatus `json:"status"`
	// Queue is FIFO; tokens are opaque.
	Queue []string `json:"queue"`
}

type State struct {
	ID          string                     `json:"id"`
	Properties  map[string]string          `json:"properties,omitempty"`
	Components  map[string]ComponentStatus `json:"components"`
	Connections map[string]ConnectionState `json:"connections"`
}

func (s *State) clone(id string) *State {
	out := &State{
		ID:          id,
		Properties:  make(map[string]string, len(s.Properties)),
		Components:  make(map[string]ComponentStatus, len(s.Components)),
		Connections: make(map[string]ConnectionState, len(s.Connections)),
	}
	for k, v := range s.Properties {
		out.Properties[k] = v
	}
	for k, v := range s.Components {
		out.Components[k] = v
	}
	for k, v := range s.Connections {
		out.Connections[k] = ConnectionState{Status: v.Status, Queue: append([]string(nil), v.Queue...)}
	}
	return out
}

type Transition struct {
	Source     string            `json:"source"`
	Target     string            `json:"target"`
	Label      string            `json:"label"`
	Conditions map[string]string `json:"conditions,omitempty"`
	Actions    []string          `json:"actions,omitempty"`
}

// StateSpace is the result of one bounded exploration. Order lists state
// IDs in discovery order.
type StateSpace struct {
	States   map[string]*State
	Initial  string
	Final    map[string]bool
	Order    []string
	Depth    map[string]int
	Expanded map[string]bool

	Truncated      bool
	TruncateReason string
}

// Interrupted reports a truncation by timeout or cancellation.
func (s *StateSpace) Interrupted() bool {
	return s.Truncated && interruptedReason(s.TruncateReason)
}

func newStateSpace() *StateSpace {
	return &StateSpace{
		States:   map[string]*State{},
		Final:    map[string]bool{},
		Depth:    map[string]int{},
		Expanded: map[string]bool{},
	}
}

func (s *StateSpace) add(st *State, depth int) {
	s.States[st.ID] = st
	s.Order = append(s.Order, st.ID)
	s.Depth[st.ID] = depth
}

func (s *StateSpace) Len() int { return len(s.States) }

// TransitionSystem keeps outgoing transitions per source in discovery order.
type TransitionSystem struct {
	Transitions map[string][]Transition
	count       int
}

func newTransitionSystem() *TransitionSystem {
	return &TransitionSystem{Transitions: map[string][]Transition{}}
}

func (t *TransitionSystem) add(tr Transition) {
	t.Transitions[tr.Source] = append(t.Transitions[tr.Source], tr)
	t.count++
}

func (t *TransitionSystem) Count() int { return t.count }

func (t *TransitionSystem) From(id string) []Transition { return t.Transitions[id] }
