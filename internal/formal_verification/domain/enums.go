package domain

type ComponentKind string

const (
	ComponentService      ComponentKind = "SERVICE"
	ComponentLibrary      ComponentKind = "LIBRARY"
	ComponentDatabase     ComponentKind = "DATABASE"
	ComponentMessageQueue ComponentKind = "MESSAGE_QUEUE"
	ComponentCache        ComponentKind = "CACHE"
	ComponentLoadBalancer ComponentKind = "LOAD_BALANCER"
	ComponentGateway      ComponentKind = "GATEWAY"
)

// CustomComponentKind tags a component with a kind outside the built-in set.
func CustomComponentKind(tag string) ComponentKind { return ComponentKind(tag) }

type InterfaceKind string

const (
	InterfaceREST     InterfaceKind = "REST"
	InterfaceGraphQL  InterfaceKind = "GRAPHQL"
	InterfaceGRPC     InterfaceKind = "GRPC"
	InterfaceMessage  InterfaceKind = "MESSAGE"
	InterfaceDatabase InterfaceKind = "DATABASE"
	InterfaceFile     InterfaceKind = "FILE"
)

type ConnectionKind string

const (
	ConnectionHTTP     ConnectionKind = "HTTP"
	ConnectionGRPC     ConnectionKind = "GRPC"
	ConnectionMessage  ConnectionKind = "MESSAGE"
	ConnectionDatabase ConnectionKind = "DATABASE"
	ConnectionFile     ConnectionKind = "FILE"
	ConnectionEvent    ConnectionKind = "EVENT"
)

type PropertyKind string

const (
	PropertySafety      PropertyKind = "SAFETY"
	PropertyLiveness    PropertyKind = "LIVENESS"
	PropertyInvariant   PropertyKind = "INVARIANT"
	PropertyTemporal    PropertyKind = "TEMPORAL"
	PropertyPerformance PropertyKind = "PERFORMANCE"
	PropertySecurity    PropertyKind = "SECURITY"
)

type Priority string

const (
	PriorityCritical Priority = "CRITICAL"
	PriorityHigh     Priority = "HIGH"
	PriorityMedium   Priority = "MEDIUM"
	PriorityLow      Priority = "LOW"
)

type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityWarning Severity = "WARNING"
	SeverityInfo    Severity = "INFO"
)
