package domain

import "time"

// Error codes shared by the checkers and strategies.
const (
	CodeInvalidParameterType  = "INVALID_PARAMETER_TYPE"
	CodeInvalidReturnType     = "INVALID_RETURN_TYPE"
	CodeInterfaceNotFound     = "INTERFACE_NOT_FOUND"
	CodeInterfaceIncompatible = "INTERFACE_INCOMPATIBLE"
	CodeDuplicateMethod       = "DUPLICATE_METHOD"
	CodeDuplicateParameter    = "DUPLICATE_PARAMETER"
	CodeDuplicateInterface    = "DUPLICATE_INTERFACE"
	CodeConstraintViolation   = "CONSTRAINT_VIOLATION"
	CodeSafetyViolated        = "SAFETY_PROPERTY_VIOLATED"
	CodeLivenessViolated      = "LIVENESS_PROPERTY_VIOLATED"
	CodeInvalidProperty       = "INVALID_PROPERTY"
	CodeCircularDependency    = "CIRCULAR_DEPENDENCY"
	CodeEmptyComponentName    = "EMPTY_COMPONENT_NAME"
	CodeEmptyConnectionName   = "EMPTY_CONNECTION_NAME"
	CodeEmptyPropertyName     = "EMPTY_PROPERTY_NAME"
	CodeEmptyPropertyExpr     = "EMPTY_PROPERTY_EXPRESSION"
	CodeVerificationFailed    = "VERIFICATION_FAILED"

	// CodeDuplicateInterfaceName is the basic strategy's structural check;
	// the type checker reports the same defect as CodeDuplicateInterface.
	CodeDuplicateInterfaceName = "DUPLICATE_INTERFACE_NAME"
)

type VerificationError struct {
	Code     string   `json:"code" yaml:"code"`
	Message  string   `json:"message" yaml:"message"`
	Location *string  `json:"location,omitempty" yaml:"location,omitempty"`
	Severity Severity `json:"severity" yaml:"severity"`
}

type VerificationResult struct {
	Success          bool                `json:"success" yaml:"success"`
	Errors           []VerificationError `json:"errors" yaml:"errors"`
	Warnings         []string            `json:"warnings" yaml:"warnings"`
	Details          map[string]string   `json:"details" yaml:"details"`
	VerificationTime time.Duration       `json:"verification_time_ns" yaml:"verification_time_ns"`
}

// NewVerificationResult returns an empty, successful result with non-nil collections.
func NewVerificationResult() VerificationResult {
	return VerificationResult{
		Success:  true,
		Errors:   []VerificationError{},
		Warnings: []string{},
		Details:  map[string]string{},
	}
}

// AddError appends an Error-severity finding and marks the result failed.
func (r *VerificationResult) AddError(code, message, location string) {
	var loc *string
	if location != "" {
		loc = StringPtr(location)
	}
	r.Errors = append(r.Errors, VerificationError{
		Code:     code,
		Message:  message,
		Location: loc,
		Severity: SeverityError,
	})
	r.Success = false
}

func (r *VerificationResult) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// HasCode reports whether any error carries the given code.
func (r VerificationResult) HasCode(code string) bool {
	for _, e := range r.Errors {
		if e.Code == code {
			return true
		}
	}
	return false
}

// NamedResult pairs a result with the strategy or pass that produced it.
type NamedResult struct {
	Name   string             `json:"name" yaml:"name"`
	Result VerificationResult `json:"result" yaml:"result"`
}
