package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/ingest/parser"
)

var ErrInvalidSpec = errors.New("invalid architecture spec")

var validate = validator.New()

// Validate checks field-level rules of the document. Cross references
// (duplicate names, dangling endpoints) are checked by the domain model.
func Validate(s *parser.ArchSpec) error {
	if s == nil {
		return fmt.Errorf("%w: spec is nil", ErrInvalidSpec)
	}
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidSpec, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.TrimPrefix(fe.Namespace(), "ArchSpec.")
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s: %s=%s", field, fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s: %s", field, fe.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalidSpec, strings.Join(msgs, "; "))
}
