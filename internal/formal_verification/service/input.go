package service

import (
	"errors"
	"fmt"

	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/domain"
	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/ingest/mapper"
	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/ingest/parser"
	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/ingest/validator"
	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/typesystem"
)

var ErrInvalidInput = errors.New("invalid input")

// Input is a validated architecture together with the named types its
// interfaces refer to.
type Input struct {
	Architecture *domain.Architecture
	Types        *typesystem.TypeSystem
}

func NewInput(arch *domain.Architecture, ts *typesystem.TypeSystem) *Input {
	if ts == nil {
		ts = typesystem.New()
	}
	return &Input{Architecture: arch, Types: ts}
}

// Load parses a YAML or JSON architecture document and validates it.
func Load(data []byte) (*Input, error) {
	s, err := parser.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return FromSpec(s)
}

func LoadFile(path string) (*Input, error) {
	s, err := parser.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return FromSpec(s)
}

func FromSpec(s *parser.ArchSpec) (*Input, error) {
	if err := validator.Validate(s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	arch := mapper.ToArchitecture(s)
	if err := arch.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return NewInput(arch, mapper.ToTypeSystem(s)), nil
}

// typeKeys renders the catalog in name order for fingerprinting.
func (in *Input) typeKeys() []string {
	defs := in.Types.Definitions()
	out := make([]string, 0, len(defs))
	for _, d := range defs {
		t := "<none>"
		if d.Type != nil {
			t = d.Type.String()
		}
		out = append(out, fmt.Sprintf("%s:%s=%s", d.Name, d.Kind, t))
	}
	return out
}
