package parser

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

func ParseYAML(path string) (*ArchSpec, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseYAMLBytes(b)
}

func ParseYAMLBytes(b []byte) (*ArchSpec, error) {
	var s ArchSpec
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return &s, nil
}

func ParseYAMLString(s string) (*ArchSpec, error) {
	return ParseYAMLBytes([]byte(s))
}
