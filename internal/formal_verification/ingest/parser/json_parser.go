package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func ParseJSON(path string) (*ArchSpec, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseJSONBytes(b)
}

func ParseJSONBytes(b []byte) (*ArchSpec, error) {
	var s ArchSpec
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return &s, nil
}

// ParseBytes treats input starting with '{' as JSON and anything else as YAML.
func ParseBytes(b []byte) (*ArchSpec, error) {
	if t := bytes.TrimSpace(b); len(t) > 0 && t[0] == '{' {
		return ParseJSONBytes(b)
	}
	return ParseYAMLBytes(b)
}

// ParseFile picks the reader from the file extension.
func ParseFile(path string) (*ArchSpec, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ParseJSON(path)
	case ".yaml", ".yml":
		return ParseYAML(path)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseBytes(b)
}
