package serializer

import "gopkg.in/yaml.v3"

// LiteralString is a string that serializes to YAML as a literal block scalar
// ("|"), preserving newlines. Embedded manifests (valuesContent) use this so
// downstream tooling receives the nested document verbatim rather than a
// quoted single-line string. In JSON it renders as a plain string.
type LiteralString string

// MarshalYAML implements yaml.Marshaler.
func (s LiteralString) MarshalYAML() (any, error) {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!str",
		Style: yaml.LiteralStyle,
		Value: string(s),
	}, nil
}
