package serializer

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/k3scfg/chartgen/pkg/errors"
)

// LoadValues reads and parses a YAML values file into untyped structured data.
// Mappings decode to map[string]any, sequences to []any, scalars to their
// natural Go types. The caller is responsible for rejecting non-mapping
// top-level documents; this function only handles the file and parse mechanics.
func LoadValues(path string) (any, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeIO,
			"failed to open values file", err,
			map[string]any{"path": path})
	}
	defer file.Close()

	return ParseValues(file, path)
}

// ParseValues parses YAML values from a reader. The source string is only used
// for error context.
func ParseValues(r io.Reader, source string) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeIO,
			"failed to read values", err,
			map[string]any{"source": source})
	}

	var parsed any
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidValueSource,
			"failed to parse values as YAML", err,
			map[string]any{"source": source})
	}

	return parsed, nil
}
