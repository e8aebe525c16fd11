package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/k3scfg/chartgen/pkg/errors"
)

// Format represents the output format type
type Format string

const (
	// FormatYAML outputs data in YAML format
	FormatYAML Format = "yaml"
	// FormatJSON outputs data in JSON format
	FormatJSON Format = "json"
)

// documentSeparator precedes every YAML document so downstream tooling can
// concatenate multiple manifests into one stream.
const documentSeparator = "---\n"

func (f Format) IsUnknown() bool {
	switch f {
	case FormatYAML, FormatJSON:
		return false
	default:
		return true
	}
}

// SupportedFormats returns a list of all supported output formats
// for serialization.
func SupportedFormats() []string {
	return []string{
		string(FormatYAML),
		string(FormatJSON),
	}
}

// Writer handles serialization of manifest documents to various formats.
// Close must be called to release file handles when using NewFileWriterOrStdout.
type Writer struct {
	format Format
	output io.Writer
	closer io.Closer
}

// NewWriter creates a new Writer with the specified format and output destination.
// If output is nil, os.Stdout will be used.
// If format is unknown, defaults to YAML format.
func NewWriter(format Format, output io.Writer) *Writer {
	if output == nil {
		output = os.Stdout
	}
	if format.IsUnknown() {
		slog.Warn("unknown format, defaulting to YAML", "format", format)
		format = FormatYAML
	}
	return &Writer{
		format: format,
		output: output,
	}
}

// NewFileWriterOrStdout creates a new Writer that outputs to the specified file
// path in the given format. An empty path means stdout.
// Remember to call Close() on the returned Writer to ensure the file is properly closed.
func NewFileWriterOrStdout(format Format, path string) (*Writer, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return NewStdoutWriter(format), nil
	}

	file, err := os.Create(trimmed)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeIO,
			"failed to create output file", err,
			map[string]any{"path": trimmed})
	}

	if format.IsUnknown() {
		slog.Warn("unknown format, defaulting to YAML", "format", format)
		format = FormatYAML
	}

	return &Writer{
		format: format,
		output: file,
		closer: file,
	}, nil
}

// NewStdoutWriter creates a new Writer that outputs to stdout in the specified format.
func NewStdoutWriter(format Format) *Writer {
	if format.IsUnknown() {
		slog.Warn("unknown format, defaulting to YAML", "format", format)
		format = FormatYAML
	}
	return &Writer{
		format: format,
		output: os.Stdout,
	}
}

// Close releases any resources associated with the Writer.
// It's safe to call Close multiple times or on stdout-based writers.
func (w *Writer) Close() error {
	if w.closer != nil {
		return w.closer.Close()
	}
	return nil
}

// Serialize renders the given document in the configured format and writes it
// out in a single write, so a failed render never leaves partial output behind.
// Context is provided for consistency with long-running serializers; stdout and
// file writes are fast and blocking.
func (w *Writer) Serialize(ctx context.Context, doc any) error {
	var buf bytes.Buffer

	switch w.format {
	case FormatYAML:
		if err := w.renderYAML(&buf, doc); err != nil {
			return err
		}
	case FormatJSON:
		if err := w.renderJSON(&buf, doc); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported format: %s", w.format)
	}

	if _, err := w.output.Write(buf.Bytes()); err != nil {
		return errors.Wrap(errors.ErrCodeIO, "failed to write output", err)
	}
	return nil
}

func (w *Writer) renderYAML(buf *bytes.Buffer, doc any) error {
	buf.WriteString(documentSeparator)
	encoder := yaml.NewEncoder(buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to serialize to YAML: %w", err)
	}
	return encoder.Close()
}

func (w *Writer) renderJSON(buf *bytes.Buffer, doc any) error {
	encoder := json.NewEncoder(buf)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to serialize to JSON: %w", err)
	}
	return nil
}

// MarshalValues renders a merged configuration mapping as a YAML literal block,
// suitable for embedding as the valuesContent of a manifest.
func MarshalValues(config map[string]any) (LiteralString, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(config); err != nil {
		return "", fmt.Errorf("failed to serialize values: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return "", fmt.Errorf("failed to serialize values: %w", err)
	}
	return LiteralString(buf.String()), nil
}
