// Package serializer provides utilities for reading values files and writing
// manifest documents.
//
// The package supports two output formats:
//   - YAML: the native manifest format, written with a leading "---" document
//     separator so emitted documents can be concatenated into one stream
//   - JSON: machine-readable alternative for programmatic consumption
//
// Usage:
//
//	writer, err := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	if err != nil {
//	    return err
//	}
//	defer writer.Close() // Important: close to release file handles
//	if err := writer.Serialize(ctx, manifest); err != nil {
//	    return err
//	}
//
// Documents are rendered to memory first and written in a single call, so a
// render failure never produces partial output.
package serializer
