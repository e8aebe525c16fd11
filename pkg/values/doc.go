// Package values implements the value-override merge used to populate the
// valuesContent of a generated HelmChart manifest.
//
// Two kinds of input are combined into one nested mapping: pre-parsed value
// blocks (the contents of --values files) and inline key=value assignments
// (--set flags). Blocks are deep-merged in the order given, later blocks
// winning over earlier ones; inline assignments are applied last and win over
// every block. Deep merge combines nested mappings key-by-key; non-mapping
// values are replaced outright.
//
// The merge is a pure function: no I/O, deterministic for identical ordered
// inputs, and never mutates its arguments.
package values
