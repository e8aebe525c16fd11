// Package cli implements the command-line interface for the chartgen tool.
//
// # Overview
//
// chartgen translates a helm-install style invocation into a k3s HelmChart
// custom-resource manifest. It is a pure, single-invocation transformer:
// the manifest is written to stdout (or a file) and the actual installation is
// left to the cluster-side Helm controller that consumes the resource.
//
// # Usage
//
//	chartgen [flags] CHART
//
// Flags:
//
//	--name, -n              Release name (default: derived from CHART)
//	--namespace             Target namespace for the release
//	--controller-namespace  Namespace of the Helm controller (default kube-system)
//	--repo                  Chart repository URL
//	--version               Chart version pin
//	--set                   Inline value override, repeatable (key1=val1,key2=val2)
//	--values, -f            YAML values file, repeatable
//	--output, -o            Output file path (default: stdout)
//	--format, -t            Output format: yaml, json (default: yaml)
//
// Value precedence: later --values files override earlier ones, and every
// --set assignment overrides every file value at the same path.
//
// # Environment Variables
//
//	LOG_LEVEL  Set logging verbosity (debug, info, warn, error)
//
// # Exit Codes
//
//	0  Success (manifest written)
//	1  Any failure (invalid arguments, merge or validation error, write error)
//
// The CLI uses the urfave/cli/v3 framework and delegates to:
//   - pkg/chart - request validation and manifest assembly
//   - pkg/values - value override merging
//   - pkg/serializer - values-file parsing and manifest output
//   - pkg/logging - structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/k3scfg/chartgen/pkg/cli.version=1.0.0'"
package cli
