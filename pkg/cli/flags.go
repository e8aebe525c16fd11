/*
Copyright © 2026 chartgen authors
SPDX-License-Identifier: MIT
*/

package cli

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/k3scfg/chartgen/pkg/serializer"
)

// Flags shared by output handling.
var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage: fmt.Sprintf("Output format (supported values: %s)",
			strings.Join(serializer.SupportedFormats(), ", ")),
	}
)
