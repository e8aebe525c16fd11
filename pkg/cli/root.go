/*
Copyright © 2026 chartgen authors
SPDX-License-Identifier: MIT
*/

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/k3scfg/chartgen/pkg/chart"
	"github.com/k3scfg/chartgen/pkg/errors"
	"github.com/k3scfg/chartgen/pkg/logging"
	"github.com/k3scfg/chartgen/pkg/serializer"
)

const name = "chartgen"

var (
	// overridden during build with ldflags
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Root constructs the chartgen command.
func Root() *cli.Command {
	// The built-in version flag is left out: --version is the chart version
	// here, as in helm install. Build info goes into the description instead.
	return &cli.Command{
		Name:                  name,
		Usage:                 "Generate k3s HelmChart manifests from helm-install style arguments",
		ArgsUsage:             "CHART",
		EnableShellCompletion: true,
		Description: fmt.Sprintf(`Version: %s (commit %s, built %s)

Generates a k3s HelmChart custom-resource manifest from arguments that mirror
a helm install invocation and writes it to stdout. The manifest is consumed by
the cluster-side Helm controller, which performs the actual installation; this
command never talks to a cluster or a chart repository.

CHART is a chart reference: repository-qualified (stable/nginx-ingress), bare
(nginx), or an OCI registry reference (oci://ghcr.io/org/charts/nginx:1.2.3).

# Examples

Minimal manifest:
  chartgen stable/nginx-ingress --name nginx-ingress

Pin a version from a specific repository:
  chartgen nginx --repo https://charts.example.com --version 4.11.2

Override chart values (inline --set wins over --values files):
  chartgen nginx -f base-values.yaml -f prod-values.yaml \
    --set controller.kind=DaemonSet \
    --set controller.service.port=443

Install into a namespace other than the controller's own:
  chartgen nginx --namespace web

Save to a file for use as a k3s auto-deploying manifest:
  chartgen nginx --output /var/lib/rancher/k3s/server/manifests/nginx.yaml`,
			version, commit, date),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "name",
				Aliases: []string{"n"},
				Usage:   "Release name (default: final path segment of CHART)",
			},
			&cli.StringFlag{
				Name:  "namespace",
				Usage: "Namespace to install the release into (sets spec.targetNamespace)",
			},
			&cli.StringFlag{
				Name:  "controller-namespace",
				Usage: fmt.Sprintf("Namespace of the Helm controller owning the resource (default %q)", chart.DefaultNamespace),
			},
			&cli.StringFlag{
				Name:  "repo",
				Usage: "Chart repository URL where to locate the requested chart",
			},
			&cli.StringFlag{
				Name:  "version",
				Usage: "Exact chart version to install (default: latest)",
			},
			&cli.StringSliceFlag{
				Name:    "set",
				Aliases: []string{"set-string"},
				Usage:   "Set values on the command line (can repeat or separate values with commas: key1=val1,key2=val2)",
			},
			&cli.StringSliceFlag{
				Name:    "values",
				Aliases: []string{"f"},
				Usage:   "Path to a YAML values file (can repeat; later files override earlier ones)",
			},
			outputFlag,
			formatFlag,
		},
		Action: generate,
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return fmt.Errorf("unknown output format: %q (supported: %s)",
			outFormat, strings.Join(serializer.SupportedFormats(), ", "))
	}

	if cmd.Args().Len() > 1 {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"unexpected extra arguments after CHART",
			map[string]any{"args": cmd.Args().Slice()[1:]})
	}

	req := &chart.InstallRequest{
		Chart:               cmd.Args().First(),
		Name:                cmd.String("name"),
		Namespace:           cmd.String("namespace"),
		ControllerNamespace: cmd.String("controller-namespace"),
		Repo:                cmd.String("repo"),
		Version:             cmd.String("version"),
		SetArgs:             cmd.StringSlice("set"),
	}

	// Values files are parsed up front; the merge itself stays pure.
	for _, path := range cmd.StringSlice("values") {
		block, err := serializer.LoadValues(path)
		if err != nil {
			return err
		}
		req.ValueBlocks = append(req.ValueBlocks, block)
	}

	slog.Debug("generating manifest",
		"chart", req.Chart,
		"name", req.Name,
		"namespace", req.Namespace,
		"values_files", len(req.ValueBlocks),
		"set_args", len(req.SetArgs),
	)

	manifest, err := chart.Generate(req)
	if err != nil {
		return err
	}

	writer, err := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
	if err != nil {
		return err
	}
	defer writer.Close()

	return writer.Serialize(ctx, manifest)
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		cancel()
	}()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Debug("starting", "name", name, "version", version, "commit", commit, "date", date)

	if err := Root().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
