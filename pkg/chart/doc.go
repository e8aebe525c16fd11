// Package chart implements the argument-to-manifest mapping at the core of
// chartgen: validating helm-install style inputs, resolving the release
// identity, and assembling the HelmChart resource document.
//
// The pipeline is strictly linear and stateless:
//
//	req := &chart.InstallRequest{Chart: "stable/nginx-ingress"}
//	manifest, err := chart.Generate(req)
//
// Generate merges value overrides (pkg/values), validates the request, and
// builds the manifest. Nothing here touches the network or a cluster; the
// chart reference and repository URL are recorded in the output, not resolved.
package chart
