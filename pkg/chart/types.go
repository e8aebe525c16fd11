/*
Copyright © 2026 chartgen authors
SPDX-License-Identifier: MIT
*/

package chart

import "github.com/k3scfg/chartgen/pkg/serializer"

const (
	// APIVersion is the fixed apiVersion of every generated manifest.
	APIVersion = "helm.cattle.io/v1"
	// Kind is the fixed kind of every generated manifest.
	Kind = "HelmChart"
	// DefaultNamespace is used for metadata.namespace when none is supplied;
	// kube-system is where the k3s Helm controller runs.
	DefaultNamespace = "kube-system"
)

// InstallRequest is the parsed, raw command input. It is owned by a single
// invocation and never modified after construction.
type InstallRequest struct {
	// Chart is the chart reference (required). Plain (stable/nginx-ingress),
	// bare (nginx), or an oci:// registry reference.
	Chart string
	// Name is the release name override. Empty means derive from Chart.
	Name string
	// Namespace is the target namespace for the release. Empty means the
	// controller decides; metadata.namespace then falls back to DefaultNamespace.
	Namespace string
	// ControllerNamespace overrides metadata.namespace only, for clusters
	// where the Helm controller watches a namespace other than kube-system.
	ControllerNamespace string
	// Repo is the chart repository URL (optional pass-through).
	Repo string
	// Version is the chart version pin (optional pass-through).
	Version string
	// SetArgs holds raw --set assignments in flag order.
	SetArgs []string
	// ValueBlocks holds the pre-parsed contents of --values files in flag order.
	ValueBlocks []any
}

// ResolvedIdentity is the release name and resource namespace derived during
// validation. Always fully populated after Validate succeeds.
type ResolvedIdentity struct {
	Name      string
	Namespace string
}

// Manifest is the HelmChart resource document emitted by the generator.
// Field order here fixes the key order of the serialized output.
type Manifest struct {
	APIVersion string   `yaml:"apiVersion" json:"apiVersion"`
	Kind       string   `yaml:"kind" json:"kind"`
	Metadata   Metadata `yaml:"metadata" json:"metadata"`
	Spec       Spec     `yaml:"spec" json:"spec"`
}

// Metadata holds the object metadata of the generated resource.
type Metadata struct {
	Name      string `yaml:"name" json:"name"`
	Namespace string `yaml:"namespace" json:"namespace"`
}

// Spec mirrors the HelmChart field definitions understood by the k3s Helm
// controller. Optional fields are omitted entirely rather than emitted empty.
type Spec struct {
	Chart           string                   `yaml:"chart" json:"chart"`
	Repo            string                   `yaml:"repo,omitempty" json:"repo,omitempty"`
	Version         string                   `yaml:"version,omitempty" json:"version,omitempty"`
	TargetNamespace string                   `yaml:"targetNamespace,omitempty" json:"targetNamespace,omitempty"`
	ValuesContent   serializer.LiteralString `yaml:"valuesContent,omitempty" json:"valuesContent,omitempty"`
}
