/*
Copyright © 2026 chartgen authors
SPDX-License-Identifier: MIT
*/

package chart

import (
	"strings"

	"github.com/k3scfg/chartgen/pkg/serializer"
	"github.com/k3scfg/chartgen/pkg/values"
)

// Build assembles the manifest from an already validated request, the resolved
// identity, and the merged value configuration. Optional spec fields are set
// only when the corresponding input was supplied; mergedConfig renders into
// valuesContent only when non-empty.
func Build(req *InstallRequest, id *ResolvedIdentity, mergedConfig map[string]any) (*Manifest, error) {
	m := &Manifest{
		APIVersion: APIVersion,
		Kind:       Kind,
		Metadata: Metadata{
			Name:      id.Name,
			Namespace: id.Namespace,
		},
		Spec: Spec{
			Chart:           strings.TrimSpace(req.Chart),
			Repo:            strings.TrimSpace(req.Repo),
			Version:         strings.TrimSpace(req.Version),
			TargetNamespace: strings.TrimSpace(req.Namespace),
		},
	}

	if len(mergedConfig) > 0 {
		content, err := serializer.MarshalValues(mergedConfig)
		if err != nil {
			return nil, err
		}
		m.Spec.ValuesContent = content
	}

	return m, nil
}

// Generate runs the full transformation for one request: merge value
// overrides, validate and resolve the identity, and build the manifest.
func Generate(req *InstallRequest) (*Manifest, error) {
	mergedConfig, err := values.Merge(req.SetArgs, req.ValueBlocks)
	if err != nil {
		return nil, err
	}

	id, err := Validate(req)
	if err != nil {
		return nil, err
	}

	return Build(req, id, mergedConfig)
}
