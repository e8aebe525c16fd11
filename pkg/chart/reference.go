/*
Copyright © 2026 chartgen authors
SPDX-License-Identifier: MIT
*/

package chart

import (
	"strings"

	"github.com/distribution/reference"

	apperrors "github.com/k3scfg/chartgen/pkg/errors"
)

// OCIScheme prefixes chart references that point at an OCI registry
// (e.g., "oci://ghcr.io/org/charts/nginx:1.2.3").
const OCIScheme = "oci://"

// Reference represents a parsed chart reference.
type Reference struct {
	// Raw is the reference exactly as supplied.
	Raw string
	// IsOCI indicates whether this is an OCI registry reference.
	IsOCI bool
	// Registry is the OCI registry host (e.g., "ghcr.io").
	// Only populated when IsOCI is true.
	Registry string
	// Repository is the chart repository path (e.g., "org/charts/nginx").
	// Only populated when IsOCI is true.
	Repository string
	// Tag is the chart tag, when present in an OCI reference.
	Tag string
	// Name is the final path component of the reference, used as the derived
	// release name when no explicit name is given.
	Name string
}

// ParseReference parses a chart reference string. OCI references are parsed as
// standard image references; anything else is treated as a repository-qualified
// or bare chart name whose final path segment names the chart.
func ParseReference(raw string) (*Reference, error) {
	trimmed := strings.TrimSpace(raw)

	if !strings.HasPrefix(trimmed, OCIScheme) {
		name := lastPathComponent(trimmed)
		if name == "" {
			return nil, apperrors.NewWithContext(apperrors.ErrCodeUnresolvableReleaseName,
				"chart reference has no trailing path component",
				map[string]any{"chart": raw})
		}
		return &Reference{Raw: raw, Name: name}, nil
	}

	// Strip oci:// and parse as standard image reference
	ref, err := reference.ParseNormalizedNamed(strings.TrimPrefix(trimmed, OCIScheme))
	if err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest,
			"invalid OCI chart reference", err,
			map[string]any{"chart": raw})
	}

	repoPath := reference.Path(ref)
	name := lastPathComponent(repoPath)
	if name == "" {
		return nil, apperrors.NewWithContext(apperrors.ErrCodeUnresolvableReleaseName,
			"OCI chart reference has no repository path",
			map[string]any{"chart": raw})
	}

	parsed := &Reference{
		Raw:        raw,
		IsOCI:      true,
		Registry:   reference.Domain(ref),
		Repository: repoPath,
		Name:       name,
	}
	if tagged, ok := ref.(reference.Tagged); ok {
		parsed.Tag = tagged.Tag()
	}
	return parsed, nil
}

// lastPathComponent returns the final slash-separated segment of s after
// stripping surrounding separators, or "" when none exists.
func lastPathComponent(s string) string {
	s = strings.Trim(s, "/")
	if i := strings.LastIndex(s, "/"); i >= 0 {
		return s[i+1:]
	}
	return s
}
