/*
Copyright © 2026 chartgen authors
SPDX-License-Identifier: MIT
*/

package chart

import (
	"strings"

	"k8s.io/apimachinery/pkg/util/validation"

	apperrors "github.com/k3scfg/chartgen/pkg/errors"
)

// Validate checks an InstallRequest for mutual consistency and resolves the
// release identity. The chart reference is required; the release name falls
// back to the final path component of the reference, and the resource
// namespace falls back to DefaultNamespace. Names and namespaces must satisfy
// the DNS-1123 rules the API server enforces on the resulting object.
//
// No network or filesystem access occurs here.
func Validate(req *InstallRequest) (*ResolvedIdentity, error) {
	if req == nil {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, "install request is required")
	}

	if strings.TrimSpace(req.Chart) == "" {
		return nil, apperrors.New(apperrors.ErrCodeMissingChartReference, "chart reference is required")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		ref, err := ParseReference(req.Chart)
		if err != nil {
			return nil, err
		}
		name = ref.Name
	}
	if errs := validation.IsDNS1123Subdomain(name); len(errs) > 0 {
		return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"release name must be a valid DNS-1123 subdomain",
			map[string]any{"name": name, "problems": errs})
	}

	if err := validateNamespace("target namespace", req.Namespace); err != nil {
		return nil, err
	}
	if err := validateNamespace("controller namespace", req.ControllerNamespace); err != nil {
		return nil, err
	}

	// metadata.namespace: controller namespace wins, then the target
	// namespace, then the default. spec.targetNamespace is handled by the
	// builder and only ever reflects an explicitly supplied target.
	namespace := strings.TrimSpace(req.ControllerNamespace)
	if namespace == "" {
		namespace = strings.TrimSpace(req.Namespace)
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}

	if err := validateNonBlank("repository URL", req.Repo); err != nil {
		return nil, err
	}
	if err := validateNonBlank("chart version", req.Version); err != nil {
		return nil, err
	}

	return &ResolvedIdentity{Name: name, Namespace: namespace}, nil
}

func validateNamespace(what, ns string) error {
	trimmed := strings.TrimSpace(ns)
	if trimmed == "" {
		return nil
	}
	if errs := validation.IsDNS1123Label(trimmed); len(errs) > 0 {
		return apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			what+" must be a valid DNS-1123 label",
			map[string]any{"namespace": trimmed, "problems": errs})
	}
	return nil
}

// validateNonBlank rejects values that are present but hold only whitespace.
func validateNonBlank(what, value string) error {
	if value != "" && strings.TrimSpace(value) == "" {
		return apperrors.New(apperrors.ErrCodeInvalidRequest, what+" must not be blank")
	}
	return nil
}
