package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k3scfg/chartgen/pkg/errors"
)

func TestParseReference(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		want     *Reference
		wantCode errors.ErrorCode
	}{
		{
			name: "repository qualified reference",
			raw:  "stable/nginx-ingress",
			want: &Reference{Raw: "stable/nginx-ingress", Name: "nginx-ingress"},
		},
		{
			name: "bare chart name",
			raw:  "nginx",
			want: &Reference{Raw: "nginx", Name: "nginx"},
		},
		{
			name: "deep path takes final segment",
			raw:  "org/team/charts/redis",
			want: &Reference{Raw: "org/team/charts/redis", Name: "redis"},
		},
		{
			name: "trailing slash is ignored",
			raw:  "stable/nginx/",
			want: &Reference{Raw: "stable/nginx/", Name: "nginx"},
		},
		{
			name: "oci reference with tag",
			raw:  "oci://ghcr.io/org/charts/nginx:1.2.3",
			want: &Reference{
				Raw:        "oci://ghcr.io/org/charts/nginx:1.2.3",
				IsOCI:      true,
				Registry:   "ghcr.io",
				Repository: "org/charts/nginx",
				Tag:        "1.2.3",
				Name:       "nginx",
			},
		},
		{
			name: "oci reference without tag",
			raw:  "oci://registry.example.com/charts/redis",
			want: &Reference{
				Raw:        "oci://registry.example.com/charts/redis",
				IsOCI:      true,
				Registry:   "registry.example.com",
				Repository: "charts/redis",
				Name:       "redis",
			},
		},
		{
			name:     "separators only",
			raw:      "///",
			wantCode: errors.ErrCodeUnresolvableReleaseName,
		},
		{
			name:     "invalid oci reference",
			raw:      "oci://UPPER/Bad Ref",
			wantCode: errors.ErrCodeInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseReference(tt.raw)

			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, errors.CodeOf(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
