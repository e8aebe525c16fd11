package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/k3scfg/chartgen/pkg/errors"
)

// runGenerate executes the root command with the given arguments appended
// after the program name, writing output to a temp file, and returns the file
// contents.
func runGenerate(t *testing.T, args ...string) (string, error) {
	t.Helper()

	outPath := filepath.Join(t.TempDir(), "manifest.out")
	full := append([]string{name, "--output", outPath}, args...)

	err := Root().Run(context.Background(), full)
	if err != nil {
		// On failure no output may exist at all.
		_, statErr := os.Stat(outPath)
		require.True(t, os.IsNotExist(statErr), "failed invocation must not leave output behind")
		return "", err
	}

	data, readErr := os.ReadFile(outPath)
	require.NoError(t, readErr)
	return string(data), nil
}

func TestGenerate_MinimalManifest(t *testing.T) {
	out, err := runGenerate(t, "--name", "nginx-ingress", "stable/nginx-ingress")
	require.NoError(t, err)

	want := `---
apiVersion: helm.cattle.io/v1
kind: HelmChart
metadata:
  name: nginx-ingress
  namespace: kube-system
spec:
  chart: stable/nginx-ingress
`
	assert.Equal(t, want, out)
}

func TestGenerate_DerivedName(t *testing.T) {
	out, err := runGenerate(t, "stable/nginx-ingress")
	require.NoError(t, err)

	var m struct {
		Metadata struct {
			Name      string `yaml:"name"`
			Namespace string `yaml:"namespace"`
		} `yaml:"metadata"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &m))
	assert.Equal(t, "nginx-ingress", m.Metadata.Name)
	assert.Equal(t, "kube-system", m.Metadata.Namespace)
}

func TestGenerate_OptionalFields(t *testing.T) {
	out, err := runGenerate(t,
		"--namespace", "web",
		"--repo", "https://charts.example.com",
		"--version", "4.11.2",
		"nginx",
	)
	require.NoError(t, err)

	var m struct {
		Spec map[string]any `yaml:"spec"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &m))
	assert.Equal(t, "https://charts.example.com", m.Spec["repo"])
	assert.Equal(t, "4.11.2", m.Spec["version"])
	assert.Equal(t, "web", m.Spec["targetNamespace"])
}

func TestGenerate_NoValuesMeansNoValuesContent(t *testing.T) {
	out, err := runGenerate(t, "nginx")
	require.NoError(t, err)
	assert.NotContains(t, out, "valuesContent")
}

func TestGenerate_ValuePrecedence(t *testing.T) {
	valuesPath := filepath.Join(t.TempDir(), "values.yaml")
	require.NoError(t, os.WriteFile(valuesPath, []byte("a:\n  b: 1\n  keep: true\n"), 0644))

	out, err := runGenerate(t,
		"--values", valuesPath,
		"--set", "a.b=2",
		"nginx",
	)
	require.NoError(t, err)

	var m struct {
		Spec struct {
			ValuesContent string `yaml:"valuesContent"`
		} `yaml:"spec"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &m))

	var merged map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(m.Spec.ValuesContent), &merged))
	a := merged["a"].(map[string]any)
	assert.Equal(t, 2, a["b"], "inline --set must win over --values")
	assert.Equal(t, true, a["keep"], "untouched file values must survive")
}

func TestGenerate_ValuesFileOrdering(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.yaml")
	second := filepath.Join(dir, "second.yaml")
	require.NoError(t, os.WriteFile(first, []byte("tag: one\n"), 0644))
	require.NoError(t, os.WriteFile(second, []byte("tag: two\n"), 0644))

	out, err := runGenerate(t, "-f", first, "-f", second, "nginx")
	require.NoError(t, err)
	assert.Contains(t, out, "tag: two")
	assert.NotContains(t, out, "tag: one")
}

func TestGenerate_Errors(t *testing.T) {
	scalarValues := filepath.Join(t.TempDir(), "scalar.yaml")
	require.NoError(t, os.WriteFile(scalarValues, []byte("just a string\n"), 0644))

	tests := []struct {
		name     string
		args     []string
		wantCode errors.ErrorCode
	}{
		{
			name:     "missing chart reference",
			args:     nil,
			wantCode: errors.ErrCodeMissingChartReference,
		},
		{
			name:     "malformed set flag",
			args:     []string{"--set", "foo", "nginx"},
			wantCode: errors.ErrCodeMalformedAssignment,
		},
		{
			name:     "values file not a mapping",
			args:     []string{"--values", scalarValues, "nginx"},
			wantCode: errors.ErrCodeInvalidValueSource,
		},
		{
			name:     "missing values file",
			args:     []string{"--values", "does-not-exist.yaml", "nginx"},
			wantCode: errors.ErrCodeIO,
		},
		{
			name:     "unresolvable release name",
			args:     []string{"///"},
			wantCode: errors.ErrCodeUnresolvableReleaseName,
		},
		{
			name:     "extra positional arguments",
			args:     []string{"nginx", "redis"},
			wantCode: errors.ErrCodeInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runGenerate(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, errors.CodeOf(err))
		})
	}
}

func TestGenerate_UnknownFormat(t *testing.T) {
	err := Root().Run(context.Background(), []string{name, "--format", "xml", "nginx"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "supported")
}

func TestGenerate_JSONFormat(t *testing.T) {
	out, err := runGenerate(t, "--format", "json", "--name", "nginx", "nginx")
	require.NoError(t, err)

	assert.False(t, strings.HasPrefix(out, "---"), "JSON output has no document separator")

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, "helm.cattle.io/v1", m["apiVersion"])
	assert.Equal(t, "HelmChart", m["kind"])
}

func TestGenerate_CommaSeparatedSet(t *testing.T) {
	out, err := runGenerate(t, "--set", "a=1,b.c=true", "nginx")
	require.NoError(t, err)

	var m struct {
		Spec struct {
			ValuesContent string `yaml:"valuesContent"`
		} `yaml:"spec"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &m))

	var merged map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(m.Spec.ValuesContent), &merged))
	assert.Equal(t, 1, merged["a"])
	b := merged["b"].(map[string]any)
	assert.Equal(t, true, b["c"])
}

func TestGenerate_ControllerNamespace(t *testing.T) {
	out, err := runGenerate(t,
		"--namespace", "web",
		"--controller-namespace", "helm-system",
		"nginx",
	)
	require.NoError(t, err)

	var m struct {
		Metadata struct {
			Namespace string `yaml:"namespace"`
		} `yaml:"metadata"`
		Spec map[string]any `yaml:"spec"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &m))
	assert.Equal(t, "helm-system", m.Metadata.Namespace)
	assert.Equal(t, "web", m.Spec["targetNamespace"])
}
