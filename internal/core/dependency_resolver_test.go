package core

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rosws/internal/adapters"
	"rosws/internal/types"
)

func manifest(name string, body string) string {
	return fmt.Sprintf(`<?xml version="1.0"?>
<package format="3">
  <name>%s</name>
  <version>1.0.0</version>
%s
</package>
`, name, body)
}

func newTestResolver(fs afero.Fs) DependencyResolver {
	return NewDependencyResolver(adapters.NewWorkspaceAdapter(fs), adapters.NewPackageXMLAdapter(fs))
}

func TestResolveSubtractsLocalPackages(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeTree(t, fs, workspaceRoot, map[string]string{
		"pkg_a/package.xml": manifest("pkg_a", "  <depend>pkg_b</depend>\n  <depend>libfoo</depend>"),
		"pkg_b/package.xml": manifest("pkg_b", "  <depend>libbar</depend>"),
	})

	result, err := newTestResolver(fs).Resolve(t.Context(), workspaceRoot)
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"libbar", "libfoo"}, result.Dependencies); diff != "" {
		t.Fatalf("unexpected dependencies (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"pkg_a", "pkg_b"}, result.LocalPackages); diff != "" {
		t.Fatalf("unexpected local packages (-want +got):\n%s", diff)
	}
	assert.Equal(t, 2, result.Manifests)
	assert.Empty(t, result.Diagnostics)
}

func TestResolveCollectsAllDependencyTags(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeTree(t, fs, workspaceRoot, map[string]string{
		"pkg/package.xml": manifest("pkg", `
  <depend>rclcpp</depend>
  <build_depend>ament_cmake</build_depend>
  <run_depend>python3-yaml</run_depend>
  <exec_depend> std_msgs </exec_depend>
  <test_depend>ament_lint_auto</test_depend>
  <build_export_depend>not_collected</build_export_depend>
  <buildtool_depend>catkin</buildtool_depend>
  <depend></depend>
  <depend>   </depend>
  <exec_depend>rclcpp</exec_depend>
  <export>
    <build_depend>nested_is_ignored</build_depend>
  </export>`),
	})

	result, err := newTestResolver(fs).Resolve(t.Context(), workspaceRoot)
	require.NoError(t, err)
	expected := []string{"ament_cmake", "ament_lint_auto", "python3-yaml", "rclcpp", "std_msgs"}
	if diff := cmp.Diff(expected, result.Dependencies); diff != "" {
		t.Fatalf("unexpected dependencies (-want +got):\n%s", diff)
	}
}

func TestResolveToleratesMalformedManifests(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeTree(t, fs, workspaceRoot, map[string]string{
		"good/package.xml":     manifest("good", "  <depend>libgood</depend>"),
		"broken/package.xml":   "<package><name>broken</name><depend>libbroken</package>",
		"nameless/package.xml": "<package><depend>libnameless</depend></package>",
		"blank/package.xml":    "<package><name>  </name><depend>libblank</depend></package>",
		"trailing/package.xml": "<package><name>pkg_c</name><depend>libjunk</depend></package></package>",
	})

	result, err := newTestResolver(fs).Resolve(t.Context(), workspaceRoot)
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"libgood"}, result.Dependencies); diff != "" {
		t.Fatalf("unexpected dependencies (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1, result.Manifests)
	assert.NotContains(t, result.LocalPackages, "pkg_c")

	kinds := map[string]types.DiagnosticKind{}
	for _, diagnostic := range result.Diagnostics {
		kinds[diagnostic.Path] = diagnostic.Kind
	}
	expected := map[string]types.DiagnosticKind{
		filepath.Join(workspaceRoot, "broken", "package.xml"):   types.DiagnosticManifestParse,
		filepath.Join(workspaceRoot, "nameless", "package.xml"): types.DiagnosticManifestStructure,
		filepath.Join(workspaceRoot, "blank", "package.xml"):    types.DiagnosticManifestStructure,
		filepath.Join(workspaceRoot, "trailing", "package.xml"): types.DiagnosticManifestParse,
	}
	if diff := cmp.Diff(expected, kinds); diff != "" {
		t.Fatalf("unexpected diagnostics (-want +got):\n%s", diff)
	}
}

func TestResolveNeverReturnsLocalPackage(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeTree(t, fs, workspaceRoot, map[string]string{
		"core/package.xml":   manifest("core", "  <depend>roscpp</depend>"),
		"driver/package.xml": manifest("driver", "  <build_depend>core</build_depend>\n  <test_depend>core</test_depend>"),
		"self/package.xml":   manifest("self", "  <depend>self</depend>"),
	})

	result, err := newTestResolver(fs).Resolve(t.Context(), workspaceRoot)
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"roscpp"}, result.Dependencies); diff != "" {
		t.Fatalf("unexpected dependencies (-want +got):\n%s", diff)
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeTree(t, fs, workspaceRoot, map[string]string{
		"a/package.xml": manifest("a", "  <depend>zlib</depend>\n  <depend>boost</depend>"),
		"b/package.xml": manifest("b", "  <depend version_gte=\"1.2\">eigen</depend>"),
		"c/package.xml": "not xml at all",
	})
	resolver := newTestResolver(fs)

	first, err := resolver.Resolve(t.Context(), workspaceRoot)
	require.NoError(t, err)
	second, err := resolver.Resolve(t.Context(), workspaceRoot)
	require.NoError(t, err)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("resolution changed between runs (-first +second):\n%s", diff)
	}
}

func TestResolveWorkerCountDoesNotChangeResult(t *testing.T) {
	fs := afero.NewMemMapFs()
	files := map[string]string{}
	for i := 0; i < 25; i++ {
		name := fmt.Sprintf("pkg_%02d", i)
		body := fmt.Sprintf("  <depend>lib%02d</depend>\n  <depend>pkg_%02d</depend>", i, (i+1)%30)
		files[filepath.Join(name, "package.xml")] = manifest(name, body)
	}
	writeTree(t, fs, workspaceRoot, files)

	serial, err := newTestResolver(fs).WithWorkers(1).Resolve(t.Context(), workspaceRoot)
	require.NoError(t, err)
	parallel, err := newTestResolver(fs).WithWorkers(8).Resolve(t.Context(), workspaceRoot)
	require.NoError(t, err)
	if diff := cmp.Diff(serial, parallel); diff != "" {
		t.Fatalf("parallel resolution differs (-serial +parallel):\n%s", diff)
	}
	// pkg_24 depends on pkg_25, which is not part of the workspace.
	assert.Contains(t, serial.Dependencies, "pkg_25")
	assert.NotContains(t, serial.Dependencies, "pkg_24")
	assert.Len(t, serial.Dependencies, 26)
}

func TestResolveVersionConstraints(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeTree(t, fs, workspaceRoot, map[string]string{
		"a/package.xml": manifest("a", `
  <depend version_gte="1.2" version_lt="2.0">libfoo</depend>
  <exec_depend version_eq="not-a-version">libbar</exec_depend>
  <depend version_gte="0.1">b</depend>`),
		"b/package.xml": manifest("b", `  <build_depend version_gte="1.2">libfoo</build_depend>`),
	})

	result, err := newTestResolver(fs).Resolve(t.Context(), workspaceRoot)
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"libbar", "libfoo"}, result.Dependencies); diff != "" {
		t.Fatalf("unexpected dependencies (-want +got):\n%s", diff)
	}
	expected := map[string][]types.Constraint{
		"libfoo": {
			{Op: types.ConstraintOpLt, Version: "2.0"},
			{Op: types.ConstraintOpGte, Version: "1.2"},
		},
	}
	if diff := cmp.Diff(expected, result.Constraints); diff != "" {
		t.Fatalf("unexpected constraints (-want +got):\n%s", diff)
	}
	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, types.DiagnosticInvalidVersion, result.Diagnostics[0].Kind)
	assert.Equal(t, "libbar", result.Diagnostics[0].Path)
}

func TestResolveEmptyWorkspace(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(workspaceRoot, 0755))

	result, err := newTestResolver(fs).Resolve(t.Context(), workspaceRoot)
	require.NoError(t, err)
	if diff := cmp.Diff([]string{}, result.Dependencies); diff != "" {
		t.Fatalf("unexpected dependencies (-want +got):\n%s", diff)
	}
	assert.Equal(t, 0, result.Manifests)
}

func TestResolveMissingRoot(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, err := newTestResolver(fs).Resolve(t.Context(), "/does/not/exist")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestResolveCanceledContext(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeTree(t, fs, workspaceRoot, map[string]string{
		"a/package.xml": manifest("a", "  <depend>zlib</depend>"),
	})
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := newTestResolver(fs).Resolve(ctx, workspaceRoot)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInternal, errbuilder.CodeOf(err))
}
