package adapters

import (
	"testing"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rosws/internal/types"
)

const testPackageXMLWithROSTags = `<?xml version="1.0"?>
<package format="3">
  <name> my_node </name>
  <version>1.0.0</version>
  <description>Test package</description>

  <depend>rclcpp</depend>
  <depend>  </depend>

  <exec_depend>fmt</exec_depend>
  <build_depend version_gte="3.4" version_lt="5.0">opencv</build_depend>
  <run_depend>roslaunch</run_depend>

  <build_export_depend>rosidl_default_runtime</build_export_depend>
  <buildtool_depend>ament_cmake</buildtool_depend>

  <test_depend>ament_lint_auto</test_depend>

  <export>
    <depend>nested_should_be_ignored</depend>
  </export>
</package>
`

func writeManifest(t *testing.T, fs afero.Fs, path string, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644))
}

func TestParseManifestDependencyTags(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeManifest(t, fs, "/ws/my_node/package.xml", testPackageXMLWithROSTags)

	record, err := NewPackageXMLAdapter(fs).ParseManifest("/ws/my_node/package.xml")
	require.NoError(t, err)

	want := types.ManifestRecord{
		Path:    "/ws/my_node/package.xml",
		Name:    "my_node",
		Version: "1.0.0",
		Dependencies: []types.ManifestDependency{
			{Name: "rclcpp", Scope: types.DependencyScopeAll},
			{
				Name:  "opencv",
				Scope: types.DependencyScopeBuild,
				Constraints: []types.Constraint{
					{Op: types.ConstraintOpLt, Version: "5.0"},
					{Op: types.ConstraintOpGte, Version: "3.4"},
				},
			},
			{Name: "roslaunch", Scope: types.DependencyScopeRun},
			{Name: "fmt", Scope: types.DependencyScopeExec},
			{Name: "ament_lint_auto", Scope: types.DependencyScopeTest},
		},
	}
	if diff := cmp.Diff(want, record); diff != "" {
		t.Fatalf("unexpected manifest record (-want +got):\n%s", diff)
	}
}

func TestParseManifestErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    errbuilder.ErrCode
		message string
	}{
		{
			name:    "malformed xml",
			content: "<package><name>broken</name>",
			code:    errbuilder.CodeInvalidArgument,
			message: "failed to parse package.xml",
		},
		{
			name:    "extra closing tag after root",
			content: "<package><name>pkg_c</name><depend>libjunk</depend></package></package>",
			code:    errbuilder.CodeInvalidArgument,
			message: "failed to parse package.xml",
		},
		{
			name:    "second element after root",
			content: "<package><name>pkg_c</name><depend>libjunk</depend></package><other>",
			code:    errbuilder.CodeInvalidArgument,
			message: "failed to parse package.xml",
		},
		{
			name:    "text after root",
			content: "<package><name>pkg_c</name><depend>libjunk</depend></package>garbage",
			code:    errbuilder.CodeInvalidArgument,
			message: "failed to parse package.xml",
		},
		{
			name:    "empty file",
			content: "",
			code:    errbuilder.CodeInvalidArgument,
			message: "failed to parse package.xml",
		},
		{
			name:    "missing name",
			content: "<package><depend>libfoo</depend></package>",
			code:    errbuilder.CodeFailedPrecondition,
			message: "package.xml is missing required name",
		},
		{
			name:    "blank name",
			content: "<package><name>   </name></package>",
			code:    errbuilder.CodeFailedPrecondition,
			message: "package.xml is missing required name",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			writeManifest(t, fs, "/ws/pkg/package.xml", tt.content)

			_, err := NewPackageXMLAdapter(fs).ParseManifest("/ws/pkg/package.xml")
			require.Error(t, err)
			if diff := cmp.Diff(tt.code, errbuilder.CodeOf(err)); diff != "" {
				t.Fatalf("unexpected error code (-want +got):\n%s", diff)
			}
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestParseManifestTrailingCommentsAllowed(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeManifest(t, fs, "/ws/pkg/package.xml", "<package><name>pkg</name></package>\n<!-- generated -->\n<?pi done?>\n")

	record, err := NewPackageXMLAdapter(fs).ParseManifest("/ws/pkg/package.xml")
	require.NoError(t, err)
	assert.Equal(t, "pkg", record.Name)
}

func TestParseManifestFirstNameWins(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeManifest(t, fs, "/ws/pkg/package.xml",
		"<package><name>first</name><version>1.0</version><name>second</name><version>2.0</version></package>")

	record, err := NewPackageXMLAdapter(fs).ParseManifest("/ws/pkg/package.xml")
	require.NoError(t, err)
	assert.Equal(t, "first", record.Name)
	assert.Equal(t, "1.0", record.Version)
}

func TestParseManifestMissingFile(t *testing.T) {
	_, err := NewPackageXMLAdapter(afero.NewMemMapFs()).ParseManifest("/ws/none/package.xml")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestParseManifestCacheInvalidatesOnChange(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := "/ws/pkg/package.xml"
	writeManifest(t, fs, path, "<package><name>first</name></package>")

	adapter := NewPackageXMLAdapter(fs)
	record, err := adapter.ParseManifest(path)
	require.NoError(t, err)
	assert.Equal(t, "first", record.Name)

	record, err = adapter.ParseManifest(path)
	require.NoError(t, err)
	assert.Equal(t, "first", record.Name)

	writeManifest(t, fs, path, "<package><name>second_name</name></package>")
	require.NoError(t, fs.Chtimes(path, time.Now(), time.Now().Add(time.Minute)))
	record, err = adapter.ParseManifest(path)
	require.NoError(t, err)
	assert.Equal(t, "second_name", record.Name)
}
