package types

type ContentKind string

const (
	ContentKindText   ContentKind = "text"
	ContentKindBinary ContentKind = "binary"
)

type DependencyScope string

const (
	DependencyScopeAll   DependencyScope = "depend"
	DependencyScopeBuild DependencyScope = "build_depend"
	DependencyScopeRun   DependencyScope = "run_depend"
	DependencyScopeExec  DependencyScope = "exec_depend"
	DependencyScopeTest  DependencyScope = "test_depend"
)

type ConstraintOp string

const (
	ConstraintOpNone ConstraintOp = ""
	ConstraintOpEq   ConstraintOp = "="
	ConstraintOpGte  ConstraintOp = ">="
	ConstraintOpLte  ConstraintOp = "<="
	ConstraintOpGt   ConstraintOp = ">"
	ConstraintOpLt   ConstraintOp = "<"
)

type WorkspaceKind string

const (
	WorkspaceKindVolume     WorkspaceKind = "volume"
	WorkspaceKindDescriptor WorkspaceKind = "descriptor"
	WorkspaceKindMissing    WorkspaceKind = "missing"
)

// ReadErrorPolicy controls what the file selector does when a workspace
// file cannot be read.
type ReadErrorPolicy string

const (
	ReadErrorPolicyAbort ReadErrorPolicy = "abort"
	ReadErrorPolicySkip  ReadErrorPolicy = "skip"
)

type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatYAML OutputFormat = "yaml"
)
