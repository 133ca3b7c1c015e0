package types

type DiagnosticKind string

const (
	DiagnosticSymlinkSkipped    DiagnosticKind = "symlink_skipped"
	DiagnosticManifestParse     DiagnosticKind = "manifest_parse"
	DiagnosticManifestStructure DiagnosticKind = "manifest_structure"
	DiagnosticFileReadSkipped   DiagnosticKind = "file_read_skipped"
	DiagnosticInvalidVersion    DiagnosticKind = "invalid_version"
)

// Diagnostic is an advisory, non-fatal finding recorded during a walk or a
// resolution. Diagnostics never change the returned files or dependencies.
type Diagnostic struct {
	Kind   DiagnosticKind
	Path   string
	Detail string
}
