package ports

import "rosws/internal/types"

// PackageXMLPort parses package.xml manifests.
type PackageXMLPort interface {
	// ParseManifest reads one package.xml and returns its name, version
	// and the dependencies declared through <depend>, <build_depend>,
	// <run_depend>, <exec_depend> and <test_depend>.
	ParseManifest(path string) (types.ManifestRecord, error)
}

// WorkspacePort discovers and classifies workspace roots.
type WorkspacePort interface {
	FindPackageXML(root string) ([]string, error)
	Classify(root string) (types.WorkspaceKind, error)
}
