package types

// ManifestDependency is one dependency element of a package.xml.
type ManifestDependency struct {
	Name        string
	Scope       DependencyScope
	Constraints []Constraint
}

// ManifestRecord is the parsed content of a single package.xml.
type ManifestRecord struct {
	Path         string
	Name         string
	Version      string
	Dependencies []ManifestDependency
}

type DependencyResult struct {
	Dependencies  []string
	LocalPackages []string
	Constraints   map[string][]Constraint
	Manifests     int
	Diagnostics   []Diagnostic
}
