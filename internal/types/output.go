package types

// ContextIndexEntry describes one materialised build-context file.
type ContextIndexEntry struct {
	Path string      `yaml:"path"`
	Kind ContentKind `yaml:"kind"`
	Size int         `yaml:"size"`
}

type ContextIndex struct {
	Root    string              `yaml:"root"`
	Entries []ContextIndexEntry `yaml:"entries"`
}

type DependencyDocument struct {
	Workspace     string              `yaml:"workspace"`
	Dependencies  []string            `yaml:"dependencies"`
	LocalPackages []string            `yaml:"local_packages,omitempty"`
	Constraints   map[string][]string `yaml:"constraints,omitempty"`
}
