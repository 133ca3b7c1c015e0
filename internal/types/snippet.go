package types

// SnippetArgs is the argument set handed to the Dockerfile snippet
// templates.
type SnippetArgs struct {
	HomeDir       string
	Rosdeps       []string
	InstallDeps   bool
	BuildSource   bool
	RosMasterURI  string
	BuildToolArgs []string
}
