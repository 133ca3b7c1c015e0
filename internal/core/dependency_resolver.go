package core

import (
	"context"
	"runtime"
	"sort"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"rosws/internal/ports"
	"rosws/internal/types"
)

// DependencyResolver computes the dependencies a workspace needs from
// outside itself.
type DependencyResolver struct {
	Workspace  ports.WorkspacePort
	PackageXML ports.PackageXMLPort
	Workers    int
}

func NewDependencyResolver(workspace ports.WorkspacePort, pkgXML ports.PackageXMLPort) DependencyResolver {
	return DependencyResolver{
		Workspace:  workspace,
		PackageXML: pkgXML,
		Workers:    runtime.NumCPU(),
	}
}

func (r DependencyResolver) WithWorkers(workers int) DependencyResolver {
	if workers > 0 {
		r.Workers = workers
	}
	return r
}

type manifestOutcome struct {
	path   string
	record types.ManifestRecord
	err    error
}

// Resolve parses every package.xml below root and returns the declared
// dependencies minus the packages the workspace provides itself. A broken
// manifest is reported as a diagnostic and does not stop the others.
func (r DependencyResolver) Resolve(ctx context.Context, root string) (types.DependencyResult, error) {
	assert.NotEmpty(ctx, root, "workspace root must be set")
	paths, err := r.Workspace.FindPackageXML(root)
	if err != nil {
		return types.DependencyResult{}, err
	}
	sort.Strings(paths)

	outcomes, err := r.parseAll(ctx, paths)
	if err != nil {
		return types.DependencyResult{}, err
	}
	result := foldManifests(ctx, outcomes)
	log.Ctx(ctx).Debug().
		Str("root", root).
		Int("manifests", result.Manifests).
		Int("local_packages", len(result.LocalPackages)).
		Int("dependencies", len(result.Dependencies)).
		Msg("dependencies resolved")
	return result, nil
}

// parseAll parses manifests concurrently. Parse failures are kept in the
// outcome; only context cancellation fails the group.
func (r DependencyResolver) parseAll(ctx context.Context, paths []string) ([]manifestOutcome, error) {
	outcomes := make([]manifestOutcome, len(paths))
	group, groupCtx := errgroup.WithContext(ctx)
	workers := r.Workers
	if workers <= 0 {
		workers = 1
	}
	group.SetLimit(workers)
	for i, path := range paths {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			record, err := r.PackageXML.ParseManifest(path)
			outcomes[i] = manifestOutcome{path: path, record: record, err: err}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("manifest parsing interrupted").
			WithCause(err)
	}
	return outcomes, nil
}

func foldManifests(ctx context.Context, outcomes []manifestOutcome) types.DependencyResult {
	local := map[string]struct{}{}
	declared := map[string]struct{}{}
	constraints := map[string][]types.Constraint{}
	var diagnostics []types.Diagnostic
	parsed := 0

	for _, outcome := range outcomes {
		if outcome.err != nil {
			diagnostic := manifestDiagnostic(outcome.path, outcome.err)
			log.Ctx(ctx).Warn().Err(outcome.err).Str("path", outcome.path).Str("kind", string(diagnostic.Kind)).Msg("could not parse manifest")
			diagnostics = append(diagnostics, diagnostic)
			continue
		}
		parsed++
		local[outcome.record.Name] = struct{}{}
		for _, dep := range outcome.record.Dependencies {
			declared[dep.Name] = struct{}{}
			constraints[dep.Name] = append(constraints[dep.Name], dep.Constraints...)
		}
	}

	var closure []string
	for name := range declared {
		if _, ok := local[name]; ok {
			continue
		}
		closure = append(closure, name)
	}
	sort.Strings(closure)

	cache := newVersionCache()
	bounded := map[string][]types.Constraint{}
	for _, name := range closure {
		valid, invalid := normalizeConstraints(cache, constraints[name])
		for _, constraint := range invalid {
			log.Ctx(ctx).Warn().Str("dependency", name).Str("version", constraint.Version).Msg("ignoring invalid version constraint")
			diagnostics = append(diagnostics, types.Diagnostic{
				Kind:   types.DiagnosticInvalidVersion,
				Path:   name,
				Detail: constraint.String(),
			})
		}
		if len(valid) > 0 {
			bounded[name] = valid
		}
	}

	return types.DependencyResult{
		Dependencies:  nonNil(closure),
		LocalPackages: nonNil(sortedKeys(local)),
		Constraints:   bounded,
		Manifests:     parsed,
		Diagnostics:   diagnostics,
	}
}

// manifestDiagnostic classifies a per-manifest failure. A manifest that
// parsed but lacks its name is a structure problem; everything else,
// unreadable files included, counts as a parse problem.
func manifestDiagnostic(path string, err error) types.Diagnostic {
	kind := types.DiagnosticManifestParse
	if errbuilder.CodeOf(err) == errbuilder.CodeFailedPrecondition {
		kind = types.DiagnosticManifestStructure
	}
	return types.Diagnostic{Kind: kind, Path: path, Detail: err.Error()}
}

func sortedKeys(input map[string]struct{}) []string {
	keys := make([]string, 0, len(input))
	for key := range input {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
