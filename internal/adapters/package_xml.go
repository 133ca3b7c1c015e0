package adapters

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/afero"

	"rosws/internal/ports"
	"rosws/internal/types"
)

type PackageXMLAdapter struct {
	fs    afero.Fs
	mu    sync.Mutex
	cache map[string]packageXMLCacheEntry
}

func NewPackageXMLAdapter(fs afero.Fs) *PackageXMLAdapter {
	return &PackageXMLAdapter{fs: fs, cache: map[string]packageXMLCacheEntry{}}
}

// packageXML mirrors the direct children of the <package> root that the
// resolver cares about. Nested elements with the same tag (for example
// inside <export>) are not matched.
type packageXML struct {
	Names    []string `xml:"name"`
	Versions []string `xml:"version"`

	// REP-127 / REP-140 / REP-149 dependency tags
	Depend      []dependElement `xml:"depend"`
	BuildDepend []dependElement `xml:"build_depend"`
	RunDepend   []dependElement `xml:"run_depend"`
	ExecDepend  []dependElement `xml:"exec_depend"`
	TestDepend  []dependElement `xml:"test_depend"`
}

type dependElement struct {
	Value      string `xml:",chardata"`
	VersionLt  string `xml:"version_lt,attr"`
	VersionLte string `xml:"version_lte,attr"`
	VersionEq  string `xml:"version_eq,attr"`
	VersionGte string `xml:"version_gte,attr"`
	VersionGt  string `xml:"version_gt,attr"`
}

type packageXMLCacheEntry struct {
	modTime time.Time
	size    int64
	record  types.ManifestRecord
}

func (a *PackageXMLAdapter) ParseManifest(path string) (types.ManifestRecord, error) {
	info, err := a.fs.Stat(path)
	if err != nil {
		return types.ManifestRecord{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read package.xml: " + path).
			WithCause(err)
	}
	a.mu.Lock()
	if entry, ok := a.cache[path]; ok && entry.modTime.Equal(info.ModTime()) && entry.size == info.Size() {
		a.mu.Unlock()
		return entry.record, nil
	}
	a.mu.Unlock()

	content, err := afero.ReadFile(a.fs, path)
	if err != nil {
		return types.ManifestRecord{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read package.xml: " + path).
			WithCause(err)
	}
	record, err := decodePackageXML(path, content)
	if err != nil {
		return types.ManifestRecord{}, err
	}

	a.mu.Lock()
	a.cache[path] = packageXMLCacheEntry{modTime: info.ModTime(), size: info.Size(), record: record}
	a.mu.Unlock()
	return record, nil
}

func decodePackageXML(path string, content []byte) (types.ManifestRecord, error) {
	var pkg packageXML
	decoder := xml.NewDecoder(bytes.NewReader(content))
	err := decoder.Decode(&pkg)
	if err == nil {
		err = ensureDocumentEnd(decoder)
	}
	if err != nil {
		return types.ManifestRecord{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse package.xml: " + path).
			WithCause(err)
	}
	// The first <name> and <version> win when a manifest repeats them.
	name := firstValue(pkg.Names)
	if name == "" {
		return types.ManifestRecord{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("package.xml is missing required name: " + path)
	}
	return types.ManifestRecord{
		Path:         path,
		Name:         name,
		Version:      firstValue(pkg.Versions),
		Dependencies: collectDependencies(&pkg),
	}, nil
}

// ensureDocumentEnd rejects anything but whitespace, comments and
// processing instructions after the root element.
func ensureDocumentEnd(decoder *xml.Decoder) error {
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		switch t := token.(type) {
		case xml.StartElement:
			return fmt.Errorf("junk after document element: <%s>", t.Name.Local)
		case xml.EndElement:
			return fmt.Errorf("junk after document element: </%s>", t.Name.Local)
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return fmt.Errorf("junk after document element: %q", string(t))
			}
		}
	}
}

func firstValue(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return strings.TrimSpace(values[0])
}

// collectDependencies flattens the five dependency tags into records,
// skipping elements whose text is empty after trimming.
func collectDependencies(pkg *packageXML) []types.ManifestDependency {
	var deps []types.ManifestDependency
	groups := []struct {
		scope    types.DependencyScope
		elements []dependElement
	}{
		{types.DependencyScopeAll, pkg.Depend},
		{types.DependencyScopeBuild, pkg.BuildDepend},
		{types.DependencyScopeRun, pkg.RunDepend},
		{types.DependencyScopeExec, pkg.ExecDepend},
		{types.DependencyScopeTest, pkg.TestDepend},
	}
	for _, group := range groups {
		for _, element := range group.elements {
			name := strings.TrimSpace(element.Value)
			if name == "" {
				continue
			}
			deps = append(deps, types.ManifestDependency{
				Name:        name,
				Scope:       group.scope,
				Constraints: element.constraints(),
			})
		}
	}
	return deps
}

func (e dependElement) constraints() []types.Constraint {
	attrs := []struct {
		op    types.ConstraintOp
		value string
	}{
		{types.ConstraintOpLt, e.VersionLt},
		{types.ConstraintOpLte, e.VersionLte},
		{types.ConstraintOpEq, e.VersionEq},
		{types.ConstraintOpGte, e.VersionGte},
		{types.ConstraintOpGt, e.VersionGt},
	}
	var constraints []types.Constraint
	for _, attr := range attrs {
		if value := strings.TrimSpace(attr.value); value != "" {
			constraints = append(constraints, types.Constraint{Op: attr.op, Version: value})
		}
	}
	return constraints
}

var _ ports.PackageXMLPort = (*PackageXMLAdapter)(nil)
