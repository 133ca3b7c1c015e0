package adapters

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"rosws/internal/ports"
	"rosws/internal/types"
)

const (
	contextIndexFile     = "context.yaml"
	dependencyTextFile   = "rosdeps.txt"
	dependencyYAMLFile   = "rosdeps.yaml"
	outputFilePermission = 0644
	outputDirPermission  = 0755
)

type OutputFileAdapter struct {
	Dir string
	fs  afero.Fs
}

func NewOutputFileAdapter(fs afero.Fs, dir string) OutputFileAdapter {
	return OutputFileAdapter{Dir: dir, fs: fs}
}

// WriteContext materialises every entry under Dir using its virtual path
// and writes a context.yaml index next to it.
func (a OutputFileAdapter) WriteContext(files types.ContextMap) error {
	if _, err := a.ensurePath(contextIndexFile); err != nil {
		return err
	}
	keys := make([]string, 0, len(files))
	for key := range files {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	index := types.ContextIndex{Root: types.VirtualRoot}
	for _, key := range keys {
		content := files[key]
		target := filepath.Join(a.Dir, key)
		if err := a.fs.MkdirAll(filepath.Dir(target), outputDirPermission); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to create context directory").
				WithCause(err)
		}
		if err := afero.WriteFile(a.fs, target, content.Bytes(), outputFilePermission); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to write context file: " + key).
				WithCause(err)
		}
		index.Entries = append(index.Entries, types.ContextIndexEntry{
			Path: filepath.ToSlash(key),
			Kind: content.Kind,
			Size: content.Size(),
		})
	}
	return a.writeYAML(contextIndexFile, index)
}

func (a OutputFileAdapter) WriteDependencies(workspace string, result types.DependencyResult, format types.OutputFormat) error {
	switch format {
	case types.OutputFormatText, "":
		path, err := a.ensurePath(dependencyTextFile)
		if err != nil {
			return err
		}
		var lines []string
		for _, dep := range result.Dependencies {
			lines = append(lines, dep+"\n")
		}
		return a.writeFile(path, []byte(strings.Join(lines, "")))
	case types.OutputFormatYAML:
		doc := types.DependencyDocument{
			Workspace:     workspace,
			Dependencies:  result.Dependencies,
			LocalPackages: result.LocalPackages,
		}
		if doc.Dependencies == nil {
			doc.Dependencies = []string{}
		}
		if len(result.Constraints) > 0 {
			doc.Constraints = map[string][]string{}
			for name, constraints := range result.Constraints {
				for _, constraint := range constraints {
					doc.Constraints[name] = append(doc.Constraints[name], constraint.String())
				}
			}
		}
		return a.writeYAML(dependencyYAMLFile, doc)
	default:
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unsupported output format: " + string(format))
	}
}

func (a OutputFileAdapter) writeYAML(filename string, value any) error {
	path, err := a.ensurePath(filename)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(value)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode " + filename).
			WithCause(err)
	}
	return a.writeFile(path, data)
}

func (a OutputFileAdapter) writeFile(path string, data []byte) error {
	if err := afero.WriteFile(a.fs, path, data, outputFilePermission); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write output file").
			WithCause(err)
	}
	return nil
}

func (a OutputFileAdapter) ensurePath(filename string) (string, error) {
	if a.Dir == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is empty")
	}
	if err := a.fs.MkdirAll(a.Dir, outputDirPermission); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}
	return filepath.Join(a.Dir, filename), nil
}

var _ ports.OutputPort = OutputFileAdapter{}
