package core

import (
	"context"
	"os"
	"path/filepath"
	"unicode/utf8"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"rosws/internal/shared"
	"rosws/internal/types"
)

const (
	manifestFileName = "package.xml"
	gitDirName       = ".git"
)

// FileSelector decides which workspace files go into the build context.
type FileSelector struct {
	FS         afero.Fs
	ReadPolicy types.ReadErrorPolicy
}

func NewFileSelector(fs afero.Fs) FileSelector {
	return FileSelector{FS: fs, ReadPolicy: types.ReadErrorPolicyAbort}
}

func (s FileSelector) WithReadPolicy(policy types.ReadErrorPolicy) FileSelector {
	if policy == "" {
		policy = types.ReadErrorPolicyAbort
	}
	s.ReadPolicy = policy
	return s
}

type selection struct {
	root         string
	packagesOnly bool
	files        types.ContextMap
	diagnostics  []types.Diagnostic
}

// Select walks root depth-first and returns the build-context entries.
// With packagesOnly set, only files at or below a directory containing
// package.xml are kept.
func (s FileSelector) Select(ctx context.Context, root string, packagesOnly bool) (types.SelectionResult, error) {
	assert.NotEmpty(ctx, root, "workspace root must be set")
	info, err := s.FS.Stat(root)
	if err != nil {
		return types.SelectionResult{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("workspace root not found: " + root).
			WithCause(err)
	}
	if !info.IsDir() {
		return types.SelectionResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("workspace root is not a directory: " + root)
	}

	sel := &selection{
		root:         root,
		packagesOnly: packagesOnly,
		files:        types.ContextMap{},
	}
	if err := s.walkDir(ctx, sel, root, false); err != nil {
		return types.SelectionResult{}, err
	}
	log.Ctx(ctx).Debug().
		Str("root", root).
		Bool("packages_only", packagesOnly).
		Int("files", len(sel.files)).
		Int("diagnostics", len(sel.diagnostics)).
		Msg("workspace files selected")
	return types.SelectionResult{Files: sel.files, Diagnostics: sel.diagnostics}, nil
}

// walkDir receives the membership flag by value. Once an ancestor is a
// package the flag stays true for the whole subtree, nested manifests
// included.
func (s FileSelector) walkDir(ctx context.Context, sel *selection, dir string, isPackageMember bool) error {
	if filepath.Base(dir) == gitDirName {
		return nil
	}
	if !isPackageMember {
		isPackageMember = s.containsManifest(dir)
	}
	entries, err := afero.ReadDir(s.FS, dir)
	if err != nil {
		if s.ReadPolicy == types.ReadErrorPolicySkip && dir != sel.root {
			s.recordReadSkip(ctx, sel, dir, err)
			return nil
		}
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to list workspace directory: " + dir).
			WithCause(err)
	}
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		switch {
		case entry.Mode()&os.ModeSymlink != 0:
			s.skipSymlink(ctx, sel, path)
		case entry.IsDir():
			if err := s.walkDir(ctx, sel, path, isPackageMember); err != nil {
				return err
			}
		default:
			if err := s.visitFile(ctx, sel, path, isPackageMember); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s FileSelector) containsManifest(dir string) bool {
	exists, err := afero.Exists(s.FS, filepath.Join(dir, manifestFileName))
	return err == nil && exists
}

func (s FileSelector) visitFile(ctx context.Context, sel *selection, path string, isPackageMember bool) error {
	if sel.packagesOnly && !isPackageMember {
		return nil
	}
	virtual, ok := shared.VirtualPath(sel.root, path)
	if !ok {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("file escapes workspace root: " + path)
	}
	data, err := afero.ReadFile(s.FS, path)
	if err != nil {
		if s.ReadPolicy == types.ReadErrorPolicySkip {
			s.recordReadSkip(ctx, sel, path, err)
			return nil
		}
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read workspace file: " + path).
			WithCause(err)
	}
	sel.files[virtual] = classifyContent(data)
	return nil
}

func (s FileSelector) recordReadSkip(ctx context.Context, sel *selection, path string, err error) {
	log.Ctx(ctx).Warn().Err(err).Str("path", path).Msg("skipping unreadable path")
	sel.diagnostics = append(sel.diagnostics, types.Diagnostic{
		Kind:   types.DiagnosticFileReadSkipped,
		Path:   path,
		Detail: err.Error(),
	})
}

func (s FileSelector) skipSymlink(ctx context.Context, sel *selection, path string) {
	target := ""
	if reader, ok := s.FS.(afero.LinkReader); ok {
		if link, err := reader.ReadlinkIfPossible(path); err == nil {
			target = link
		}
	}
	log.Ctx(ctx).Warn().Str("path", path).Str("target", target).Msg("could not copy symlink")
	sel.diagnostics = append(sel.diagnostics, types.Diagnostic{
		Kind:   types.DiagnosticSymlinkSkipped,
		Path:   path,
		Detail: target,
	})
}

// classifyContent keeps valid UTF-8 as text and everything else as raw
// bytes.
func classifyContent(data []byte) types.FileContent {
	if utf8.Valid(data) {
		return types.TextContent(string(data))
	}
	return types.BinaryContent(data)
}
