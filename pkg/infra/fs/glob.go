package fs

import (
	"context"
	iofs "io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/m-mizutani/crier/pkg/domain/interfaces"
	"github.com/m-mizutani/crier/pkg/domain/model"
	"github.com/m-mizutani/crier/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Resolver expands asset glob patterns on the local filesystem
type Resolver struct{}

var _ interfaces.AssetResolver = (*Resolver)(nil)

func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve expands specs relative to cwd. Patterns starting with "!" exclude matches of
// every other pattern. Matched directories are expanded to the files below them. An asset spec
// matching nothing is returned with Missing set so that it can be reported.
func (r *Resolver) Resolve(ctx context.Context, cwd string, specs []model.AssetSpec) ([]model.ResolvedAsset, error) {
	if cwd == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, goerr.Wrap(err, "failed to get working directory")
		}
		cwd = wd
	}

	var includes []model.AssetSpec
	var excludes []string
	for _, spec := range specs {
		if p, ok := strings.CutPrefix(spec.Path, "!"); ok {
			excludes = append(excludes, toSlash(cwd, p))
			continue
		}
		includes = append(includes, spec)
	}
	for _, ex := range excludes {
		if !doublestar.ValidatePattern(ex) {
			return nil, goerr.New("invalid exclusion pattern", goerr.V("pattern", ex), goerr.T(types.ErrTagConfig))
		}
	}

	seen := map[string]struct{}{}
	var resolved []model.ResolvedAsset
	for _, spec := range includes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		matches, err := r.glob(cwd, spec.Path)
		if err != nil {
			return nil, err
		}
		matches = slices.DeleteFunc(matches, func(m string) bool {
			return excluded(excludes, toSlash(cwd, m))
		})

		ctxlog.From(ctx).Debug("Resolved asset pattern", "pattern", spec.Path, "matches", len(matches))

		var assets []model.ResolvedAsset
		switch len(matches) {
		case 0:
			assets = []model.ResolvedAsset{{
				Path:    absolute(cwd, spec.Path),
				Name:    spec.Name,
				Label:   spec.Label,
				Missing: true,
			}}
		case 1:
			assets = []model.ResolvedAsset{{Path: matches[0], Name: spec.Name, Label: spec.Label}}
		default:
			for _, m := range matches {
				assets = append(assets, model.ResolvedAsset{Path: m, Name: filepath.Base(m), Label: spec.Label})
			}
		}

		for _, a := range assets {
			if _, ok := seen[a.Path]; ok {
				continue
			}
			seen[a.Path] = struct{}{}
			resolved = append(resolved, a)
		}
	}

	return resolved, nil
}

// glob returns absolute paths of the files matching pattern, with directories expanded
func (r *Resolver) glob(cwd, pattern string) ([]string, error) {
	var matches []string

	if rel := path.Clean(filepath.ToSlash(pattern)); !filepath.IsAbs(pattern) && iofs.ValidPath(rel) {
		found, err := doublestar.Glob(os.DirFS(cwd), rel)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid asset pattern", goerr.V("pattern", pattern), goerr.T(types.ErrTagConfig))
		}
		for _, f := range found {
			matches = append(matches, filepath.Join(cwd, filepath.FromSlash(f)))
		}
	} else {
		found, err := doublestar.FilepathGlob(absolute(cwd, pattern))
		if err != nil {
			return nil, goerr.Wrap(err, "invalid asset pattern", goerr.V("pattern", pattern), goerr.T(types.ErrTagConfig))
		}
		matches = found
	}

	var files []string
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || !info.IsDir() {
			files = append(files, m)
			continue
		}

		err = filepath.WalkDir(m, func(p string, d iofs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, goerr.Wrap(err, "failed to expand asset directory", goerr.V("dir", m))
		}
	}

	slices.Sort(files)
	return slices.Compact(files), nil
}

func excluded(patterns []string, p string) bool {
	for _, ex := range patterns {
		if doublestar.MatchUnvalidated(ex, p) {
			return true
		}
	}
	return false
}

func absolute(cwd, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(cwd, p)
}

// toSlash returns p relative to cwd in slash form when it lies below cwd
func toSlash(cwd, p string) string {
	abs := absolute(cwd, p)
	if rel, err := filepath.Rel(cwd, abs); err == nil && !strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(rel)
	}
	return filepath.ToSlash(abs)
}
