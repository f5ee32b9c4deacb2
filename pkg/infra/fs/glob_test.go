package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/crier/pkg/domain/model"
	"github.com/m-mizutani/crier/pkg/infra/fs"
)

func setupTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, p := range []string{
		"dist/app.js",
		"dist/app.js.map",
		"dist/lib/util.js",
		"docs/README.md",
		"CHANGELOG.md",
	} {
		full := filepath.Join(dir, filepath.FromSlash(p))
		gt.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		gt.NoError(t, os.WriteFile(full, []byte(p), 0o600))
	}
	return dir
}

func paths(cwd string, assets []model.ResolvedAsset) []string {
	out := make([]string, len(assets))
	for i, a := range assets {
		rel, _ := filepath.Rel(cwd, a.Path)
		out[i] = filepath.ToSlash(rel)
	}
	return out
}

func TestResolver_Resolve(t *testing.T) {
	ctx := context.Background()
	r := fs.NewResolver()

	t.Run("single file keeps name and label", func(t *testing.T) {
		dir := setupTree(t)
		assets, err := r.Resolve(ctx, dir, []model.AssetSpec{
			{Path: "CHANGELOG.md", Name: "changes.md", Label: "Changes"},
		})
		gt.NoError(t, err)
		gt.A(t, assets).Length(1)
		gt.Equal(t, assets[0].Name, "changes.md")
		gt.Equal(t, assets[0].Label, "Changes")
		gt.False(t, assets[0].Missing)
	})

	t.Run("multiple matches are named by basename", func(t *testing.T) {
		dir := setupTree(t)
		assets, err := r.Resolve(ctx, dir, []model.AssetSpec{
			{Path: "dist/*.js*", Name: "ignored", Label: "Bundle"},
		})
		gt.NoError(t, err)
		gt.Equal(t, paths(dir, assets), []string{"dist/app.js", "dist/app.js.map"})
		gt.Equal(t, assets[1].Name, "app.js.map")
		gt.Equal(t, assets[1].Label, "Bundle")
	})

	t.Run("directories are expanded", func(t *testing.T) {
		dir := setupTree(t)
		assets, err := r.Resolve(ctx, dir, []model.AssetSpec{{Path: "dist"}})
		gt.NoError(t, err)
		gt.Equal(t, paths(dir, assets), []string{"dist/app.js", "dist/app.js.map", "dist/lib/util.js"})
	})

	t.Run("exclusions apply to every pattern", func(t *testing.T) {
		dir := setupTree(t)
		assets, err := r.Resolve(ctx, dir, []model.AssetSpec{
			{Path: "dist/**/*"},
			{Path: "!**/*.map"},
		})
		gt.NoError(t, err)
		gt.Equal(t, paths(dir, assets), []string{"dist/app.js", "dist/lib/util.js"})
	})

	t.Run("unmatched pattern is reported as missing", func(t *testing.T) {
		dir := setupTree(t)
		assets, err := r.Resolve(ctx, dir, []model.AssetSpec{
			{Path: "CHANGELOG.md"},
			{Path: "build/*.zip", Name: "bundle.zip"},
		})
		gt.NoError(t, err)
		gt.A(t, assets).Length(2)
		gt.True(t, assets[1].Missing)
		gt.Equal(t, assets[1].Path, filepath.Join(dir, "build/*.zip"))
		gt.Equal(t, assets[1].Name, "bundle.zip")
	})

	t.Run("duplicates are dropped", func(t *testing.T) {
		dir := setupTree(t)
		assets, err := r.Resolve(ctx, dir, []model.AssetSpec{
			{Path: "CHANGELOG.md", Name: "first"},
			{Path: "*.md", Name: "second"},
		})
		gt.NoError(t, err)
		gt.A(t, assets).Length(1)
		gt.Equal(t, assets[0].Name, "first")
	})

	t.Run("absolute paths", func(t *testing.T) {
		dir := setupTree(t)
		assets, err := r.Resolve(ctx, t.TempDir(), []model.AssetSpec{
			{Path: filepath.Join(dir, "docs", "*.md")},
		})
		gt.NoError(t, err)
		gt.A(t, assets).Length(1)
		gt.Equal(t, assets[0].Path, filepath.Join(dir, "docs", "README.md"))
	})

	t.Run("invalid pattern", func(t *testing.T) {
		dir := setupTree(t)
		_, err := r.Resolve(ctx, dir, []model.AssetSpec{{Path: "dist/[.js"}})
		gt.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		dir := setupTree(t)
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := r.Resolve(cctx, dir, []model.AssetSpec{{Path: "*.md"}})
		gt.Error(t, err)
	})
}
