package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/crier/pkg/cli/config"
	"github.com/m-mizutani/crier/pkg/domain/model"
)

func TestParseOptions(t *testing.T) {
	t.Run("full file", func(t *testing.T) {
		opts, token, err := config.ParseOptions([]byte(`
githubToken = "ghp_file"
githubUrl = "https://ghe.example.com"
draftRelease = true
successComment = false
failTitle = "Release is broken"
labels = "release"
assignees = ["alice", "bob"]
releasedLabels = ["released", "v{{.NextRelease.Version}}"]
addReleases = "bottom"

[[assets]]
path = "dist/*.tgz"
label = "Tarball"

[[assets]]
path = ["docs/*.pdf", "!docs/draft.pdf"]
name = "manual.pdf"
`))
		gt.NoError(t, err)
		gt.Equal(t, token, "ghp_file")
		gt.Equal(t, opts.GitHubURL, "https://ghe.example.com")
		gt.True(t, opts.DraftRelease)
		gt.True(t, opts.SuccessComment.Disabled)
		gt.Equal(t, opts.FailTitle, model.TextOption{Text: "Release is broken"})
		gt.Equal(t, opts.Labels, []string{"release"})
		gt.Equal(t, opts.Assignees, []string{"alice", "bob"})
		gt.Equal(t, opts.ReleasedLabels.Templates, []string{"released", "v{{.NextRelease.Version}}"})
		gt.Equal(t, opts.AddReleases, model.AddReleasesBottom)
		gt.Equal(t, opts.Assets, []model.AssetSpec{
			{Path: "dist/*.tgz", Label: "Tarball"},
			{Path: "docs/*.pdf", Name: "manual.pdf"},
			{Path: "!docs/draft.pdf", Name: "manual.pdf"},
		})
	})

	t.Run("empty file uses defaults", func(t *testing.T) {
		opts, token, err := config.ParseOptions(nil)
		gt.NoError(t, err)
		gt.Equal(t, token, "")
		gt.Equal(t, *opts, model.Options{})
	})

	t.Run("released labels can be disabled", func(t *testing.T) {
		opts, _, err := config.ParseOptions([]byte(`releasedLabels = false`))
		gt.NoError(t, err)
		gt.True(t, opts.ReleasedLabels.Disabled)
	})

	testCases := []struct {
		name string
		data string
	}{
		{"unknown key", `successComents = "typo"`},
		{"invalid toml", `labels = [`},
		{"draftRelease not boolean", `draftRelease = "yes"`},
		{"successComment true", `successComment = true`},
		{"empty label", `labels = [""]`},
		{"invalid addReleases", `addReleases = "middle"`},
		{"asset table without path", "[[assets]]\nname = \"x\""},
		{"githubUrl not string", `githubUrl = 1`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := config.ParseOptions([]byte(tc.data))
			gt.Error(t, err)
		})
	}
}

func TestOptions_Load(t *testing.T) {
	t.Run("no file", func(t *testing.T) {
		opts, _, err := (&config.Options{}).Load()
		gt.NoError(t, err)
		gt.Value(t, opts).NotNil()
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := (&config.Options{Path: filepath.Join(t.TempDir(), "none.toml")}).Load()
		gt.Error(t, err)
	})

	t.Run("reads the file", func(t *testing.T) {
		p := filepath.Join(t.TempDir(), "crier.toml")
		gt.NoError(t, os.WriteFile(p, []byte(`assets = "dist/app.zip"`), 0o600))

		opts, _, err := (&config.Options{Path: p}).Load()
		gt.NoError(t, err)
		gt.Equal(t, opts.Assets, []model.AssetSpec{{Path: "dist/app.zip"}})
	})
}

func TestParsePipelineContext(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		pctx, err := config.ParsePipelineContext([]byte(`
repositoryUrl: git@github.com:acme/rocket.git
branch:
  name: main
  type: release
  main: true
commits:
  - hash: abc123
    message: "fix: crash\n\nFixes #1"
nextRelease:
  name: v1.0.0
  gitTag: v1.0.0
  version: 1.0.0
  notes: "## Changes"
releases:
  - name: npm package
    url: https://npm.example/rocket
errors:
  - message: Invalid token
    details: Check it
cwd: /work
`))
		gt.NoError(t, err)
		gt.Equal(t, pctx.RepositoryURL, "git@github.com:acme/rocket.git")
		gt.True(t, pctx.Branch.Main)
		gt.Equal(t, pctx.Commits, []model.Commit{{Hash: "abc123", Message: "fix: crash\n\nFixes #1"}})
		gt.Equal(t, pctx.NextRelease.Version, "1.0.0")
		gt.Equal(t, pctx.Releases[0].URL, "https://npm.example/rocket")
		gt.Equal(t, pctx.Errors[0].Message, "Invalid token")
		gt.Equal(t, pctx.CWD, "/work")
	})

	t.Run("json", func(t *testing.T) {
		pctx, err := config.ParsePipelineContext([]byte(`{"repositoryUrl":"https://github.com/acme/rocket","nextRelease":{"gitTag":"v2.0.0"}}`))
		gt.NoError(t, err)
		gt.Equal(t, pctx.NextRelease.GitTag, "v2.0.0")

		wd, err := os.Getwd()
		gt.NoError(t, err)
		gt.Equal(t, pctx.CWD, wd)
	})

	t.Run("requires a repository URL", func(t *testing.T) {
		_, err := config.ParsePipelineContext([]byte(`branch: {name: main}`))
		gt.Error(t, err)
	})
}
