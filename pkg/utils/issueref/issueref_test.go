package issueref_test

import (
	"testing"

	"github.com/m-mizutani/crier/pkg/domain/model"
	"github.com/m-mizutani/crier/pkg/utils/issueref"
	"github.com/m-mizutani/gt"
)

var repo = model.Repo{Owner: "owner", Name: "repo"}

func TestParser_ClosedIssues(t *testing.T) {
	p := issueref.New("ghe.example.com")

	tests := []struct {
		name string
		text string
		want []int
	}{
		{name: "short reference", text: "fix #1", want: []int{1}},
		{name: "no reference", text: "no ref", want: nil},
		{name: "other repository", text: "Closes other/repo#2", want: nil},
		{name: "same repository slug", text: "closes owner/repo#34", want: []int{34}},
		{name: "slug is case-insensitive", text: "Closes Owner/Repo#8", want: []int{8}},
		{name: "full URL", text: "resolves https://github.com/owner/repo/issues/12", want: []int{12}},
		{name: "pull URL", text: "Fixed https://github.com/owner/repo/pull/13", want: []int{13}},
		{name: "enterprise URL", text: "fixes https://ghe.example.com/owner/repo/issues/14", want: []int{14}},
		{name: "unknown host", text: "fixes https://gitlab.com/owner/repo/issues/15", want: nil},
		{name: "URL of other repository", text: "fixes https://github.com/other/repo/issues/16", want: nil},
		{name: "keyword with colon", text: "Fixes: #3", want: []int{3}},
		{name: "list of references", text: "fixes #1, #2 and #3", want: []int{1, 2, 3}},
		{name: "ampersand", text: "resolve #4 & #5", want: []int{4, 5}},
		{name: "multiple keywords", text: "fix #1\n\nCloses #7, other/repo#8", want: []int{1, 7}},
		{name: "mention without keyword", text: "see #9", want: nil},
		{name: "keyword inside a word", text: "prefix #10", want: nil},
		{name: "duplicates", text: "fix #1 closes #1", want: []int{1}},
		{name: "trailing text", text: "fixes #21abc", want: nil},
		{name: "keyword on previous line", text: "fix\n#22", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.ClosedIssues(tt.text, repo)
			gt.Equal(t, got, tt.want)
		})
	}
}

func TestParser_References(t *testing.T) {
	p := issueref.New()

	refs := p.References("Closes other/repo#2 and fixes #3")
	gt.Equal(t, refs, []issueref.Reference{
		{Slug: "other/repo", Number: 2},
		{Number: 3},
	})
}

func TestParser_ClosedIssuesIn(t *testing.T) {
	p := issueref.New()

	// commit messages of one release plus a PR body
	got := p.ClosedIssuesIn([]string{"fix #1", "no ref", "Closes other/repo#2", "closes #1"}, repo)
	gt.Equal(t, got, []int{1})
}

func TestParser_Deterministic(t *testing.T) {
	p := issueref.New()
	text := "fixes #5, #3 and #4\ncloses #3"

	first := p.ClosedIssues(text, repo)
	for range 10 {
		gt.Equal(t, p.ClosedIssues(text, repo), first)
	}
	gt.Equal(t, first, []int{5, 3, 4})
}
