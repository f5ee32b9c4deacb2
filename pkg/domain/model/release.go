package model

import (
	"fmt"
	"strings"

	"github.com/m-mizutani/crier/pkg/domain/types"
)

// Branch is the release branch as configured in the pipeline
type Branch struct {
	Name    string `yaml:"name" json:"name"`
	Type    string `yaml:"type" json:"type"`
	Main    bool   `yaml:"main" json:"main"`
	Channel string `yaml:"channel" json:"channel"`
}

// IsPrerelease reports whether releases from this branch are marked as prerelease
func (b Branch) IsPrerelease() bool {
	return b.Type == "prerelease" || (b.Type == "release" && !b.Main)
}

// LastRelease is the previous release on the branch
type LastRelease struct {
	GitTag  string `yaml:"gitTag" json:"gitTag"`
	Version string `yaml:"version" json:"version"`
}

// NextRelease is the release being published
type NextRelease struct {
	Name    string `yaml:"name" json:"name"`
	GitTag  string `yaml:"gitTag" json:"gitTag"`
	Notes   string `yaml:"notes" json:"notes"`
	Version string `yaml:"version" json:"version"`
	Channel string `yaml:"channel" json:"channel"`
}

// CurrentRelease is the release being added to a channel
type CurrentRelease struct {
	GitTag  string `yaml:"gitTag" json:"gitTag"`
	Channel string `yaml:"channel" json:"channel"`
}

// ReleaseRecord is what a release channel reports back to the pipeline
type ReleaseRecord struct {
	Name string `yaml:"name" json:"name"`
	URL  string `yaml:"url" json:"url,omitempty"`
	ID   int64  `yaml:"id" json:"id,omitempty"`
}

// ReleaseDescriptor is sent verbatim to the create/update release operation
type ReleaseDescriptor struct {
	TagName         string
	TargetCommitish string
	Name            string
	Body            string
	Prerelease      bool
}

// NewReleaseDescriptor builds the descriptor of the next release
func NewReleaseDescriptor(branch Branch, next NextRelease) ReleaseDescriptor {
	return ReleaseDescriptor{
		TagName:         next.GitTag,
		TargetCommitish: branch.Name,
		Name:            next.Name,
		Body:            next.Notes,
		Prerelease:      branch.IsPrerelease(),
	}
}

// Release is a release object on the forge
type Release struct {
	ID         int64
	TagName    string
	Name       string
	Body       string
	Draft      bool
	Prerelease bool
	HTMLURL    string
	UploadURL  string
}

// ReleasePatch holds fields to change on an existing release. Nil fields are untouched.
type ReleasePatch struct {
	TagName    *string
	Name       *string
	Body       *string
	Draft      *bool
	Prerelease *bool
}

// ReleaseState is a state of the draft/publish state machine
type ReleaseState int

const (
	ReleaseStateNone ReleaseState = iota
	ReleaseStateDraftCreated
	ReleaseStatePublished
	ReleaseStateDraft
)

func (s ReleaseState) String() string {
	switch s {
	case ReleaseStateNone:
		return "none"
	case ReleaseStateDraftCreated:
		return "draft_created"
	case ReleaseStatePublished:
		return "published"
	case ReleaseStateDraft:
		return "draft"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// IsTerminal reports whether no further transition is allowed
func (s ReleaseState) IsTerminal() bool {
	return s == ReleaseStatePublished || s == ReleaseStateDraft
}

// PublishResult is the outcome of the publish state machine
type PublishResult struct {
	Record ReleaseRecord
	State  ReleaseState
	Assets []AssetResult
}

// ReleaseLinks renders links to every release record except the GitHub one.
// It returns an empty string when there is nothing to link.
func ReleaseLinks(records []ReleaseRecord) string {
	var lines []string
	for _, r := range records {
		if r.Name == types.ReleaseName {
			continue
		}
		if r.URL != "" {
			lines = append(lines, fmt.Sprintf("- [%s](%s)", r.Name, r.URL))
		} else {
			lines = append(lines, fmt.Sprintf("- `%s`", r.Name))
		}
	}

	if len(lines) == 0 {
		return ""
	}
	return "This release is also available on:\n" + strings.Join(lines, "\n")
}

// MergeReleaseNotes places links above or below notes, separated by a rule
func MergeReleaseNotes(notes, links string, pos AddReleases) string {
	if pos == AddReleasesTop {
		return links + "\n---\n" + notes
	}
	return notes + "\n---\n" + links
}
