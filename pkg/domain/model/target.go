package model

// TargetKind distinguishes a pull request from a plain issue
type TargetKind int

const (
	TargetKindIssue TargetKind = iota
	TargetKindPullRequest
)

func (k TargetKind) String() string {
	if k == TargetKindPullRequest {
		return "pull_request"
	}
	return "issue"
}

// Target is an issue or pull request to comment on, label or close. Identity is Number.
type Target struct {
	Kind   TargetKind
	Number int
	// Body is only set for pull requests
	Body string
}

// NewPullRequestTarget creates a pull request target
func NewPullRequestTarget(number int, body string) Target {
	return Target{Kind: TargetKindPullRequest, Number: number, Body: body}
}

// NewIssueTarget creates a plain issue target
func NewIssueTarget(number int) Target {
	return Target{Kind: TargetKindIssue, Number: number}
}

// IsPullRequest reports whether the target is a pull request
func (t Target) IsPullRequest() bool {
	return t.Kind == TargetKindPullRequest
}

// PullRequest is a pull request as returned by the forge
type PullRequest struct {
	Number         int
	Title          string
	Body           string
	HTMLURL        string
	MergeCommitSHA string
}

// MergeTargets merges verified pull requests and referenced issue numbers into one
// sequence unique by number. A pull request wins over an issue with the same number.
// Pull requests come first, in input order, followed by the remaining issues.
func MergeTargets(prs []*PullRequest, issueNumbers []int) []Target {
	seen := make(map[int]struct{}, len(prs)+len(issueNumbers))
	targets := make([]Target, 0, len(prs)+len(issueNumbers))

	for _, pr := range prs {
		if pr == nil {
			continue
		}
		if _, ok := seen[pr.Number]; ok {
			continue
		}
		seen[pr.Number] = struct{}{}
		targets = append(targets, NewPullRequestTarget(pr.Number, pr.Body))
	}

	for _, n := range issueNumbers {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		targets = append(targets, NewIssueTarget(n))
	}

	return targets
}
