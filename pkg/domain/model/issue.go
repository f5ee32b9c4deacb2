package model

// Issue is an issue as returned by the forge
type Issue struct {
	Number        int
	Title         string
	Body          string
	State         string
	HTMLURL       string
	IsPullRequest bool
}

// NewIssue is a request to open an issue
type NewIssue struct {
	Title     string
	Body      string
	Labels    []string
	Assignees []string
}

// Comment is a posted issue comment
type Comment struct {
	ID      int64
	HTMLURL string
}
