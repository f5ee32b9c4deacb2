package types

import "github.com/m-mizutani/goerr/v2"

// Version is overwritten by -ldflags at build time
var Version = "dev"

const (
	// ReleaseName is the name reported for the GitHub release record and used to
	// recognize it among the records of every release channel.
	ReleaseName = "GitHub release"

	// TrackingIssueMarker is embedded in the body of issues opened for a failing
	// release so that later runs can find and close them.
	TrackingIssueMarker = "<!-- crier:github -->"

	// CommitChunkSize is the number of commits looked up in one GraphQL query.
	// GitHub rejects queries requesting more nodes than this at a level.
	CommitChunkSize = 100

	// DefaultConcurrency bounds in-flight requests of one fan-out batch.
	DefaultConcurrency = 10

	// PerPage is the page size for paginated REST and GraphQL listings.
	PerPage = 100
)

// GitHubToken is a credential. Values of this type are masked in logs.
type GitHubToken string

var (
	ErrTagConfig = goerr.NewTag("config")
	ErrTagAuth   = goerr.NewTag("auth")
)
