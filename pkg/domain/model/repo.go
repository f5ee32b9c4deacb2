package model

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/m-mizutani/crier/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Repo identifies a repository on the forge
type Repo struct {
	Owner string
	Name  string
}

// FullName returns "owner/name"
func (r Repo) FullName() string {
	return r.Owner + "/" + r.Name
}

func (r Repo) String() string {
	return r.FullName()
}

// Equal compares repositories case-insensitively as GitHub does
func (r Repo) Equal(other Repo) bool {
	return strings.EqualFold(r.Owner, other.Owner) && strings.EqualFold(r.Name, other.Name)
}

var scpLikeURL = regexp.MustCompile(`^[\w.-]+@([^:/]+):(.+)$`)

// ParseRepositoryURL extracts owner and name from a git remote URL. Accepted forms:
// git@host:owner/repo.git, https://host/owner/repo(.git), git+https://..., ssh://git@host/owner/repo.git
func ParseRepositoryURL(raw string) (Repo, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "git+")

	var path string
	if m := scpLikeURL.FindStringSubmatch(s); m != nil {
		path = m[2]
	} else {
		u, err := url.Parse(s)
		if err != nil || u.Host == "" {
			return Repo{}, goerr.New("invalid repository URL",
				goerr.V("repository_url", raw), goerr.T(types.ErrTagConfig))
		}
		path = u.Path
	}

	path = strings.TrimSuffix(strings.Trim(path, "/"), ".git")
	segments := strings.Split(path, "/")
	if len(segments) < 2 || segments[len(segments)-2] == "" || segments[len(segments)-1] == "" {
		return Repo{}, goerr.New("repository URL does not contain owner and name",
			goerr.V("repository_url", raw), goerr.T(types.ErrTagConfig))
	}

	return Repo{
		Owner: segments[len(segments)-2],
		Name:  segments[len(segments)-1],
	}, nil
}

// Repository is the forge's view of a repository
type Repository struct {
	Repo
	HTMLURL string
	CanPush bool
}
