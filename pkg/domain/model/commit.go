package model

// Commit is a unit of change included in the release
type Commit struct {
	Hash    string `yaml:"hash" json:"hash"`
	Message string `yaml:"message" json:"message"`
}

// CommitHashes returns the hashes of commits in order
func CommitHashes(commits []Commit) []string {
	hashes := make([]string, 0, len(commits))
	for _, c := range commits {
		if c.Hash != "" {
			hashes = append(hashes, c.Hash)
		}
	}
	return hashes
}
