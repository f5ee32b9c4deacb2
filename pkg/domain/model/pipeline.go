package model

// PipelineContext is the input handed over by the release pipeline
type PipelineContext struct {
	RepositoryURL  string          `yaml:"repositoryUrl" json:"repositoryUrl"`
	Branch         Branch          `yaml:"branch" json:"branch"`
	Commits        []Commit        `yaml:"commits" json:"commits"`
	LastRelease    LastRelease     `yaml:"lastRelease" json:"lastRelease"`
	NextRelease    NextRelease     `yaml:"nextRelease" json:"nextRelease"`
	CurrentRelease CurrentRelease  `yaml:"currentRelease" json:"currentRelease"`
	Releases       []ReleaseRecord `yaml:"releases" json:"releases"`
	Errors         []PipelineError `yaml:"errors" json:"errors"`
	CWD            string          `yaml:"cwd" json:"cwd"`
}

// PipelineError is an error that made the release fail
type PipelineError struct {
	Message string `yaml:"message" json:"message"`
	Details string `yaml:"details" json:"details"`
}

// TemplateContext is the data available to comment, label and asset name templates
type TemplateContext struct {
	Branch      Branch
	LastRelease LastRelease
	NextRelease NextRelease
	Releases    []ReleaseRecord
	Commits     []Commit
	Issue       Target
	Errors      []PipelineError
}

// NewTemplateContext copies the pipeline fields templates may refer to
func NewTemplateContext(pctx *PipelineContext) TemplateContext {
	return TemplateContext{
		Branch:      pctx.Branch,
		LastRelease: pctx.LastRelease,
		NextRelease: pctx.NextRelease,
		Releases:    pctx.Releases,
		Commits:     pctx.Commits,
		Errors:      pctx.Errors,
	}
}

// WithIssue returns a copy bound to target
func (c TemplateContext) WithIssue(target Target) TemplateContext {
	c.Issue = target
	return c
}
