package config

import (
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/m-mizutani/crier/pkg/domain/model"
	"github.com/m-mizutani/crier/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Pipeline holds the location of the pipeline context file
type Pipeline struct {
	Path string
}

// Flags returns CLI flags for the pipeline context
func (c *Pipeline) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "context",
			Usage:       "Pipeline context file (YAML or JSON), - for stdin",
			Value:       "-",
			Destination: &c.Path,
			Sources:     cli.EnvVars("CRIER_CONTEXT"),
		},
	}
}

// Load reads the pipeline context. An empty cwd is set to the working directory.
func (c *Pipeline) Load() (*model.PipelineContext, error) {
	var data []byte
	var err error
	if c.Path == "" || c.Path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(c.Path)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read pipeline context", goerr.V("path", c.Path), goerr.T(types.ErrTagConfig))
	}

	return ParsePipelineContext(data)
}

// ParsePipelineContext decodes a YAML (or JSON) pipeline context
func ParsePipelineContext(data []byte) (*model.PipelineContext, error) {
	var pctx model.PipelineContext
	if err := yaml.Unmarshal(data, &pctx); err != nil {
		return nil, goerr.Wrap(err, "failed to parse pipeline context", goerr.T(types.ErrTagConfig))
	}

	if pctx.RepositoryURL == "" {
		return nil, goerr.New("repositoryUrl is required in pipeline context", goerr.T(types.ErrTagConfig))
	}

	if pctx.CWD == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, goerr.Wrap(err, "failed to get working directory")
		}
		pctx.CWD = wd
	}

	return &pctx, nil
}
