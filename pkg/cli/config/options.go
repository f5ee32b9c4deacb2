package config

import (
	"os"
	"slices"

	"github.com/m-mizutani/crier/pkg/domain/model"
	"github.com/m-mizutani/crier/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

var optionKeys = []string{
	"githubToken", "githubUrl", "proxy", "assets", "draftRelease",
	"successComment", "failComment", "failTitle", "labels", "assignees",
	"releasedLabels", "addReleases",
}

// Options holds the location of the TOML options file
type Options struct {
	Path string
}

// Flags returns CLI flags for the options file
func (c *Options) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Options file (TOML)",
			Destination: &c.Path,
			Sources:     cli.EnvVars("CRIER_CONFIG"),
		},
	}
}

// Load reads and normalizes the options file. Without a file every option takes its
// default. A githubToken in the file is returned separately.
func (c *Options) Load() (*model.Options, string, error) {
	if c.Path == "" {
		return &model.Options{}, "", nil
	}

	data, err := os.ReadFile(c.Path)
	if err != nil {
		return nil, "", goerr.Wrap(err, "failed to read options file", goerr.V("path", c.Path), goerr.T(types.ErrTagConfig))
	}

	return ParseOptions(data)
}

// ParseOptions normalizes TOML options into model.Options
func ParseOptions(data []byte) (*model.Options, string, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, "", goerr.Wrap(err, "failed to parse options file", goerr.T(types.ErrTagConfig))
	}

	for key := range raw {
		if !slices.Contains(optionKeys, key) {
			return nil, "", goerr.New("unknown option", goerr.V("option", key), goerr.T(types.ErrTagConfig))
		}
	}

	var opts model.Options
	var err error

	token, ok := optionalString(raw["githubToken"])
	if !ok {
		return nil, "", goerr.New("githubToken must be a string", goerr.T(types.ErrTagConfig))
	}
	if opts.GitHubURL, ok = optionalString(raw["githubUrl"]); !ok {
		return nil, "", goerr.New("githubUrl must be a string", goerr.V("value", raw["githubUrl"]), goerr.T(types.ErrTagConfig))
	}
	if opts.Proxy, ok = optionalString(raw["proxy"]); !ok {
		return nil, "", goerr.New("proxy must be a string", goerr.V("value", raw["proxy"]), goerr.T(types.ErrTagConfig))
	}

	if v, exists := raw["draftRelease"]; exists {
		b, ok := v.(bool)
		if !ok {
			return nil, "", goerr.New("draftRelease must be a boolean", goerr.V("value", v), goerr.T(types.ErrTagConfig))
		}
		opts.DraftRelease = b
	}

	if opts.Assets, err = model.ParseAssetSpecs(raw["assets"]); err != nil {
		return nil, "", err
	}
	if opts.SuccessComment, err = model.ParseTextOption("successComment", raw["successComment"]); err != nil {
		return nil, "", err
	}
	if opts.FailComment, err = model.ParseTextOption("failComment", raw["failComment"]); err != nil {
		return nil, "", err
	}
	if opts.FailTitle, err = model.ParseTextOption("failTitle", raw["failTitle"]); err != nil {
		return nil, "", err
	}
	if opts.Labels, err = model.ParseStringList("labels", raw["labels"]); err != nil {
		return nil, "", err
	}
	if opts.Assignees, err = model.ParseStringList("assignees", raw["assignees"]); err != nil {
		return nil, "", err
	}
	if opts.ReleasedLabels, err = model.ParseLabelsOption("releasedLabels", raw["releasedLabels"]); err != nil {
		return nil, "", err
	}
	if opts.AddReleases, err = model.ParseAddReleases(raw["addReleases"]); err != nil {
		return nil, "", err
	}

	return &opts, token, nil
}

func optionalString(v any) (string, bool) {
	if v == nil {
		return "", true
	}
	s, ok := v.(string)
	return s, ok
}
