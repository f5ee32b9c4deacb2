package config

import (
	"net/url"
	"os"
	"strings"

	"github.com/m-mizutani/crier/pkg/domain/model"
	"github.com/m-mizutani/crier/pkg/domain/types"
	githubinfra "github.com/m-mizutani/crier/pkg/infra/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// GitHub holds GitHub API configuration
type GitHub struct {
	Token          string `masq:"secret"`
	URL            string
	AppID          int64
	InstallationID int64
	PrivateKey     string `masq:"secret"`
	Proxy          string
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub token",
			Destination: &c.Token,
			Sources:     cli.EnvVars("CRIER_GITHUB_TOKEN", "GH_TOKEN", "GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "github-url",
			Usage:       "GitHub Enterprise Server URL",
			Destination: &c.URL,
			Sources:     cli.EnvVars("CRIER_GITHUB_URL", "GH_URL", "GITHUB_URL"),
		},
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID",
			Destination: &c.AppID,
			Sources:     cli.EnvVars("CRIER_GITHUB_APP_ID"),
		},
		&cli.Int64Flag{
			Name:        "github-app-installation-id",
			Usage:       "GitHub App installation ID",
			Destination: &c.InstallationID,
			Sources:     cli.EnvVars("CRIER_GITHUB_APP_INSTALLATION_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App private key (PEM content or file path)",
			Destination: &c.PrivateKey,
			Sources:     cli.EnvVars("CRIER_GITHUB_APP_PRIVATE_KEY"),
		},
		&cli.StringFlag{
			Name:        "proxy",
			Usage:       "HTTP proxy URL for GitHub API requests",
			Destination: &c.Proxy,
			Sources:     cli.EnvVars("CRIER_PROXY"),
		},
	}
}

// ClientConfig builds the client configuration. Values set in the options file win over
// flags and environment variables.
func (c *GitHub) ClientConfig(opts *model.Options) (githubinfra.Config, error) {
	cfg := githubinfra.Config{
		Token:          types.GitHubToken(c.Token),
		AppID:          c.AppID,
		InstallationID: c.InstallationID,
		BaseURL:        c.URL,
		Proxy:          c.Proxy,
		RateLimit:      githubinfra.DefaultRateLimitPolicy(),
	}

	if opts != nil {
		if opts.GitHubURL != "" {
			cfg.BaseURL = opts.GitHubURL
		}
		if opts.Proxy != "" {
			cfg.Proxy = opts.Proxy
		}
	}

	if c.PrivateKey != "" {
		key, err := loadPrivateKey(c.PrivateKey)
		if err != nil {
			return githubinfra.Config{}, err
		}
		cfg.PrivateKey = key
	}

	return cfg, nil
}

// NewClient creates a GitHub client for the run
func (c *GitHub) NewClient(opts *model.Options) (*githubinfra.Client, error) {
	cfg, err := c.ClientConfig(opts)
	if err != nil {
		return nil, err
	}
	return githubinfra.NewClient(cfg)
}

// Host returns the host name of the GitHub Enterprise Server, or an empty string for
// github.com
func (c *GitHub) Host(opts *model.Options) string {
	base := c.URL
	if opts != nil && opts.GitHubURL != "" {
		base = opts.GitHubURL
	}
	if base == "" {
		return ""
	}
	u, err := url.Parse(base)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

func loadPrivateKey(v string) ([]byte, error) {
	if strings.HasPrefix(strings.TrimSpace(v), "-----BEGIN") {
		return []byte(v), nil
	}

	data, err := os.ReadFile(v)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read GitHub App private key", goerr.V("path", v), goerr.T(types.ErrTagConfig))
	}
	return data, nil
}
