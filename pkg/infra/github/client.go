package github

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/crier/pkg/domain/interfaces"
	"github.com/m-mizutani/crier/pkg/domain/model"
	"github.com/m-mizutani/crier/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"
)

// Config holds everything needed to build a client. Either Token or the GitHub App
// triple (AppID, InstallationID, PrivateKey) must be set.
type Config struct {
	Token          types.GitHubToken
	AppID          int64
	InstallationID int64
	PrivateKey     []byte

	// BaseURL is the GitHub Enterprise Server URL, e.g. https://ghe.example.com.
	// Empty means github.com.
	BaseURL string
	// Proxy is an HTTP proxy URL. Empty means the environment's proxy settings.
	Proxy string

	Retry     RetryPolicy
	RateLimit RateLimitPolicy

	// Transport replaces the base transport, mainly for tests
	Transport http.RoundTripper
}

// Client implements interfaces.GitHubClient with the REST API and the GraphQL API
// sharing one rate-limited, retrying HTTP client
type Client struct {
	githubClient  *github.Client
	graphqlClient *githubv4.Client
}

var _ interfaces.GitHubClient = (*Client)(nil)

// NewClient creates a new GitHub client from cfg
func NewClient(cfg Config) (*Client, error) {
	base, err := baseTransport(cfg)
	if err != nil {
		return nil, err
	}

	var auth http.RoundTripper
	switch {
	case cfg.Token != "":
		auth = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(cfg.Token)}),
			Base:   base,
		}
	case cfg.AppID != 0 && cfg.InstallationID != 0 && len(cfg.PrivateKey) > 0:
		itr, err := ghinstallation.New(base, cfg.AppID, cfg.InstallationID, cfg.PrivateKey)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create GitHub App transport", goerr.T(types.ErrTagConfig))
		}
		if cfg.BaseURL != "" {
			itr.BaseURL = strings.TrimRight(cfg.BaseURL, "/") + "/api/v3"
		}
		auth = itr
	default:
		return nil, goerr.New("GitHub token or GitHub App credentials are required", goerr.T(types.ErrTagConfig))
	}

	httpClient := &http.Client{
		Transport: Chain(auth,
			WithRetry(cfg.Retry),
			WithRateLimit(cfg.RateLimit),
		),
	}

	githubClient := github.NewClient(httpClient)
	graphqlClient := githubv4.NewClient(httpClient)

	if cfg.BaseURL != "" {
		base := strings.TrimRight(cfg.BaseURL, "/")
		githubClient, err = githubClient.WithEnterpriseURLs(base+"/", base+"/")
		if err != nil {
			return nil, goerr.Wrap(err, "failed to set GitHub Enterprise URLs",
				goerr.V("base_url", cfg.BaseURL), goerr.T(types.ErrTagConfig))
		}
		graphqlClient = githubv4.NewEnterpriseClient(base+"/api/graphql", httpClient)
	}

	return &Client{
		githubClient:  githubClient,
		graphqlClient: graphqlClient,
	}, nil
}

func baseTransport(cfg Config) (http.RoundTripper, error) {
	if cfg.Transport != nil {
		return cfg.Transport, nil
	}

	tr := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.Proxy != "" {
		proxyURL, err := url.Parse(cfg.Proxy)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid proxy URL", goerr.V("proxy", cfg.Proxy), goerr.T(types.ErrTagConfig))
		}
		tr.Proxy = http.ProxyURL(proxyURL)
	}
	return tr, nil
}

// GetRepository returns the canonical repository and whether the token can push to it
func (c *Client) GetRepository(ctx context.Context, repo model.Repo) (*model.Repository, error) {
	req, err := c.githubClient.NewRequest(http.MethodGet, "repos/"+repo.FullName(), nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build repository request", goerr.V("repo", repo.FullName()))
	}

	var body struct {
		Name    string `json:"name"`
		HTMLURL string `json:"html_url"`
		Owner   struct {
			Login string `json:"login"`
		} `json:"owner"`
		Permissions struct {
			Push bool `json:"push"`
		} `json:"permissions"`
	}
	if _, err := c.githubClient.Do(ctx, req, &body); err != nil {
		return nil, wrapError(err, "failed to get repository", goerr.V("repo", repo.FullName()))
	}

	return &model.Repository{
		Repo:    model.Repo{Owner: body.Owner.Login, Name: body.Name},
		HTMLURL: body.HTMLURL,
		CanPush: body.Permissions.Push,
	}, nil
}

// wrapError converts go-github errors that carry an HTTP response into *model.APIError
// and wraps the result with msg
func wrapError(err error, msg string, opts ...goerr.Option) error {
	if apiErr := toAPIError(err); apiErr != nil {
		opts = append(opts, goerr.V("status", apiErr.Status))
		return goerr.Wrap(apiErr, msg, opts...)
	}
	return goerr.Wrap(err, msg, opts...)
}

func toAPIError(err error) *model.APIError {
	var resp *http.Response
	var message string
	var limited bool

	var errResp *github.ErrorResponse
	var rateErr *github.RateLimitError
	var abuseErr *github.AbuseRateLimitError
	switch {
	case errors.As(err, &errResp):
		resp, message = errResp.Response, errResp.Message
	case errors.As(err, &rateErr):
		resp, message, limited = rateErr.Response, rateErr.Message, true
	case errors.As(err, &abuseErr):
		resp, message, limited = abuseErr.Response, abuseErr.Message, true
	}
	if resp == nil {
		return nil
	}

	apiErr := &model.APIError{
		Status:      resp.StatusCode,
		Message:     message,
		RateLimited: limited,
	}
	if resp.Request != nil {
		apiErr.Method = resp.Request.Method
		apiErr.URL = resp.Request.URL.String()
	}
	return apiErr
}
