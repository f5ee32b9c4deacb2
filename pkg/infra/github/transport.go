package github

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Middleware decorates a round tripper with a cross-cutting concern
type Middleware func(next http.RoundTripper) http.RoundTripper

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// Chain wraps base with middlewares. The first middleware is the outermost.
func Chain(base http.RoundTripper, mws ...Middleware) http.RoundTripper {
	for i := len(mws) - 1; i >= 0; i-- {
		base = mws[i](base)
	}
	return base
}

// RetryPolicy controls retries of failed requests
type RetryPolicy struct {
	// MaxRetries is the number of retries after the first attempt. Zero means 3.
	MaxRetries uint
	// InitialInterval is the first backoff interval. Zero means 1s.
	InitialInterval time.Duration
	// MaxInterval caps a single backoff interval. Zero means 30s.
	MaxInterval time.Duration
	// MaxRateLimitWait caps how long a rate limited request waits before retrying.
	// A longer wait is not attempted and the response is returned. Zero means 15m.
	MaxRateLimitWait time.Duration
	// DoNotRetry lists statuses returned to the caller without retrying.
	// Nil means 400, 401, 403, 404, 410, 422 and 451.
	DoNotRetry []int
	// DefaultRetryAfter is the wait for a secondary rate limit without a Retry-After
	// header. Zero means 60s.
	DefaultRetryAfter time.Duration
}

func (p RetryPolicy) withDefaults() RetryPolicy {
	if p.MaxRetries == 0 {
		p.MaxRetries = 3
	}
	if p.InitialInterval == 0 {
		p.InitialInterval = time.Second
	}
	if p.MaxInterval == 0 {
		p.MaxInterval = 30 * time.Second
	}
	if p.MaxRateLimitWait == 0 {
		p.MaxRateLimitWait = 15 * time.Minute
	}
	if p.DoNotRetry == nil {
		p.DoNotRetry = []int{400, 401, 403, 404, 410, 422, 451}
	}
	if p.DefaultRetryAfter == 0 {
		p.DefaultRetryAfter = time.Minute
	}
	return p
}

// errRetryableStatus marks a response worth another attempt
var errRetryableStatus = goerr.New("retryable response status")

// WithRetry retries network errors and 5xx responses with exponential backoff, and
// waits out rate limits. Requests whose body cannot be replayed are sent once.
func WithRetry(policy RetryPolicy) Middleware {
	p := policy.withDefaults()

	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			if req.Body != nil && req.Body != http.NoBody && req.GetBody == nil {
				return next.RoundTrip(req)
			}

			ctx := req.Context()
			maxTries := p.MaxRetries + 1

			bo := backoff.NewExponentialBackOff()
			bo.InitialInterval = p.InitialInterval
			bo.MaxInterval = p.MaxInterval

			var attempt uint
			operation := func() (*http.Response, error) {
				attempt++
				r := req
				if attempt > 1 && req.GetBody != nil {
					body, err := req.GetBody()
					if err != nil {
						return nil, backoff.Permanent(goerr.Wrap(err, "failed to replay request body"))
					}
					r = req.Clone(ctx)
					r.Body = body
				}

				resp, err := next.RoundTrip(r)
				if err != nil {
					if ctx.Err() != nil || attempt >= maxTries {
						return nil, backoff.Permanent(err)
					}
					ctxlog.From(ctx).Warn("Request failed, retrying",
						"method", req.Method, "url", req.URL.String(), "attempt", attempt, "error", err)
					return nil, err
				}

				wait, retry := p.classify(resp)
				if !retry || attempt >= maxTries {
					return resp, nil
				}

				ctxlog.From(ctx).Warn("Retryable response, retrying",
					"method", req.Method,
					"url", req.URL.String(),
					"status", resp.StatusCode,
					"attempt", attempt,
					"wait", wait,
				)
				drain(resp)

				if wait >= 0 {
					return nil, backoff.RetryAfter(int(wait.Round(time.Second) / time.Second))
				}
				return nil, errRetryableStatus
			}

			return backoff.Retry(ctx, operation,
				backoff.WithBackOff(bo),
				backoff.WithMaxTries(maxTries),
				backoff.WithMaxElapsedTime(0),
			)
		})
	}
}

// classify decides whether resp is retried. A non-negative wait overrides the backoff.
func (p RetryPolicy) classify(resp *http.Response) (time.Duration, bool) {
	status := resp.StatusCode
	if status < 400 {
		return -1, false
	}

	if status == http.StatusForbidden || status == http.StatusTooManyRequests {
		if wait, ok := p.rateLimitWait(resp); ok {
			if wait > p.MaxRateLimitWait {
				return -1, false
			}
			return wait, true
		}
	}

	if slices.Contains(p.DoNotRetry, status) {
		return -1, false
	}
	if status >= 500 {
		return -1, true
	}
	return -1, false
}

// rateLimitWait detects primary and secondary rate limit responses
func (p RetryPolicy) rateLimitWait(resp *http.Response) (time.Duration, bool) {
	if v := resp.Header.Get("Retry-After"); v != "" {
		if sec, err := strconv.Atoi(v); err == nil && sec >= 0 {
			return time.Duration(sec) * time.Second, true
		}
	}

	if resp.Header.Get("X-RateLimit-Remaining") == "0" {
		if reset, err := strconv.ParseInt(resp.Header.Get("X-RateLimit-Reset"), 10, 64); err == nil {
			wait := time.Until(time.Unix(reset, 0))
			if wait < 0 {
				wait = 0
			}
			return wait, true
		}
	}

	if resp.StatusCode == http.StatusTooManyRequests || isSecondaryRateLimit(resp) {
		return p.DefaultRetryAfter, true
	}
	return 0, false
}

func isSecondaryRateLimit(resp *http.Response) bool {
	if resp.Body == nil {
		return false
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	_ = resp.Body.Close()
	resp.Body = io.NopCloser(bytes.NewReader(body))
	if err != nil {
		return false
	}

	lower := strings.ToLower(string(body))
	return strings.Contains(lower, "secondary rate limit") || strings.Contains(lower, "abuse detection")
}

func drain(resp *http.Response) {
	if resp.Body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
	_ = resp.Body.Close()
}

// Bucket is a group of endpoints sharing a rate budget
type Bucket string

const (
	BucketRead    Bucket = "read"
	BucketWrite   Bucket = "write"
	BucketSearch  Bucket = "search"
	BucketGraphQL Bucket = "graphql"
)

// RateLimitPolicy sets a request rate per bucket and an overall concurrency bound.
// A zero Limit means unlimited.
type RateLimitPolicy struct {
	Read        rate.Limit
	Write       rate.Limit
	Search      rate.Limit
	GraphQL     rate.Limit
	Concurrency int64
}

// DefaultRateLimitPolicy follows GitHub's guidance on secondary rate limits
func DefaultRateLimitPolicy() RateLimitPolicy {
	return RateLimitPolicy{
		Write:       rate.Every(time.Second),
		Search:      rate.Every(2 * time.Second),
		GraphQL:     rate.Every(time.Second),
		Concurrency: 10,
	}
}

func newLimiter(l rate.Limit) *rate.Limiter {
	if l == 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(l, 1)
}

// BucketOf classifies a request
func BucketOf(req *http.Request) Bucket {
	path := req.URL.Path
	switch {
	case strings.Contains(path, "/search/"):
		return BucketSearch
	case strings.HasSuffix(path, "/graphql"):
		return BucketGraphQL
	case req.Method == http.MethodGet || req.Method == http.MethodHead || req.Method == http.MethodOptions:
		return BucketRead
	default:
		return BucketWrite
	}
}

// WithRateLimit serializes requests against per-bucket budgets. The limiter state is
// shared by every request sent through the returned middleware.
func WithRateLimit(policy RateLimitPolicy) Middleware {
	limiters := map[Bucket]*rate.Limiter{
		BucketRead:    newLimiter(policy.Read),
		BucketWrite:   newLimiter(policy.Write),
		BucketSearch:  newLimiter(policy.Search),
		BucketGraphQL: newLimiter(policy.GraphQL),
	}

	var sem *semaphore.Weighted
	if policy.Concurrency > 0 {
		sem = semaphore.NewWeighted(policy.Concurrency)
	}

	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			ctx := req.Context()

			if sem != nil {
				if err := sem.Acquire(ctx, 1); err != nil {
					return nil, goerr.Wrap(err, "cancelled while waiting for a request slot")
				}
				defer sem.Release(1)
			}

			bucket := BucketOf(req)
			if err := waitLimiter(ctx, limiters[bucket]); err != nil {
				return nil, goerr.Wrap(err, "cancelled while waiting for rate budget", goerr.V("bucket", bucket))
			}

			return next.RoundTrip(req)
		})
	}
}

func waitLimiter(ctx context.Context, l *rate.Limiter) error {
	if l.Limit() == rate.Inf {
		return nil
	}
	return l.Wait(ctx)
}
