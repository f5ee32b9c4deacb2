package github_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/crier/pkg/domain/model"
	"github.com/m-mizutani/crier/pkg/domain/types"
	githubinfra "github.com/m-mizutani/crier/pkg/infra/github"
)

var testRepo = model.Repo{Owner: "acme", Name: "rocket"}

// fakeGitHub records requests to a chi router served as a GitHub Enterprise host
type fakeGitHub struct {
	mu       sync.Mutex
	requests []string
	bodies   map[string][]byte
}

func (f *fakeGitHub) record(r *http.Request) []byte {
	body, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	defer f.mu.Unlock()
	key := r.Method + " " + r.URL.Path
	f.requests = append(f.requests, key)
	if f.bodies == nil {
		f.bodies = map[string][]byte{}
	}
	f.bodies[key] = body
	return body
}

func (f *fakeGitHub) count(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, r := range f.requests {
		if r == key {
			n++
		}
	}
	return n
}

func (f *fakeGitHub) body(key string) map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	var v map[string]any
	_ = json.Unmarshal(f.bodies[key], &v)
	return v
}

func serverURL(r *http.Request) string {
	return "http://" + r.Host
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newTestClient(t *testing.T, setup func(r chi.Router, f *fakeGitHub)) (*githubinfra.Client, *fakeGitHub) {
	t.Helper()

	fake := &fakeGitHub{}
	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gt.Equal(t, r.Header.Get("Authorization"), "Bearer test-token")
			next.ServeHTTP(w, r)
		})
	})
	setup(router, fake)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	client, err := githubinfra.NewClient(githubinfra.Config{
		Token:   types.GitHubToken("test-token"),
		BaseURL: srv.URL,
		Retry: githubinfra.RetryPolicy{
			InitialInterval: time.Millisecond,
			MaxInterval:     time.Millisecond,
		},
	})
	gt.NoError(t, err)
	return client, fake
}

func TestNewClient(t *testing.T) {
	t.Run("requires credentials", func(t *testing.T) {
		_, err := githubinfra.NewClient(githubinfra.Config{})
		gt.Error(t, err)
	})

	t.Run("rejects invalid app key", func(t *testing.T) {
		_, err := githubinfra.NewClient(githubinfra.Config{
			AppID:          1,
			InstallationID: 2,
			PrivateKey:     []byte("not a pem"),
		})
		gt.Error(t, err)
	})

	t.Run("rejects invalid proxy", func(t *testing.T) {
		_, err := githubinfra.NewClient(githubinfra.Config{
			Token: "x",
			Proxy: "://bad",
		})
		gt.Error(t, err)
	})
}

func TestClient_GetRepository(t *testing.T) {
	client, _ := newTestClient(t, func(r chi.Router, f *fakeGitHub) {
		r.Get("/api/v3/repos/{owner}/{repo}", func(w http.ResponseWriter, r *http.Request) {
			f.record(r)
			if chi.URLParam(r, "repo") == "missing" {
				writeJSON(w, http.StatusNotFound, map[string]any{"message": "Not Found"})
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{
				"name":        "Rocket",
				"html_url":    "https://ghe.example.com/Acme/Rocket",
				"owner":       map[string]any{"login": "Acme"},
				"permissions": map[string]any{"push": true},
			})
		})
	})

	t.Run("returns canonical name and permission", func(t *testing.T) {
		repo, err := client.GetRepository(context.Background(), testRepo)
		gt.NoError(t, err)
		gt.Equal(t, repo.Repo, model.Repo{Owner: "Acme", Name: "Rocket"})
		gt.True(t, repo.CanPush)
	})

	t.Run("carries the status of a missing repository", func(t *testing.T) {
		_, err := client.GetRepository(context.Background(), model.Repo{Owner: "acme", Name: "missing"})
		gt.Error(t, err)
		gt.Equal(t, model.HTTPStatus(err), http.StatusNotFound)

		var apiErr *model.APIError
		gt.True(t, errors.As(err, &apiErr))
		gt.Equal(t, apiErr.Method, http.MethodGet)
	})
}

func TestClient_Release(t *testing.T) {
	client, fake := newTestClient(t, func(r chi.Router, f *fakeGitHub) {
		r.Post("/api/v3/repos/acme/rocket/releases", func(w http.ResponseWriter, r *http.Request) {
			f.record(r)
			writeJSON(w, http.StatusCreated, map[string]any{
				"id":         int64(42),
				"tag_name":   "v1.0.0",
				"draft":      true,
				"html_url":   "https://ghe.example.com/acme/rocket/releases/tag/v1.0.0",
				"upload_url": "https://ghe.example.com/api/uploads/repos/acme/rocket/releases/42/assets{?name,label}",
			})
		})
		r.Get("/api/v3/repos/acme/rocket/releases/tags/{tag}", func(w http.ResponseWriter, r *http.Request) {
			f.record(r)
			if chi.URLParam(r, "tag") != "v1.0.0" {
				writeJSON(w, http.StatusNotFound, map[string]any{"message": "Not Found"})
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{"id": int64(42), "tag_name": "v1.0.0"})
		})
		r.Patch("/api/v3/repos/acme/rocket/releases/42", func(w http.ResponseWriter, r *http.Request) {
			f.record(r)
			writeJSON(w, http.StatusOK, map[string]any{
				"id":       int64(42),
				"tag_name": "v1.0.0",
				"draft":    false,
				"html_url": "https://ghe.example.com/acme/rocket/releases/tag/v1.0.0",
			})
		})
		r.Post("/api/uploads/repos/acme/rocket/releases/42/assets", func(w http.ResponseWriter, r *http.Request) {
			f.record(r)
			gt.Equal(t, r.URL.Query().Get("name"), "dist.txt")
			gt.Equal(t, r.URL.Query().Get("label"), "Distribution")
			gt.Equal(t, r.Header.Get("Content-Type"), "text/plain")
			writeJSON(w, http.StatusCreated, map[string]any{
				"id":                   int64(7),
				"name":                 "dist.txt",
				"browser_download_url": "https://ghe.example.com/acme/rocket/releases/download/v1.0.0/dist.txt",
			})
		})
	})
	ctx := context.Background()

	t.Run("create sends the descriptor verbatim", func(t *testing.T) {
		desc := model.ReleaseDescriptor{
			TagName:         "v1.0.0",
			TargetCommitish: "main",
			Name:            "v1.0.0",
			Body:            "notes",
			Prerelease:      true,
		}
		rel, err := client.CreateRelease(ctx, testRepo, desc, true)
		gt.NoError(t, err)
		gt.Equal(t, rel.ID, int64(42))
		gt.True(t, rel.Draft)

		body := fake.body("POST /api/v3/repos/acme/rocket/releases")
		gt.Equal(t, body["tag_name"], any("v1.0.0"))
		gt.Equal(t, body["target_commitish"], any("main"))
		gt.Equal(t, body["body"], any("notes"))
		gt.Equal(t, body["draft"], any(true))
		gt.Equal(t, body["prerelease"], any(true))
	})

	t.Run("get by tag", func(t *testing.T) {
		rel, err := client.GetReleaseByTag(ctx, testRepo, "v1.0.0")
		gt.NoError(t, err)
		gt.Equal(t, rel.ID, int64(42))

		_, err = client.GetReleaseByTag(ctx, testRepo, "v9.9.9")
		gt.Equal(t, model.HTTPStatus(err), http.StatusNotFound)
	})

	t.Run("update sends only patched fields", func(t *testing.T) {
		draft := false
		rel, err := client.UpdateRelease(ctx, testRepo, 42, model.ReleasePatch{Draft: &draft})
		gt.NoError(t, err)
		gt.False(t, rel.Draft)

		body := fake.body("PATCH /api/v3/repos/acme/rocket/releases/42")
		gt.Equal(t, body["draft"], any(false))
		_, hasName := body["name"]
		gt.False(t, hasName)
	})

	t.Run("upload asset", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dist.txt")
		gt.NoError(t, os.WriteFile(path, []byte("payload"), 0o600))

		uploaded, err := client.UploadReleaseAsset(ctx, testRepo, 42, model.UploadAsset{
			Path:        path,
			Name:        "dist.txt",
			Label:       "Distribution",
			ContentType: "text/plain",
		})
		gt.NoError(t, err)
		gt.Equal(t, uploaded.ID, int64(7))
		gt.Equal(t, fake.count("POST /api/uploads/repos/acme/rocket/releases/42/assets"), 1)
	})

	t.Run("upload of a missing file fails before any request", func(t *testing.T) {
		_, err := client.UploadReleaseAsset(ctx, testRepo, 42, model.UploadAsset{
			Path: filepath.Join(t.TempDir(), "nope"),
			Name: "nope",
		})
		gt.Error(t, err)
	})
}

func TestClient_Issues(t *testing.T) {
	client, fake := newTestClient(t, func(r chi.Router, f *fakeGitHub) {
		r.Post("/api/v3/repos/acme/rocket/issues", func(w http.ResponseWriter, r *http.Request) {
			f.record(r)
			writeJSON(w, http.StatusCreated, map[string]any{"number": 11, "title": "failing", "state": "open"})
		})
		r.Post("/api/v3/repos/acme/rocket/issues/{number}/comments", func(w http.ResponseWriter, r *http.Request) {
			f.record(r)
			if chi.URLParam(r, "number") == "403" {
				writeJSON(w, http.StatusForbidden, map[string]any{"message": "Resource not accessible by integration"})
				return
			}
			writeJSON(w, http.StatusCreated, map[string]any{
				"id":       int64(100),
				"html_url": "https://ghe.example.com/acme/rocket/issues/1#issuecomment-100",
			})
		})
		r.Post("/api/v3/repos/acme/rocket/issues/1/labels", func(w http.ResponseWriter, r *http.Request) {
			f.record(r)
			writeJSON(w, http.StatusOK, []map[string]any{{"name": "released"}})
		})
		r.Patch("/api/v3/repos/acme/rocket/issues/5", func(w http.ResponseWriter, r *http.Request) {
			f.record(r)
			writeJSON(w, http.StatusOK, map[string]any{"number": 5, "state": "closed"})
		})
		r.Get("/api/v3/search/issues", func(w http.ResponseWriter, r *http.Request) {
			f.record(r)
			if r.URL.Query().Get("page") == "2" {
				writeJSON(w, http.StatusOK, map[string]any{
					"total_count": 2,
					"items":       []map[string]any{{"number": 6, "title": "b", "body": types.TrackingIssueMarker}},
				})
				return
			}
			next := fmt.Sprintf("<%s/api/v3/search/issues?page=2&per_page=100&q=x>; rel=\"next\"", serverURL(r))
			w.Header().Set("Link", next)
			writeJSON(w, http.StatusOK, map[string]any{
				"total_count": 2,
				"items": []map[string]any{{
					"number":       5,
					"title":        "a",
					"pull_request": map[string]any{"url": "https://ghe.example.com/pr/5"},
				}},
			})
		})
	})
	ctx := context.Background()

	t.Run("create issue with labels and assignees", func(t *testing.T) {
		issue, err := client.CreateIssue(ctx, testRepo, model.NewIssue{
			Title:     "failing",
			Body:      "body",
			Labels:    []string{"semantic-release"},
			Assignees: []string{"octocat"},
		})
		gt.NoError(t, err)
		gt.Equal(t, issue.Number, 11)

		body := fake.body("POST /api/v3/repos/acme/rocket/issues")
		gt.Equal(t, body["labels"], any([]any{"semantic-release"}))
		gt.Equal(t, body["assignees"], any([]any{"octocat"}))
	})

	t.Run("comment", func(t *testing.T) {
		comment, err := client.CreateComment(ctx, testRepo, 1, "hello")
		gt.NoError(t, err)
		gt.Equal(t, comment.ID, int64(100))
		gt.Equal(t, fake.body("POST /api/v3/repos/acme/rocket/issues/1/comments")["body"], any("hello"))
	})

	t.Run("comment failure keeps the status", func(t *testing.T) {
		_, err := client.CreateComment(ctx, testRepo, 403, "hello")
		gt.Equal(t, model.HTTPStatus(err), http.StatusForbidden)
		gt.False(t, model.IsRateLimited(err))
		gt.Equal(t, fake.count("POST /api/v3/repos/acme/rocket/issues/403/comments"), 1)
	})

	t.Run("labels", func(t *testing.T) {
		gt.NoError(t, client.AddLabels(ctx, testRepo, 1, []string{"released"}))
	})

	t.Run("close", func(t *testing.T) {
		issue, err := client.CloseIssue(ctx, testRepo, 5)
		gt.NoError(t, err)
		gt.Equal(t, issue.State, "closed")
		gt.Equal(t, fake.body("PATCH /api/v3/repos/acme/rocket/issues/5")["state"], any("closed"))
	})

	t.Run("search follows pages", func(t *testing.T) {
		issues, err := client.SearchIssues(ctx, "x")
		gt.NoError(t, err)
		gt.A(t, issues).Length(2)
		gt.True(t, issues[0].IsPullRequest)
		gt.False(t, issues[1].IsPullRequest)
		gt.Equal(t, issues[1].Body, types.TrackingIssueMarker)
	})
}

func TestClient_RateLimitedComment(t *testing.T) {
	client, fake := newTestClient(t, func(r chi.Router, f *fakeGitHub) {
		r.Post("/api/v3/repos/acme/rocket/issues/{number}/comments", func(w http.ResponseWriter, r *http.Request) {
			f.record(r)
			w.Header().Set("X-RateLimit-Limit", "5000")
			w.Header().Set("X-RateLimit-Remaining", "0")
			w.Header().Set("X-RateLimit-Reset", fmt.Sprint(time.Now().Add(time.Hour).Unix()))
			writeJSON(w, http.StatusForbidden, map[string]any{"message": "API rate limit exceeded"})
		})
	})

	_, err := client.CreateComment(context.Background(), testRepo, 4, "hello")
	gt.Error(t, err)
	gt.Equal(t, model.HTTPStatus(err), http.StatusForbidden)
	gt.True(t, model.IsRateLimited(err))
	gt.Equal(t, fake.count("POST /api/v3/repos/acme/rocket/issues/4/comments"), 1)
}

func TestClient_PullRequests(t *testing.T) {
	client, _ := newTestClient(t, func(r chi.Router, f *fakeGitHub) {
		r.Get("/api/v3/repos/acme/rocket/pulls/3", func(w http.ResponseWriter, r *http.Request) {
			f.record(r)
			writeJSON(w, http.StatusOK, map[string]any{"number": 3, "merge_commit_sha": "m3"})
		})
		r.Get("/api/v3/repos/acme/rocket/pulls/3/commits", func(w http.ResponseWriter, r *http.Request) {
			f.record(r)
			if r.URL.Query().Get("page") == "2" {
				writeJSON(w, http.StatusOK, []map[string]any{{"sha": "c"}})
				return
			}
			w.Header().Set("Link", fmt.Sprintf("<%s/api/v3/repos/acme/rocket/pulls/3/commits?page=2>; rel=\"next\"", serverURL(r)))
			writeJSON(w, http.StatusOK, []map[string]any{{"sha": "a"}, {"sha": "b"}})
		})
	})
	ctx := context.Background()

	pr, err := client.GetPullRequest(ctx, testRepo, 3)
	gt.NoError(t, err)
	gt.Equal(t, pr.MergeCommitSHA, "m3")

	shas, err := client.ListPullRequestCommits(ctx, testRepo, 3)
	gt.NoError(t, err)
	gt.Equal(t, shas, []string{"a", "b", "c"})
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

func prNode(number int, merge string) map[string]any {
	return map[string]any{
		"number":      number,
		"title":       fmt.Sprintf("PR %d", number),
		"body":        "",
		"url":         fmt.Sprintf("https://ghe.example.com/acme/rocket/pull/%d", number),
		"mergeCommit": map[string]any{"oid": merge},
	}
}

func TestClient_AssociatedPullRequests(t *testing.T) {
	var mu sync.Mutex
	var queries []graphqlRequest

	client, _ := newTestClient(t, func(r chi.Router, f *fakeGitHub) {
		r.Post("/api/graphql", func(w http.ResponseWriter, r *http.Request) {
			var req graphqlRequest
			gt.NoError(t, json.Unmarshal(f.record(r), &req))
			mu.Lock()
			queries = append(queries, req)
			mu.Unlock()

			if _, ok := req.Variables["after"]; ok {
				writeJSON(w, http.StatusOK, map[string]any{"data": map[string]any{
					"repository": map[string]any{"object": map[string]any{
						"associatedPullRequests": map[string]any{
							"pageInfo": map[string]any{"hasNextPage": false, "endCursor": ""},
							"nodes":    []any{prNode(9, "m9")},
						},
					}},
				}})
				return
			}

			writeJSON(w, http.StatusOK, map[string]any{"data": map[string]any{
				"repository": map[string]any{
					"commit0": map[string]any{
						"associatedPullRequests": map[string]any{
							"pageInfo": map[string]any{"hasNextPage": true, "endCursor": "cursor1"},
							"nodes":    []any{prNode(1, "m1"), prNode(2, "m2")},
						},
					},
					"commit1": nil,
					"commit2": map[string]any{
						"associatedPullRequests": map[string]any{
							"pageInfo": map[string]any{"hasNextPage": false, "endCursor": ""},
							"nodes":    []any{prNode(1, "m1")},
						},
					},
				},
			}})
		})
	})

	prs, err := client.AssociatedPullRequests(context.Background(), testRepo, []string{"sha0", "sha1", "sha2"})
	gt.NoError(t, err)

	numbers := make([]int, len(prs))
	for i, pr := range prs {
		numbers[i] = pr.Number
	}
	gt.Equal(t, numbers, []int{1, 2, 9, 1})
	gt.Equal(t, prs[0].MergeCommitSHA, "m1")
	gt.Equal(t, prs[0].HTMLURL, "https://ghe.example.com/acme/rocket/pull/1")

	gt.A(t, queries).Length(2)
	gt.True(t, strings.Contains(queries[0].Query, "commit0: object(oid: $oid0)"))
	gt.True(t, strings.Contains(queries[0].Query, "commit2: object(oid: $oid2)"))
	gt.Equal(t, queries[0].Variables["oid1"], any("sha1"))
	gt.Equal(t, queries[1].Variables["oid"], any("sha0"))
	gt.Equal(t, queries[1].Variables["after"], any("cursor1"))

	t.Run("rejects oversized chunks", func(t *testing.T) {
		shas := make([]string, types.CommitChunkSize+1)
		_, err := client.AssociatedPullRequests(context.Background(), testRepo, shas)
		gt.Error(t, err)
	})

	t.Run("no commits makes no request", func(t *testing.T) {
		prs, err := client.AssociatedPullRequests(context.Background(), testRepo, nil)
		gt.NoError(t, err)
		gt.A(t, prs).Length(0)
		gt.A(t, queries).Length(2)
	})
}
