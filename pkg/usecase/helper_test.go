package usecase_test

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"testing"

	"github.com/m-mizutani/crier/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
)

var testRepo = model.Repo{Owner: "acme", Name: "rocket"}

type testSession struct {
	verified bool
}

func (s *testSession) Repo() model.Repo { return testRepo }
func (s *testSession) Verified() bool   { return s.verified }

var verifiedSession = &testSession{verified: true}

// syncBuffer is a log sink shared by concurrent handlers
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// logContext returns a context whose logger writes JSON lines to the returned buffer
func logContext(t *testing.T) (context.Context, *syncBuffer) {
	t.Helper()
	buf := &syncBuffer{}
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return ctxlog.With(context.Background(), logger), buf
}

func apiError(status int) error {
	return fmt.Errorf("request failed: %w", &model.APIError{
		Status:  status,
		Method:  "POST",
		URL:     "https://api.github.com/repos/acme/rocket",
		Message: "mock",
	})
}

func rateLimitError() error {
	return fmt.Errorf("request failed: %w", &model.APIError{
		Status:      http.StatusForbidden,
		Method:      "POST",
		URL:         "https://api.github.com/repos/acme/rocket",
		Message:     "API rate limit exceeded",
		RateLimited: true,
	})
}

func pipelineContext() *model.PipelineContext {
	return &model.PipelineContext{
		RepositoryURL: "https://github.com/acme/rocket.git",
		Branch:        model.Branch{Name: "main", Type: "release", Main: true},
		LastRelease:   model.LastRelease{GitTag: "v0.9.0", Version: "0.9.0"},
		NextRelease: model.NextRelease{
			Name:    "v1.0.0",
			GitTag:  "v1.0.0",
			Version: "1.0.0",
			Notes:   "## Changes",
		},
	}
}
