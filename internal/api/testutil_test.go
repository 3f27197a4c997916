package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/brabenetz/archiv-index/internal/api"
	"github.com/brabenetz/archiv-index/internal/github"
	"github.com/brabenetz/archiv-index/internal/render"
)

// testEnv holds the API router wired to a fake contents endpoint.
type testEnv struct {
	Router http.Handler
}

// newTestEnv starts a fake GitHub API answering every request with status
// and body, and wires the API router to it through the real client.
func newTestEnv(t *testing.T, status int, body string) *testEnv {
	t.Helper()
	gh := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(gh.Close)

	client := github.NewClient(github.WithAPIURL(gh.URL))
	router := api.NewAPIRouter(api.Deps{
		Renderer: render.NewRenderer(client),
		Lister:   client,
	})
	return &testEnv{Router: router}
}

// get performs a GET against the router.
func (e *testEnv) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.Router.ServeHTTP(rec, req)
	return rec
}
