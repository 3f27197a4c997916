package github

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/brabenetz/archiv-index/internal/versions"
)

func newTestServer(t *testing.T, status int, body string) (*httptest.Server, *http.Request) {
	t.Helper()
	seen := new(http.Request)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*seen = *r.Clone(r.Context())
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, seen
}

func TestContentsURL_Defaults(t *testing.T) {
	c := NewClient()
	assert.Equal(t, "https://api.github.com/repos/brabenetz/settings4j/contents/archiv?ref=gh-pages", c.ContentsURL())
}

func TestContentsURL_NoRef(t *testing.T) {
	c := NewClient(WithAPIURL("http://ghe.local/api/v3"), WithRepository("o", "r"), WithPath("docs/old", ""))
	assert.Equal(t, "http://ghe.local/api/v3/repos/o/r/contents/docs/old", c.ContentsURL())
}

func TestList_OK(t *testing.T) {
	srv, seen := newTestServer(t, http.StatusOK, `[
		{"name":"1.0","type":"dir","path":"archiv/1.0","sha":"abc"},
		{"name":"notes.txt","type":"file"},
		{"name":"2.0","type":"dir"}
	]`)
	c := NewClient(WithAPIURL(srv.URL), WithUserAgent("test-agent"))

	entries, err := c.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []versions.ListingEntry{
		{Name: "1.0", Type: "dir"},
		{Name: "notes.txt", Type: "file"},
		{Name: "2.0", Type: "dir"},
	}, entries)

	assert.Equal(t, "/repos/brabenetz/settings4j/contents/archiv", seen.URL.Path)
	assert.Equal(t, "gh-pages", seen.URL.Query().Get("ref"))
	assert.Equal(t, acceptHeader, seen.Header.Get("Accept"))
	assert.Equal(t, "test-agent", seen.Header.Get("User-Agent"))
}

func TestList_Empty(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `[]`)
	entries, err := NewClient(WithAPIURL(srv.URL)).List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 0, len(entries))
}

func TestList_Errors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind ErrorKind
	}{
		{name: "not found", status: http.StatusNotFound, body: `{"message":"Not Found"}`, wantKind: KindNotFound},
		{name: "rate limited", status: http.StatusForbidden, body: `{"message":"API rate limit exceeded"}`, wantKind: KindStatus},
		{name: "server error", status: http.StatusInternalServerError, body: ``, wantKind: KindStatus},
		{name: "malformed json", status: http.StatusOK, body: `[{"name":`, wantKind: KindDecode},
		{name: "path is a file", status: http.StatusOK, body: `{"name":"index.js","type":"file"}`, wantKind: KindDecode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newTestServer(t, tt.status, tt.body)
			_, err := NewClient(WithAPIURL(srv.URL)).List(context.Background())
			var ge *Error
			assert.True(t, errors.As(err, &ge), "want *github.Error")
			assert.Equal(t, tt.wantKind, ge.Kind)
			assert.Equal(t, tt.wantKind == KindNotFound, IsNotFound(err))
		})
	}
}

func TestList_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(WithAPIURL(url)).List(context.Background())
	var ge *Error
	assert.True(t, errors.As(err, &ge))
	assert.Equal(t, KindFetch, ge.Kind)
	assert.Error(t, ge.Cause)
}

func TestList_ContextCanceled(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `[]`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(WithAPIURL(srv.URL)).List(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestError_Message(t *testing.T) {
	err := &Error{Kind: KindStatus, URL: "http://x/contents/archiv", Status: 502}
	assert.Equal(t, "github contents [Status] http://x/contents/archiv: status 502", err.Error())
}
