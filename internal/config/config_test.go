package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// chdir moves the test into an empty directory so no stray .env or
// archiv-index.yaml is picked up.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("HTTP.Addr = %q, want %q", cfg.HTTP.Addr, ":8080")
	}
	if cfg.GitHub.APIURL != "https://api.github.com" {
		t.Errorf("GitHub.APIURL = %q", cfg.GitHub.APIURL)
	}
	if cfg.GitHub.Owner != "brabenetz" || cfg.GitHub.Repo != "settings4j" {
		t.Errorf("repository = %s/%s, want brabenetz/settings4j", cfg.GitHub.Owner, cfg.GitHub.Repo)
	}
	if cfg.GitHub.Path != "archiv" || cfg.GitHub.Ref != "gh-pages" {
		t.Errorf("path/ref = %s@%s, want archiv@gh-pages", cfg.GitHub.Path, cfg.GitHub.Ref)
	}
	if cfg.GitHub.Timeout != 10*time.Second {
		t.Errorf("GitHub.Timeout = %v, want 10s", cfg.GitHub.Timeout)
	}
	if cfg.Page.TargetID != "versionLinks" {
		t.Errorf("Page.TargetID = %q, want versionLinks", cfg.Page.TargetID)
	}
	if cfg.Page.Template != "" {
		t.Errorf("Page.Template = %q, want empty", cfg.Page.Template)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdir(t)
	t.Setenv("ARCHIV_HTTP_ADDR", "127.0.0.1:9000")
	t.Setenv("ARCHIV_GITHUB_API_URL", "http://ghe.example.com/api/v3/")
	t.Setenv("ARCHIV_GITHUB_PATH", "/docs/archive/")
	t.Setenv("ARCHIV_GITHUB_TIMEOUT", "2s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Addr != "127.0.0.1:9000" {
		t.Errorf("HTTP.Addr = %q", cfg.HTTP.Addr)
	}
	if cfg.GitHub.APIURL != "http://ghe.example.com/api/v3" {
		t.Errorf("GitHub.APIURL = %q, want trailing slash trimmed", cfg.GitHub.APIURL)
	}
	if cfg.GitHub.Path != "docs/archive" {
		t.Errorf("GitHub.Path = %q, want docs/archive", cfg.GitHub.Path)
	}
	if cfg.GitHub.Timeout != 2*time.Second {
		t.Errorf("GitHub.Timeout = %v, want 2s", cfg.GitHub.Timeout)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := chdir(t)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("ARCHIV_GITHUB_REF=main\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("ARCHIV_GITHUB_REF") })

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.GitHub.Ref != "main" {
		t.Errorf("GitHub.Ref = %q, want main", cfg.GitHub.Ref)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := chdir(t)
	yaml := "github:\n  owner: acme\n  repo: widgets\npage:\n  template: host.html\n"
	if err := os.WriteFile(filepath.Join(dir, "archiv-index.yaml"), []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.GitHub.Owner != "acme" || cfg.GitHub.Repo != "widgets" {
		t.Errorf("repository = %s/%s, want acme/widgets", cfg.GitHub.Owner, cfg.GitHub.Repo)
	}
	if cfg.Page.Template != "host.html" {
		t.Errorf("Page.Template = %q, want host.html", cfg.Page.Template)
	}
}

func TestLoad_InvalidTimeout(t *testing.T) {
	chdir(t)
	t.Setenv("ARCHIV_GITHUB_TIMEOUT", "soon")

	if _, err := Load(); err == nil {
		t.Fatal("Load: want error for invalid timeout")
	}
}
