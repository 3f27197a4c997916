package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/brabenetz/archiv-index/internal/github"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	GitHub struct {
		APIURL  string
		Owner   string
		Repo    string
		Path    string
		Ref     string
		Timeout time.Duration
	}
	Page struct {
		// Template is an optional host document path; empty uses the embedded one.
		Template string
		TargetID string
	}
}

// Load reads config from environment (ARCHIV_ prefix, optionally seeded from
// .env) and optional archiv-index.yaml. Environment variables win over the file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("ARCHIV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("archiv-index")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional config file

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("github.api_url", github.DefaultAPIURL)
	v.SetDefault("github.owner", github.DefaultOwner)
	v.SetDefault("github.repo", github.DefaultRepo)
	v.SetDefault("github.path", github.DefaultPath)
	v.SetDefault("github.ref", github.DefaultRef)
	v.SetDefault("github.timeout", "10s")
	v.SetDefault("page.target_id", "versionLinks")

	cfg := &Config{}
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.GitHub.APIURL = strings.TrimRight(v.GetString("github.api_url"), "/")
	cfg.GitHub.Owner = v.GetString("github.owner")
	cfg.GitHub.Repo = v.GetString("github.repo")
	cfg.GitHub.Path = strings.Trim(v.GetString("github.path"), "/")
	cfg.GitHub.Ref = v.GetString("github.ref")
	cfg.Page.Template = v.GetString("page.template")
	cfg.Page.TargetID = v.GetString("page.target_id")

	timeout, err := time.ParseDuration(v.GetString("github.timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid ARCHIV_GITHUB_TIMEOUT: %w", err)
	}
	cfg.GitHub.Timeout = timeout

	if cfg.GitHub.Owner == "" || cfg.GitHub.Repo == "" {
		return nil, fmt.Errorf("ARCHIV_GITHUB_OWNER and ARCHIV_GITHUB_REPO are required")
	}
	if cfg.Page.TargetID == "" {
		return nil, fmt.Errorf("ARCHIV_PAGE_TARGET_ID must not be empty")
	}

	return cfg, nil
}
