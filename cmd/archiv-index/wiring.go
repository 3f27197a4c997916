package main

import (
	"github.com/brabenetz/archiv-index/internal/build"
	"github.com/brabenetz/archiv-index/internal/config"
	"github.com/brabenetz/archiv-index/internal/github"
	"github.com/brabenetz/archiv-index/internal/handler"
)

func newGitHubClient(cfg *config.Config) *github.Client {
	return github.NewClient(
		github.WithAPIURL(cfg.GitHub.APIURL),
		github.WithRepository(cfg.GitHub.Owner, cfg.GitHub.Repo),
		github.WithPath(cfg.GitHub.Path, cfg.GitHub.Ref),
		github.WithTimeout(cfg.GitHub.Timeout),
		github.WithUserAgent("archiv-index/"+build.Version),
	)
}

func newHost(cfg *config.Config) handler.HostSource {
	if cfg.Page.Template != "" {
		return handler.NewFileHost(cfg.Page.Template)
	}
	return handler.NewTemplateHost(cfg.GitHub.Repo, cfg.Page.TargetID)
}
