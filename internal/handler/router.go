package handler

import (
	"io/fs"
	"net/http"

	"github.com/NYTimes/gziphandler"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/brabenetz/archiv-index/docs/swagger"
	"github.com/brabenetz/archiv-index/internal/api"
	"github.com/brabenetz/archiv-index/internal/render"
	"github.com/brabenetz/archiv-index/web"
)

// gzipMinSize keeps tiny responses (health checks, short fragments) uncompressed.
const gzipMinSize = 256

// Deps holds all dependencies required to build the HTTP router.
type Deps struct {
	Host     HostSource
	Renderer *render.Renderer
	Lister   render.Lister
	TargetID string
}

// NewRouter assembles the full chi router with all middleware and routes.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Static assets (embedded). Use fs.Sub so the file server sees
	// css/app.css directly, not static/css/... paths.
	staticSub, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		panic("failed to sub static FS: " + err.Error())
	}
	r.Handle("/static/*", http.StripPrefix("/static", http.FileServerFS(staticSub)))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	targetID := deps.TargetID
	if targetID == "" {
		targetID = render.DefaultTargetID
	}
	versions := NewVersionsHandler(deps.Host, deps.Renderer, targetID)
	r.Get("/", versions.Index)
	r.Get("/versions", versions.Fragment)

	r.Get("/api/docs/*", httpSwagger.WrapHandler)
	r.Mount("/api/v1", api.NewAPIRouter(api.Deps{
		Renderer: deps.Renderer,
		Lister:   deps.Lister,
	}))

	gz, err := gziphandler.GzipHandlerWithOpts(gziphandler.MinSize(gzipMinSize))
	if err != nil {
		panic("failed to build gzip handler: " + err.Error())
	}
	return gz(r)
}
