// Package docs serves the OpenAPI description of the quiz API.
package docs

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/json"

	"github.com/starquake/quizcrud/internal/config"
	"github.com/starquake/quizcrud/internal/must"
)

//go:embed static/*
var staticFS embed.FS

// Handler returns an [http.Handler] that serves /openapi.json.
// If cfg.IsProduction() is true, the document is minified.
func Handler(cfg *config.Config) http.Handler {
	fsys := must.Any(fs.Sub(staticFS, "static"))
	fileServer := http.FileServer(http.FS(fsys))

	if cfg.IsProduction() {
		m := minify.New()
		m.AddFunc("application/json", json.Minify)

		return m.Middleware(fileServer)
	}

	return fileServer
}
