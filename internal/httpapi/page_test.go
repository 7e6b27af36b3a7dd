package httpapi_test

import (
	"net/http"
	"path/filepath"
	"testing"

	"github.com/Flaque/filet"
	"github.com/UnknownOlympus/geotasks/internal/httpapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexPage(t *testing.T) {
	t.Run("renders the entry page", func(t *testing.T) {
		defer filet.CleanUp(t)
		templates := filet.TmpDir(t, "")
		filet.File(t, filepath.Join(templates, "index.html"), `<!doctype html><title>GeoTasks</title><div id="map"></div>`)

		srv := newTestServer(t, func(opts *httpapi.Options) {
			opts.TemplatesDir = templates
		})

		rec := srv.do(t, http.MethodGet, "/", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, rec.Body.String(), `<div id="map"></div>`)
	})

	t.Run("falls back to plain text without a template", func(t *testing.T) {
		srv := newTestServer(t, func(opts *httpapi.Options) {
			opts.TemplatesDir = filepath.Join(t.TempDir(), "missing")
		})

		rec := srv.do(t, http.MethodGet, "/", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
		assert.Contains(t, rec.Body.String(), "GeoTasks API is running")
	})

	t.Run("broken template falls back to plain text", func(t *testing.T) {
		defer filet.CleanUp(t)
		templates := filet.TmpDir(t, "")
		filet.File(t, filepath.Join(templates, "index.html"), `{{ .Broken `)

		srv := newTestServer(t, func(opts *httpapi.Options) {
			opts.TemplatesDir = templates
		})

		rec := srv.do(t, http.MethodGet, "/", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "GeoTasks API is running")
	})

	t.Run("page does not affect the API", func(t *testing.T) {
		srv := newTestServer(t, func(opts *httpapi.Options) {
			opts.TemplatesDir = ""
		})

		rec := srv.do(t, http.MethodGet, "/tasks", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})
}

func TestStaticAssets(t *testing.T) {
	defer filet.CleanUp(t)
	static := filet.TmpDir(t, "")
	filet.File(t, filepath.Join(static, "script.js"), `console.log("map");`)

	srv := newTestServer(t, func(opts *httpapi.Options) {
		opts.StaticDir = static
	})

	rec := srv.do(t, http.MethodGet, "/static/script.js", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `console.log("map");`, rec.Body.String())

	rec = srv.do(t, http.MethodGet, "/static/missing.js", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBundledPage(t *testing.T) {
	srv := newTestServer(t, func(opts *httpapi.Options) {
		opts.TemplatesDir = filepath.Join("..", "..", "templates")
		opts.StaticDir = filepath.Join("..", "..", "static")
	})

	rec := srv.do(t, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `<script src="/static/script.js"></script>`)
	assert.Contains(t, rec.Body.String(), "leaflet-routing-machine")

	rec = srv.do(t, http.MethodGet, "/static/script.js", "")
	require.Equal(t, http.StatusOK, rec.Code)
	script := rec.Body.String()

	t.Run("arrival flow watches position and completes the nearest task", func(t *testing.T) {
		assert.Contains(t, script, "navigator.geolocation.watchPosition")
		assert.Contains(t, script, "const arrivalRadiusKm = 0.10;")
		assert.Contains(t, script, "fetch(`/delete/${nearest[0]}`, { method: \"DELETE\" })")
		assert.Contains(t, script, "speechSynthesis.speak")
		assert.Contains(t, script, "L.Routing.control")
	})

	t.Run("page uses the task and search routes", func(t *testing.T) {
		for _, route := range []string{`fetch("/add"`, `fetch("/tasks")`, "fetch(`/search?q="} {
			assert.Contains(t, script, route)
		}
	})
}
