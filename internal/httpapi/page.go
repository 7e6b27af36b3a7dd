package httpapi

import (
	"html/template"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

const (
	indexTemplate = "index.html"
	fallbackPage  = "GeoTasks API is running. The web page is not available."
)

// installIndex parses the entry page into the router. It reports false when the
// page cannot be used, in which case the fallback text is served instead.
func (h *handler) installIndex(router *gin.Engine, dir string) bool {
	tmpl, err := template.ParseFiles(filepath.Join(dir, indexTemplate))
	if err != nil {
		h.log.Warn("Entry page is unavailable, serving fallback text", "dir", dir, "error", err)
		return false
	}
	router.SetHTMLTemplate(tmpl)

	return true
}

func (h *handler) handleIndex(c *gin.Context) {
	if !h.hasIndex {
		c.String(http.StatusOK, fallbackPage)
		return
	}

	c.HTML(http.StatusOK, indexTemplate, nil)
}

func dirExists(dir string) bool {
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}
