package server

import (
	"embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed assets/index.html
var assetsFS embed.FS

func serveIndex(c *gin.Context) {
	page, err := assetsFS.ReadFile("assets/index.html")
	if err != nil {
		c.String(http.StatusInternalServerError, "ui unavailable")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}
