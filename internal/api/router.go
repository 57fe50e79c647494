package api

import (
	"github.com/gin-gonic/gin"

	"github.com/haniljang/newsbrief/internal/app"
)

// NewRouter builds the gin engine for an App.
func NewRouter(a *app.App) *gin.Engine {
	h := NewNewsHandler(a.Scraper, a.Summarizer, a.Resolver, a.HasAIClient())
	return newRouter(h)
}

func newRouter(h *NewsHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	api.POST("/extract", h.Extract)
	api.POST("/summarize", h.Summarize)
	api.GET("/news/supported-sites", h.SupportedSites)
	api.GET("/health", h.Health)
	return r
}
