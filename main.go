package main

import (
	"html/template"
	"log"

	"fm-blog/pkg/catalog"
	"fm-blog/pkg/config"
	"fm-blog/pkg/handlers"
	"fm-blog/pkg/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize config
	config.Init()

	if err := catalog.Init(config.CatalogPath); err != nil {
		log.Fatalf("catalog: %v", err)
	}

	r := gin.Default()

	// Templates & Static Files
	r.SetFuncMap(template.FuncMap{"formatDate": services.FormatDate})
	r.LoadHTMLGlob("templates/*")
	r.Static("/static", "./static")

	r.GET("/", handlers.Home)
	r.GET("/blog", handlers.BlogIndex)
	r.GET("/blog/:category", handlers.CategoryPage)
	r.GET("/blog/:category/:article", handlers.ArticlePage)
	r.GET("/article/:article", handlers.LegacyArticle)
	r.GET("/projects", handlers.Projects)
	r.GET("/about", handlers.About)
	r.NoRoute(handlers.NotFound)

	r.Run(":" + config.Port)
}
