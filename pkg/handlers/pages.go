package handlers

import (
	"net/http"

	"fm-blog/pkg/catalog"
	"fm-blog/pkg/config"
	"fm-blog/pkg/models"
	"fm-blog/pkg/services"

	"github.com/gin-gonic/gin"
)

func categoryViews(cat *models.Catalog) []models.CategoryView {
	views := make([]models.CategoryView, 0, len(cat.Categories))
	for _, c := range cat.Categories {
		views = append(views, models.CategoryView{Category: c, ArticleCount: len(c.Articles)})
	}
	return views
}

// Home renders the landing page: the latest article across every category
// plus the category list.
func Home(c *gin.Context) {
	cat := catalog.Get()
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Title":      config.SiteTitle,
		"Latest":     services.LatestArticle(cat, config.ContentDir),
		"Categories": categoryViews(cat),
	})
}

// BlogIndex lists every category with its article count.
func BlogIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "blog.html", gin.H{
		"Title":      config.SiteTitle,
		"Categories": categoryViews(catalog.Get()),
	})
}

// CategoryPage renders one category and its articles sorted by part.
func CategoryPage(c *gin.Context) {
	cat, articles := services.CategoryArticles(catalog.Get(), config.ContentDir, c.Param("category"))
	if cat == nil {
		NotFound(c)
		return
	}
	c.HTML(http.StatusOK, "category.html", gin.H{
		"Title":    config.SiteTitle,
		"Category": cat,
		"Articles": articles,
	})
}

// ArticlePage renders a single article: parsed content blocks, reading time
// and prev/next navigation. A missing content file is a 404 here, unlike on
// listing pages where it only degrades the entry.
func ArticlePage(c *gin.Context) {
	categoryID := c.Param("category")
	cat, article := services.ArticleByID(catalog.Get(), categoryID, c.Param("article"))
	if cat == nil || article == nil {
		NotFound(c)
		return
	}

	content, err := services.ReadArticle(config.ContentDir, article.Filename)
	if err != nil {
		NotFound(c)
		return
	}

	prev, next := services.PrevNext(catalog.Get(), categoryID, article.Part)
	c.HTML(http.StatusOK, "article.html", gin.H{
		"Title":       config.SiteTitle,
		"Category":    cat,
		"Article":     article,
		"Blocks":      services.ParseContent(content),
		"ReadingTime": services.ReadingTime(content),
		"Prev":        prev,
		"Next":        next,
	})
}

// LegacyArticle redirects old flat /article/{id} URLs to the canonical
// per-category path. An id no category claims fails like any other lookup.
func LegacyArticle(c *gin.Context) {
	cat, article := services.FindArticleCategory(catalog.Get(), c.Param("article"))
	if cat == nil || article == nil {
		NotFound(c)
		return
	}
	c.Redirect(http.StatusMovedPermanently, "/blog/"+cat.ID+"/"+article.ID)
}

// Projects renders the static projects page.
func Projects(c *gin.Context) {
	c.HTML(http.StatusOK, "projects.html", gin.H{"Title": config.SiteTitle})
}

// About renders the static about page.
func About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", gin.H{"Title": config.SiteTitle})
}

// NotFound renders the shared 404 page.
func NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", gin.H{"Title": config.SiteTitle})
}
