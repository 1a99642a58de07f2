package services

import (
	"sort"

	"fm-blog/pkg/models"
)

// excerptSentences is how many leading sentences listing pages preview.
const excerptSentences = 2

func findCategory(cat *models.Catalog, categoryID string) *models.Category {
	for i := range cat.Categories {
		if cat.Categories[i].ID == categoryID {
			return &cat.Categories[i]
		}
	}
	return nil
}

// buildArticleView enriches an article with derived display fields. A failed
// content read degrades the derived fields (reading time 0, empty excerpt)
// instead of failing the caller; listing pages aggregate many articles and
// one unreadable file must not blank the page.
func buildArticleView(c *models.Category, a models.Article, contentDir string) models.ArticleView {
	view := models.ArticleView{
		Article:      a,
		CategoryID:   c.ID,
		CategoryName: c.Name,
	}
	if content, err := ReadArticle(contentDir, a.Filename); err == nil {
		view.ReadingTime = ReadingTime(content)
		view.Excerpt = Excerpt(content, excerptSentences)
	}
	return view
}

// CategoryArticles returns a category and its articles sorted ascending by
// part number, each enriched with reading time and excerpt. An unknown id
// returns nil and an empty slice.
func CategoryArticles(cat *models.Catalog, contentDir, categoryID string) (*models.Category, []models.ArticleView) {
	c := findCategory(cat, categoryID)
	if c == nil {
		return nil, []models.ArticleView{}
	}

	views := make([]models.ArticleView, 0, len(c.Articles))
	for _, a := range c.Articles {
		views = append(views, buildArticleView(c, a, contentDir))
	}
	sort.Slice(views, func(i, j int) bool { return views[i].Part < views[j].Part })
	return c, views
}

// ArticleByID looks up an article inside a category. Both results are nil
// for an unknown category; the category alone is returned when the article
// id is not in it.
func ArticleByID(cat *models.Catalog, categoryID, articleID string) (*models.Category, *models.Article) {
	c := findCategory(cat, categoryID)
	if c == nil {
		return nil, nil
	}
	for i := range c.Articles {
		if c.Articles[i].ID == articleID {
			return c, &c.Articles[i]
		}
	}
	return c, nil
}

// PrevNext finds the articles adjacent to part within a category. Adjacency
// is by exact part number, not list position, so a gap in the numbering
// leaves that neighbour absent.
func PrevNext(cat *models.Catalog, categoryID string, part int) (*models.Article, *models.Article) {
	c := findCategory(cat, categoryID)
	if c == nil {
		return nil, nil
	}

	var prev, next *models.Article
	for i := range c.Articles {
		switch c.Articles[i].Part {
		case part - 1:
			prev = &c.Articles[i]
		case part + 1:
			next = &c.Articles[i]
		}
	}
	return prev, next
}

// LatestArticle returns the most recently dated article across the whole
// catalog, enriched for display. Ties go to the first match in catalog
// order. Only an empty catalog yields nil.
func LatestArticle(cat *models.Catalog, contentDir string) *models.ArticleView {
	var latest *models.ArticleView
	for i := range cat.Categories {
		c := &cat.Categories[i]
		for _, a := range c.Articles {
			// ISO dates compare correctly as strings.
			if latest == nil || a.Date > latest.Date {
				view := buildArticleView(c, a, contentDir)
				latest = &view
			}
		}
	}
	return latest
}

// FindArticleCategory locates the first category containing articleID, in
// catalog order. Supports legacy URLs that carry no category segment.
func FindArticleCategory(cat *models.Catalog, articleID string) (*models.Category, *models.Article) {
	for i := range cat.Categories {
		c := &cat.Categories[i]
		for j := range c.Articles {
			if c.Articles[j].ID == articleID {
				return c, &c.Articles[j]
			}
		}
	}
	return nil, nil
}
