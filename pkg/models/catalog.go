package models

// Category is one section of the site holding an ordered run of articles.
// Part numbers within a category are unique positive integers, though not
// necessarily contiguous.
type Category struct {
	ID          string    `json:"id" yaml:"id" toml:"id"`
	Name        string    `json:"name" yaml:"name" toml:"name"`
	Subtitle    string    `json:"subtitle" yaml:"subtitle" toml:"subtitle"`
	Description string    `json:"description" yaml:"description" toml:"description"`
	Image       string    `json:"image" yaml:"image" toml:"image"`
	Articles    []Article `json:"articles" yaml:"articles" toml:"articles"`
}

// CategoryView carries a category plus its article count for index pages.
type CategoryView struct {
	Category
	ArticleCount int `json:"article_count"`
}

// Catalog is the registry of every category and article. Iteration order is
// declaration order. Built once at startup, read-only afterwards.
type Catalog struct {
	Categories []Category `json:"categories" yaml:"categories" toml:"categories"`
}
