package models

// Article is one catalog entry. Immutable after catalog initialization.
type Article struct {
	ID       string `json:"id" yaml:"id" toml:"id"`
	Title    string `json:"title" yaml:"title" toml:"title"`
	Date     string `json:"date" yaml:"date" toml:"date"`
	Filename string `json:"filename" yaml:"filename" toml:"filename"`
	Part     int    `json:"part" yaml:"part" toml:"part"`
}

// BlockType classifies a unit of parsed article text.
type BlockType string

const (
	BlockHeading   BlockType = "heading"
	BlockParagraph BlockType = "paragraph"
)

// ContentBlock is one display unit of an article body. Derived from the raw
// text on every render, never stored.
type ContentBlock struct {
	Type    BlockType `json:"type"`
	Content string    `json:"content"`
}

// ArticleView is an Article enriched with derived display fields. Built per
// request and discarded after the response.
type ArticleView struct {
	Article
	ReadingTime  int    `json:"reading_time"`
	Excerpt      string `json:"excerpt"`
	CategoryID   string `json:"category_id"`
	CategoryName string `json:"category_name"`
}
