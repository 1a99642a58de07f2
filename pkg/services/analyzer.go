package services

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"fm-blog/pkg/models"
)

const (
	wordsPerMinute  = 200
	excerptMaxChars = 200

	// headingMaxChars is the length below which a period-free block is
	// treated as a heading.
	headingMaxChars = 80
)

var (
	sentenceEnd    = regexp.MustCompile(`([.!?])\s+`)
	headingPattern = regexp.MustCompile(`(?i)^part \d+`)
)

// ReadingTime estimates whole minutes to read text at 200 words per minute,
// rounded to the nearest minute. Never reports less than one minute, even
// for empty text.
func ReadingTime(text string) int {
	words := len(strings.Fields(text))
	minutes := int(math.Round(float64(words) / wordsPerMinute))
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

// Excerpt returns the first sentenceCount sentences of text joined by single
// spaces, hard-truncated to 200 characters. Empty input yields an empty
// excerpt.
func Excerpt(text string, sentenceCount int) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ""
	}

	sentences := splitSentences(trimmed)
	if len(sentences) > sentenceCount {
		sentences = sentences[:sentenceCount]
	}
	excerpt := strings.Join(sentences, " ")

	if utf8.RuneCountInString(excerpt) > excerptMaxChars {
		excerpt = string([]rune(excerpt)[:excerptMaxChars-3]) + "..."
	}
	return excerpt
}

// splitSentences cuts text after `.`, `!` or `?` followed by whitespace.
// A heuristic, not a grammar: abbreviations split too.
func splitSentences(text string) []string {
	marked := sentenceEnd.ReplaceAllString(text, "$1\x00")
	parts := strings.Split(marked, "\x00")
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// ParseContent splits raw article text into classified display blocks.
// Blocks are separated by blank lines; empty blocks are dropped. A block is
// a heading when it starts with "Part <n>" (any case), or when it is shorter
// than 80 characters and does not end with a period. Heading-free text comes
// back as plain paragraphs.
func ParseContent(text string) []models.ContentBlock {
	var blocks []models.ContentBlock
	for _, raw := range strings.Split(text, "\n\n") {
		block := strings.TrimSpace(raw)
		if block == "" {
			continue
		}

		kind := models.BlockParagraph
		if headingPattern.MatchString(block) ||
			(utf8.RuneCountInString(block) < headingMaxChars && !strings.HasSuffix(block, ".")) {
			kind = models.BlockHeading
		}
		blocks = append(blocks, models.ContentBlock{Type: kind, Content: block})
	}
	return blocks
}
