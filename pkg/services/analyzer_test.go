package services

import (
	"strings"
	"testing"

	"fm-blog/pkg/models"
)

func TestReadingTime(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{"empty text", "", 1},
		{"a few words", "one two three", 1},
		{"exactly one minute", strings.Repeat("word ", 200), 1},
		{"rounds down", strings.Repeat("word ", 260), 1},
		{"two minutes", strings.Repeat("word ", 400), 2},
		{"rounds half up", strings.Repeat("word ", 700), 4},
		{"whitespace only", "  \n\t  ", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReadingTime(tt.text); got != tt.expected {
				t.Errorf("ReadingTime() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestReadingTimeMinimum(t *testing.T) {
	inputs := []string{"", "word", strings.Repeat("word ", 50), "Short. Text! Here?"}
	for _, text := range inputs {
		if got := ReadingTime(text); got < 1 {
			t.Errorf("ReadingTime(%q) = %d, want >= 1", text, got)
		}
	}
}

func TestExcerpt(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		sentences int
		expected  string
	}{
		{"empty", "", 2, ""},
		{"whitespace only", "   \n  ", 2, ""},
		{"first two of three", "First sentence. Second sentence. Third sentence.", 2, "First sentence. Second sentence."},
		{"fewer than requested", "Only one here.", 2, "Only one here."},
		{"exclamation and question", "Wait! Really? Yes.", 2, "Wait! Really?"},
		{"newline boundary", "First.\nSecond one here. Third.", 2, "First. Second one here."},
		{"no terminator", "no sentence ending at all", 2, "no sentence ending at all"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Excerpt(tt.text, tt.sentences); got != tt.expected {
				t.Errorf("Excerpt() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestExcerptTruncation(t *testing.T) {
	long := strings.Repeat("a", 250)
	got := Excerpt(long, 2)

	want := strings.Repeat("a", 197) + "..."
	if got != want {
		t.Errorf("Excerpt() = %q, want 197 chars plus ellipsis", got)
	}
	if len([]rune(got)) != 200 {
		t.Errorf("truncated excerpt length = %d, want 200", len([]rune(got)))
	}
}

func TestExcerptNeverExceedsLimit(t *testing.T) {
	inputs := []string{
		"",
		"Short.",
		strings.Repeat("a", 500),
		strings.Repeat("Some sentence with several words in it. ", 20),
		strings.Repeat("ü", 300),
	}
	for _, text := range inputs {
		if got := Excerpt(text, 2); len([]rune(got)) > 200 {
			t.Errorf("Excerpt length = %d for input of %d chars, want <= 200", len([]rune(got)), len(text))
		}
	}
}

func TestParseContent(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []models.ContentBlock
	}{
		{"empty", "", nil},
		{"blank lines only", "\n\n   \n\n\t\n\n", nil},
		{
			"part marker heading",
			"Part 1\n\nThe opening paragraph of the story, which ends with a period.",
			[]models.ContentBlock{
				{Type: models.BlockHeading, Content: "Part 1"},
				{Type: models.BlockParagraph, Content: "The opening paragraph of the story, which ends with a period."},
			},
		},
		{
			"case insensitive part marker",
			"pArT 12 the return",
			[]models.ContentBlock{{Type: models.BlockHeading, Content: "pArT 12 the return"}},
		},
		{
			"short line without period",
			"A word on the dressing room",
			[]models.ContentBlock{{Type: models.BlockHeading, Content: "A word on the dressing room"}},
		},
		{
			"short line with period",
			"Short.",
			[]models.ContentBlock{{Type: models.BlockParagraph, Content: "Short."}},
		},
		{
			"long line without period",
			strings.TrimSpace(strings.Repeat("word ", 20)),
			[]models.ContentBlock{{Type: models.BlockParagraph, Content: strings.TrimSpace(strings.Repeat("word ", 20))}},
		},
		{
			"heading free text",
			"First paragraph about the match we nearly lost on the opening day of the season.\n\nSecond paragraph about the one we actually lost the following weekend instead.",
			[]models.ContentBlock{
				{Type: models.BlockParagraph, Content: "First paragraph about the match we nearly lost on the opening day of the season."},
				{Type: models.BlockParagraph, Content: "Second paragraph about the one we actually lost the following weekend instead."},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseContent(tt.text)
			if len(got) != len(tt.expected) {
				t.Fatalf("ParseContent() returned %d blocks, want %d", len(got), len(tt.expected))
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("block %d = %+v, want %+v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestParseContentNoEmptyBlocks(t *testing.T) {
	text := "Part 1\n\n\n\n  \n\nReal content here at last, closed off properly with a period."
	for i, b := range ParseContent(text) {
		if b.Content == "" {
			t.Errorf("block %d has empty content", i)
		}
	}
}
