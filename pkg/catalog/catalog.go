package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"fm-blog/pkg/models"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var current *models.Catalog

// Init builds the process-wide catalog. With an empty path the built-in
// default is used, otherwise the file at path is parsed by extension. The
// result is validated before it becomes visible; after Init returns nil the
// catalog is read-only for the process lifetime.
func Init(path string) error {
	cat := defaultCatalog
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return err
		}
		cat = *loaded
	}
	if err := Validate(&cat); err != nil {
		return err
	}
	current = &cat
	return nil
}

// Get returns the catalog built by Init.
func Get() *models.Catalog {
	return current
}

// Load parses a catalog file, choosing the parser by extension.
func Load(path string) (*models.Catalog, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cat models.Catalog
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &cat); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(content, &cat); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format: %s", path)
	}
	return &cat, nil
}

// Validate checks the catalog invariants: non-empty unique category ids,
// unique article ids and unique positive part numbers per category, and
// strictly ISO "YYYY-MM-DD" dates. A malformed date here is the only place
// it can surface; request-time formatting relies on this check.
func Validate(cat *models.Catalog) error {
	seenCategory := make(map[string]bool)
	for _, c := range cat.Categories {
		if c.ID == "" {
			return fmt.Errorf("category %q has an empty id", c.Name)
		}
		if seenCategory[c.ID] {
			return fmt.Errorf("duplicate category id %q", c.ID)
		}
		seenCategory[c.ID] = true

		seenArticle := make(map[string]bool)
		seenPart := make(map[int]bool)
		for _, a := range c.Articles {
			if a.ID == "" {
				return fmt.Errorf("category %q: article %q has an empty id", c.ID, a.Title)
			}
			if seenArticle[a.ID] {
				return fmt.Errorf("category %q: duplicate article id %q", c.ID, a.ID)
			}
			seenArticle[a.ID] = true

			if a.Part < 1 {
				return fmt.Errorf("category %q: article %q has non-positive part %d", c.ID, a.ID, a.Part)
			}
			if seenPart[a.Part] {
				return fmt.Errorf("category %q: duplicate part number %d", c.ID, a.Part)
			}
			seenPart[a.Part] = true

			if _, err := time.Parse("2006-01-02", a.Date); err != nil {
				return fmt.Errorf("category %q: article %q has malformed date %q", c.ID, a.ID, a.Date)
			}
		}
	}
	return nil
}
