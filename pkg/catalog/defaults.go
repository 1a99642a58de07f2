package catalog

import "fm-blog/pkg/models"

// ============================================================
// DEFAULT CATALOG
// ============================================================
// Add your articles here, or point CATALOG_PATH at a yaml/toml
// file with the same shape. Each article needs:
//   - id: unique identifier within its category (used in URL)
//   - title: display title
//   - date: publication date (YYYY-MM-DD)
//   - filename: name of the .txt file in the articles/ folder
//   - part: position in the series
// ============================================================

var defaultCatalog = models.Catalog{
	Categories: []models.Category{
		{
			ID:          "rebuild",
			Name:        "The Rebuild",
			Subtitle:    "Six seasons to take a fallen giant back to the top",
			Description: "A long-form save diary following one club from relegation favourites to contenders, one transfer window at a time.",
			Image:       "/static/rebuild.jpg",
			Articles: []models.Article{
				{ID: "part-1", Title: "How did we fall so far?", Date: "2024-01-15", Filename: "article1.txt", Part: 1},
				{ID: "part-2", Title: "The struggle is real, or is it?", Date: "2024-02-20", Filename: "article2.txt", Part: 2},
				{ID: "part-3", Title: "Crossing the line", Date: "2024-03-10", Filename: "article3.txt", Part: 3},
				{ID: "part-4", Title: "Out with the old and in with the older", Date: "2024-04-05", Filename: "article4.txt", Part: 4},
				{ID: "part-5", Title: "The Crucible", Date: "2024-05-12", Filename: "article5.txt", Part: 5},
				{ID: "part-6", Title: "Disaster and Triumph", Date: "2024-06-01", Filename: "article6.txt", Part: 6},
			},
		},
		{
			ID:          "scouting",
			Name:        "Scouting Notebook",
			Subtitle:    "Finding gems before the big clubs do",
			Description: "Shorter pieces on scouting networks, wonderkids and the bargain bin.",
			Image:       "/static/scouting.jpg",
			Articles: []models.Article{
				{ID: "part-1", Title: "The loan army pays off", Date: "2024-03-22", Filename: "scouting1.txt", Part: 1},
				{ID: "part-2", Title: "Regens worth losing sleep over", Date: "2024-05-30", Filename: "scouting2.txt", Part: 2},
			},
		},
	},
}
