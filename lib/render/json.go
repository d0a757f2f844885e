package render

import (
	"encoding/json"
	"io"

	"tpb-scraper/lib/scrapers/tpb"
)

// Json writes the result indented by four spaces. Nil slices are written as
// empty arrays so consumers never see null.
func Json(w io.Writer, result tpb.Result) error {
	normalized := tpb.Result{
		Categories: make([]tpb.Category, 0, len(result.Categories)),
		Trackers:   result.Trackers,
	}
	if normalized.Trackers == nil {
		normalized.Trackers = []string{}
	}
	for _, c := range result.Categories {
		if c.Subcategories == nil {
			c.Subcategories = []tpb.Subcategory{}
		}
		normalized.Categories = append(normalized.Categories, c)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "    ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(normalized)
}
