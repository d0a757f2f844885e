package apibay

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"tpb-scraper/lib/textutil"

	"github.com/antzucaro/matchr"
)

//go:generate sh -c "go run ../../cmd/tpb-scraper --codegen --package apibay > catalog.go"

// CategoryName is one row of the generated Categories table.
type CategoryName struct {
	Code uint16
	Name string
}

// Category is a media category code as used by the api.
type Category uint16

// NewCategory returns the category for `code` if it is listed in Categories.
func NewCategory(code uint16) (Category, bool) {
	for _, c := range Categories {
		if c.Code == code {
			return Category(code), true
		}
	}
	return 0, false
}

func AllCategories() []Category {
	out := make([]Category, len(Categories))
	for i, c := range Categories {
		out[i] = Category(c.Code)
	}
	return out
}

func lookupName(code uint16) (string, bool) {
	for _, c := range Categories {
		if c.Code == code {
			return c.Name, true
		}
	}
	return "", false
}

func (c Category) Code() uint16 {
	return uint16(c)
}

func (c Category) IsTopLevel() bool {
	return c%100 == 0
}

// Parent is the top-level category this one belongs to, itself for top-level categories.
func (c Category) Parent() Category {
	return c - c%100
}

// Name looks up the display name of the category, falling back to its parent's
// name for codes the table doesn't know about.
func (c Category) Name() string {
	if name, ok := lookupName(c.Code()); ok {
		return name
	}
	if name, ok := lookupName(c.Parent().Code()); ok {
		return name
	}
	return "Unknown"
}

func (c Category) String() string {
	return fmt.Sprintf("%d %s", c.Code(), c.Name())
}

func (c *Category) UnmarshalJSON(data []byte) error {
	var code uint64
	err := json.Unmarshal(data, (*flexUint)(&code))
	if err != nil {
		return fmt.Errorf("category: %w", err)
	}
	if code > 0xffff {
		return fmt.Errorf("category: %d does not fit in a u16", code)
	}
	*c = Category(code)
	return nil
}

// minimum Jaro-Winkler similarity for a name to count as a match
const resolveThreshold = 0.85

// ResolveCategory turns user input into a category: either a numeric code or
// (an approximation of) a name like "movies" or "Video: HD - Movies".
func ResolveCategory(query string) (Category, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return 0, fmt.Errorf("empty category")
	}

	if code, err := strconv.ParseUint(query, 10, 16); err == nil {
		category, ok := NewCategory(uint16(code))
		if !ok {
			return 0, fmt.Errorf("unknown category code %d", code)
		}
		return category, nil
	}

	normalized := textutil.NormalizeName(query)
	// full names first so "other" is 600 rather than "Audio: Other"
	for _, c := range Categories {
		if textutil.NormalizeName(c.Name) == normalized {
			return Category(c.Code), nil
		}
	}
	for _, c := range Categories {
		if textutil.NormalizeName(shortName(c.Name)) == normalized {
			return Category(c.Code), nil
		}
	}

	var best Category
	var bestSimilarity float64
	for _, c := range Categories {
		for _, candidate := range []string{c.Name, shortName(c.Name)} {
			similarity := matchr.JaroWinkler(normalized, textutil.NormalizeName(candidate), false)
			if similarity > bestSimilarity {
				bestSimilarity = similarity
				best = Category(c.Code)
			}
		}
	}
	if bestSimilarity < resolveThreshold {
		return 0, fmt.Errorf("no category matches %q", query)
	}
	return best, nil
}

// shortName strips the parent prefix from a subcategory's display name.
func shortName(name string) string {
	_, sub, found := strings.Cut(name, ": ")
	if !found {
		return name
	}
	return sub
}
