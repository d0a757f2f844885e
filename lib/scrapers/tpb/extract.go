package tpb

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// The site ships its category menu and magnet trackers inside static/main.js,
// these patterns are the only coupling to that markup.
const (
	CategoryPattern = `category:(\d{3})[^>]*>([^<]+)<`
	TrackerPattern  = `encodeURIComponent\('(udp://[^']+)'`
)

var categoryRegex = regexp.MustCompile(CategoryPattern)
var trackerRegex = regexp.MustCompile(TrackerPattern)

type Subcategory struct {
	Code int    `json:"code"`
	Name string `json:"name"`
}

type Category struct {
	Code          int           `json:"code"`
	Name          string        `json:"name"`
	Subcategories []Subcategory `json:"subcategories"`
}

// Result is everything scraped from a single copy of main.js.
type Result struct {
	Categories []Category `json:"categories"`
	Trackers   []string   `json:"trackers"`
}

// Match is a single (code, label) pair as it appears in the source, before grouping.
type Match struct {
	Code int
	Name string
}

// Entry is one row of a flattened Result.
type Entry struct {
	Code int
	Name string
}

func isTopLevel(code int) bool {
	return code%100 == 0
}

func ScanCategories(text string) []Match {
	groups := categoryRegex.FindAllStringSubmatch(text, -1)
	matches := make([]Match, 0, len(groups))
	for _, g := range groups {
		// \d{3} always fits in an int
		code, _ := strconv.Atoi(g[1])
		matches = append(matches, Match{
			Code: code,
			Name: strings.TrimSpace(g[2]),
		})
	}
	return matches
}

// GroupCategories folds a flat list of matches into categories, attaching every
// non-top-level code to the most recent top-level one.
func GroupCategories(matches []Match) ([]Category, error) {
	categories := []Category{}
	var current *Category

	flush := func() {
		if current != nil {
			categories = append(categories, *current)
		}
	}

	for i, m := range matches {
		if isTopLevel(m.Code) {
			flush()
			current = &Category{
				Code:          m.Code,
				Name:          m.Name,
				Subcategories: []Subcategory{},
			}
			continue
		}
		if current == nil {
			return nil, &MalformedInputError{Index: i, Code: m.Code, Name: m.Name}
		}
		current.Subcategories = append(current.Subcategories, Subcategory{
			Code: m.Code,
			Name: m.Name,
		})
	}
	flush()

	return categories, nil
}

func ExtractCategories(text string) ([]Category, error) {
	return GroupCategories(ScanCategories(text))
}

func ExtractTrackers(text string) []string {
	groups := trackerRegex.FindAllStringSubmatch(text, -1)
	trackers := make([]string, 0, len(groups))
	for _, g := range groups {
		trackers = append(trackers, g[1])
	}
	return trackers
}

// Extract runs both extractions over the same text. It does no I/O and keeps
// no state between calls.
func Extract(text string) (Result, error) {
	categories, err := ExtractCategories(text)
	if err != nil {
		return Result{}, fmt.Errorf("extract categories: %w", err)
	}
	return Result{
		Categories: categories,
		Trackers:   ExtractTrackers(text),
	}, nil
}

// Flatten lists every category followed by its subcategories, subcategory names
// are prefixed with their parent's ("Video: Movies").
func (r Result) Flatten() []Entry {
	var out []Entry
	for _, c := range r.Categories {
		out = append(out, Entry{Code: c.Code, Name: c.Name})
		for _, s := range c.Subcategories {
			out = append(out, Entry{
				Code: s.Code,
				Name: fmt.Sprintf("%s: %s", c.Name, s.Name),
			})
		}
	}
	return out
}
