package render

import (
	"fmt"
	"go/format"
	"io"
	"strconv"
	"strings"

	"tpb-scraper/lib/scrapers/tpb"
)

type CodegenOptions struct {
	// Package is the package clause of the generated file, defaults to "apibay".
	Package string
	// Generator is named in the "Code generated" header, defaults to "tpb-scraper".
	Generator string
	// Source is the url the data was scraped from, omitted when empty.
	Source string
}

func (o CodegenOptions) withDefaults() CodegenOptions {
	if o.Package == "" {
		o.Package = "apibay"
	}
	if o.Generator == "" {
		o.Generator = "tpb-scraper"
	}
	return o
}

// Codegen writes a gofmt'd Go file with two tables: Categories, the flattened
// (code, "Category: Subcategory") pairs, and Trackers. The CategoryName type is
// expected to exist in the target package.
func Codegen(w io.Writer, result tpb.Result, opts CodegenOptions) error {
	opts = opts.withDefaults()

	var src strings.Builder
	fmt.Fprintf(&src, "// Code generated by %s. DO NOT EDIT.\n", opts.Generator)
	if opts.Source != "" {
		fmt.Fprintf(&src, "// Source: %s\n", opts.Source)
	}
	fmt.Fprintf(&src, "\npackage %s\n\n", opts.Package)

	src.WriteString("// Categories lists every category code and its display name.\n")
	src.WriteString("var Categories = []CategoryName{\n")
	for _, entry := range result.Flatten() {
		fmt.Fprintf(&src, "{Code: %d, Name: %s},\n", entry.Code, strconv.Quote(entry.Name))
	}
	src.WriteString("}\n\n")

	src.WriteString("// Trackers are the trackers the site adds to its magnet links.\n")
	src.WriteString("var Trackers = []string{\n")
	for _, tracker := range result.Trackers {
		fmt.Fprintf(&src, "%s,\n", strconv.Quote(tracker))
	}
	src.WriteString("}\n")

	formatted, err := format.Source([]byte(src.String()))
	if err != nil {
		return fmt.Errorf("format generated source: %w", err)
	}
	_, err = w.Write(formatted)
	return err
}
