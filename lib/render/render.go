// Package render turns a scraped tpb.Result into something printable. None of
// the renderers modify the result.
package render

import (
	"fmt"
	"io"

	"tpb-scraper/lib/scrapers/tpb"
)

type Format string

const (
	FormatText    Format = "text"
	FormatJson    Format = "json"
	FormatCodegen Format = "codegen"
)

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatJson, FormatCodegen:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown output format %q (expected text, json or codegen)", s)
}

type Options struct {
	Codegen CodegenOptions
}

func Render(w io.Writer, format Format, result tpb.Result, opts Options) error {
	switch format {
	case FormatText:
		return Text(w, result)
	case FormatJson:
		return Json(w, result)
	case FormatCodegen:
		return Codegen(w, result, opts.Codegen)
	}
	return fmt.Errorf("unknown output format %q", format)
}
