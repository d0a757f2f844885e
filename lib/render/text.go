package render

import (
	"bufio"
	"fmt"
	"io"

	"tpb-scraper/lib/scrapers/tpb"
)

func Text(w io.Writer, result tpb.Result) error {
	out := bufio.NewWriter(w)

	fmt.Fprintln(out, "Categories:")
	for _, category := range result.Categories {
		fmt.Fprintf(out, "  %d %s\n", category.Code, category.Name)
		for _, sub := range category.Subcategories {
			fmt.Fprintf(out, "    %d %s: %s\n", sub.Code, category.Name, sub.Name)
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Trackers:")
	for _, tracker := range result.Trackers {
		fmt.Fprintf(out, "  %s\n", tracker)
	}

	return out.Flush()
}
