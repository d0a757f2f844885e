package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"tpb-scraper/lib/apibay"
	"tpb-scraper/lib/textutil"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(w)
	return t
}

func (g *globals) apiClient() *apibay.Client {
	return apibay.NewClient(apibay.ClientOptions{
		BaseUrl:    g.config.ApiUrl,
		UserAgent:  g.config.UserAgent,
		Instrument: g.instrument,
	})
}

func renderTorrents(w io.Writer, torrents []apibay.PartialTorrent) {
	t := newTable(w)
	t.AppendHeader(table.Row{"ID", "Name", "Category", "Size", "SE", "LE", "Uploaded", "By"})
	for _, torrent := range torrents {
		t.AppendRow(table.Row{
			torrent.ID,
			torrent.Name,
			torrent.Category.Name(),
			humanize.Bytes(torrent.Size),
			torrent.Seeders,
			torrent.Leechers,
			humanize.Time(torrent.Added),
			fmt.Sprintf("%s (%s)", torrent.Username, torrent.Status),
		})
	}
	t.AppendFooter(table.Row{"", fmt.Sprintf("%d torrents", len(torrents))})
	t.Render()
}

func parseId(arg string) (uint64, error) {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid torrent id %q", arg)
	}
	return id, nil
}

func newApiCmd(g *globals) *cobra.Command {
	apiCmd := &cobra.Command{
		Use:   "api",
		Short: "Queries the json api behind the site (apibay).",
	}
	apiCmd.PersistentFlags().StringVar(&g.apiUrl, "api-url", apibay.DefaultBaseUrl, "The base url of the api.")

	var searchCategory string
	searchCmd := &cobra.Command{
		Use:   "search <query...> [--category <code or name>]",
		Short: "Searches torrents by name.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var category *apibay.Category
			if searchCategory != "" {
				resolved, err := apibay.ResolveCategory(searchCategory)
				if err != nil {
					return err
				}
				category = &resolved
			}

			torrents, err := g.apiClient().Search(cmd.Context(), strings.Join(args, " "), category)
			if err != nil {
				return err
			}
			renderTorrents(cmd.OutOrStdout(), torrents)
			return nil
		},
	}
	searchCmd.Flags().StringVar(&searchCategory, "category", "", "Only search within this category.")

	var topCategory string
	var last48h bool
	topCmd := &cobra.Command{
		Use:   "top --category <code or name> [--48h]",
		Short: "Lists the top 100 torrents of a category.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := apibay.ResolveCategory(topCategory)
			if err != nil {
				return err
			}
			torrents, err := g.apiClient().Top100(cmd.Context(), category, last48h)
			if err != nil {
				return err
			}
			renderTorrents(cmd.OutOrStdout(), torrents)
			return nil
		},
	}
	topCmd.Flags().StringVar(&topCategory, "category", "", "The category to list.")
	topCmd.Flags().BoolVar(&last48h, "48h", false, "Only count torrents uploaded in the last 48 hours.")
	topCmd.MarkFlagRequired("category")

	torrentCmd := &cobra.Command{
		Use:   "torrent <id>",
		Short: "Shows the details and magnet link of a torrent.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseId(args[0])
			if err != nil {
				return err
			}
			torrent, err := g.apiClient().Torrent(cmd.Context(), id)
			if err != nil {
				return err
			}

			t := newTable(cmd.OutOrStdout())
			t.AppendRows([]table.Row{
				{"Name", torrent.Name},
				{"Category", torrent.Category.String()},
				{"Size", fmt.Sprintf("%s in %d files", humanize.Bytes(torrent.Size), torrent.NumFiles)},
				{"Seeders", torrent.Seeders},
				{"Leechers", torrent.Leechers},
				{"Uploaded", fmt.Sprintf("%s by %s (%s)", torrent.Added.Format("2006-01-02 15:04"), torrent.Username, torrent.Status)},
				{"Info hash", torrent.InfoHash},
			})
			if torrent.IMDB != "" {
				t.AppendRow(table.Row{"IMDB", torrent.IMDB})
			}
			t.Render()

			fmt.Fprintln(cmd.OutOrStdout(), torrent.Magnet())
			if torrent.Descr != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", torrent.Descr)
			}
			return nil
		},
	}

	filesCmd := &cobra.Command{
		Use:   "files <id>",
		Short: "Lists the files of a torrent.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseId(args[0])
			if err != nil {
				return err
			}
			files, err := g.apiClient().TorrentFiles(cmd.Context(), id)
			if err != nil {
				return err
			}

			t := newTable(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"Name", "Size"})
			var total uint64
			for _, f := range files {
				t.AppendRow(table.Row{f.Name, humanize.Bytes(f.Size)})
				total += f.Size
			}
			t.AppendFooter(table.Row{fmt.Sprintf("%d files", len(files)), humanize.Bytes(total)})
			t.Render()
			return nil
		},
	}

	categoriesCmd := &cobra.Command{
		Use:   "categories [filter...]",
		Short: "Lists the category codes known to the api, optionally only those whose name contains a filter.",
		RunE: func(cmd *cobra.Command, args []string) error {
			filters := make([]string, 0, len(args))
			for _, arg := range args {
				filters = append(filters, textutil.NormalizeName(arg))
			}

			t := newTable(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"Code", "Name"})
			for _, category := range apibay.AllCategories() {
				if len(filters) > 0 && !textutil.MatchName(category.Name(), filters) {
					continue
				}
				if category.IsTopLevel() && len(filters) == 0 {
					t.AppendSeparator()
				}
				t.AppendRow(table.Row{category.Code(), category.Name()})
			}
			t.Render()
			return nil
		},
	}

	apiCmd.AddCommand(searchCmd, topCmd, torrentCmd, filesCmd, categoriesCmd)
	return apiCmd
}
