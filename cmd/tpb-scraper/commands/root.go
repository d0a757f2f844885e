package commands

import (
	"bytes"
	"context"
	"log/slog"

	"tpb-scraper/lib/render"
	"tpb-scraper/lib/restyutil"
	"tpb-scraper/lib/scrapers/tpb"
	"tpb-scraper/lib/telemetry"

	"github.com/spf13/cobra"
)

// globals is shared by every command, it is filled in by the flags and by
// setup before any command runs.
type globals struct {
	verbose  bool
	text     bool
	json     bool
	codegen  bool
	pkg      string
	mirror   string
	apiUrl   string
	dumpHttp string

	config     Config
	instrument restyutil.InstrumentOutput
}

func (g *globals) setup(cmd *cobra.Command, args []string) error {
	telemetry.InitSlog(g.verbose)

	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return err
	}
	g.config = cfg

	if cfg.DumpHttp != "" {
		if !g.verbose {
			slog.Warn("http dumps are only written with --verbose, ignoring --dump-http", "dir", cfg.DumpHttp)
			return nil
		}
		output, err := restyutil.NewFilesystemOutput(cfg.DumpHttp)
		if err != nil {
			return err
		}
		g.instrument = output
	}
	return nil
}

func (g *globals) format() render.Format {
	switch {
	case g.json:
		return render.FormatJson
	case g.codegen:
		return render.FormatCodegen
	}
	return render.FormatText
}

func (g *globals) scrape(cmd *cobra.Command, args []string) error {
	client, err := tpb.NewClient(tpb.ClientOptions{
		Mirror:           g.config.Mirror,
		UserAgent:        g.config.UserAgent,
		BypassCloudflare: g.config.BypassCloudflare,
		Instrument:       g.instrument,
	})
	if err != nil {
		return err
	}

	slog.Debug("fetching", "url", client.ScriptUrl())
	result, err := client.Scrape(cmd.Context())
	if err != nil {
		return err
	}
	slog.Debug(
		"scraped main.js",
		"categories", len(result.Categories),
		"trackers", len(result.Trackers),
	)

	// rendered in full first so a failure never leaves half an output behind
	var buf bytes.Buffer
	err = render.Render(&buf, g.format(), result, render.Options{
		Codegen: render.CodegenOptions{
			Package: g.pkg,
			Source:  client.ScriptUrl(),
		},
	})
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(buf.Bytes())
	return err
}

func NewRootCmd() *cobra.Command {
	g := &globals{}

	rootCmd := &cobra.Command{
		Use:   "tpb-scraper [--text | --json | --codegen]",
		Short: "tpb-scraper scrapes the category and tracker tables out of thepiratebay's main.js.",
		Args:  cobra.NoArgs,

		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: g.setup,
		RunE:              g.scrape,
	}

	persistent := rootCmd.PersistentFlags()
	persistent.BoolVarP(&g.verbose, "verbose", "v", false, "Enable debug logging.")
	persistent.StringVar(&g.dumpHttp, "dump-http", "", "Write a dump of every http exchange into this directory (needs --verbose).")

	flags := rootCmd.Flags()
	flags.StringVarP(&g.mirror, "mirror", "m", tpb.DefaultMirror, "The mirror to fetch /static/main.js from.")
	flags.BoolVarP(&g.text, "text", "t", false, "Print a human readable listing (default).")
	flags.BoolVarP(&g.json, "json", "j", false, "Print the result as json.")
	flags.BoolVarP(&g.codegen, "codegen", "c", false, "Print a Go source file with the category and tracker tables.")
	flags.StringVar(&g.pkg, "package", "apibay", "The package clause of the --codegen output.")
	rootCmd.MarkFlagsMutuallyExclusive("text", "json", "codegen")

	rootCmd.AddCommand(newApiCmd(g))

	return rootCmd
}

func ExecuteContext(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
