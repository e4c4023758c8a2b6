package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jinchengKuang/jay-kuang/internal/config"
	"github.com/jinchengKuang/jay-kuang/internal/content"
	"github.com/jinchengKuang/jay-kuang/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate the static portfolio site",
	Long: `Fetches the content document, renders every section in order, and
writes the complete static site to the configured output directory.
A load or parse failure stops the build; there are no retries.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		_, n, err := runBuild(cmd.Context(), cfg, buildOpts(cfg, "", false))
		if err != nil {
			return err
		}

		fmt.Printf("Site generated: %s (%d sections)\n", cfg.OutputDir, n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

// buildOpts derives generator options from config. formEndpoint is the
// local API path when serving; for a plain static build the page posts
// straight to the document's configured form action, if any.
func buildOpts(cfg *config.Config, formEndpoint string, liveReload bool) site.Options {
	return site.Options{
		FormEndpoint:    formEndpoint,
		RevealThreshold: cfg.Reveal.Threshold,
		RevealMargin:    cfg.Reveal.Margin,
		RevealDelayMS:   cfg.Reveal.InitialDelayMS,
		ToastDurationMS: cfg.ToastDurationMS,
		SimulateDelayMS: cfg.Form.SimulateDelayMS,
		LiveReload:      liveReload,
	}
}

// runBuild is the single load, render, write pass shared by build and
// serve. It returns the loaded document and the number of rendered sections.
func runBuild(ctx context.Context, cfg *config.Config, opts site.Options) (*content.Document, int, error) {
	doc, err := content.Open(ctx, nil, cfg.Content)
	if err != nil {
		return nil, 0, err
	}

	// Static builds without a local API post directly to the configured
	// form action. An empty endpoint means the page simulates success.
	if opts.FormEndpoint == "" && doc.Contact != nil && doc.Contact.Form != nil {
		opts.FormEndpoint = doc.Contact.Form.Action
	}

	g := &site.Generator{
		Doc:       doc,
		OutputDir: cfg.OutputDir,
		StaticDir: cfg.StaticDir,
		Include:   cfg.Include,
		Exclude:   cfg.Exclude,
		Opts:      opts,
	}
	n, err := g.Generate()
	if err != nil {
		return nil, 0, err
	}
	return doc, n, nil
}
