// Command wisp loads a page from a URL or a local file, runs it through
// the parsing and layout pipeline, and either renders it to a PNG or dumps
// the intermediate trees.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wisp/pkg/css"
	"wisp/pkg/html"
	"wisp/pkg/layout"
	wispnet "wisp/pkg/net"
	"wisp/pkg/render"
	wispurl "wisp/pkg/url"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		outPath  string
		cssPath  string
		dumpMode bool
	)

	cmd := &cobra.Command{
		Use:          "wisp <url-or-file>",
		Short:        "Render a page to a PNG or dump its document and layout trees",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			defer logger.Sync()
			return run(logger, args[0], outPath, cssPath, dumpMode)
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "page.png", "output PNG path")
	cmd.Flags().StringVar(&cssPath, "css", "", "stylesheet file overriding the page's style element")
	cmd.Flags().BoolVar(&dumpMode, "dump", false, "print the document and layout trees instead of rendering")
	return cmd
}

func run(logger *zap.Logger, source, outPath, cssPath string, dumpMode bool) error {
	markup, err := loadSource(source)
	if err != nil {
		return err
	}
	logger.Info("loaded page", zap.String("source", source), zap.Int("bytes", len(markup)))

	window := html.Parse(markup)
	document := window.Document()

	styleText := html.StyleContent(document)
	if cssPath != "" {
		raw, err := os.ReadFile(cssPath)
		if err != nil {
			return fmt.Errorf("reading stylesheet: %w", err)
		}
		styleText = string(raw)
	}
	sheet := css.ParseString(styleText)
	logger.Info("parsed styles", zap.Int("rules", len(sheet.Rules)))

	view := layout.NewLayoutView(document, sheet)

	if dumpMode {
		fmt.Print(html.DumpTree(document))
		fmt.Print(layout.DumpView(view))
		return nil
	}

	r := render.New()
	r.Paint(view)
	if err := r.SavePNG(outPath); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	logger.Info("rendered page", zap.String("out", outPath))
	return nil
}

// loadSource fetches over HTTP when given a URL and reads a local file
// otherwise.
func loadSource(source string) (string, error) {
	if strings.HasPrefix(source, "http://") {
		u, err := wispurl.Parse(source)
		if err != nil {
			return "", err
		}
		return wispnet.NewClient().Get(u.Host, u.Port, u.Path)
	}
	raw, err := os.ReadFile(source)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", source, err)
	}
	return string(raw), nil
}
