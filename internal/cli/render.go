package cli

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/vcrobe/nojs-landing/internal/site"
)

func newRenderCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the rendered page to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := validApp(cmd)
			if err != nil {
				return err
			}

			opts := app.SiteOptions()
			opts.Compress = false
			bundle, err := site.Build(opts)
			if err != nil {
				return err
			}

			var out []byte
			switch format {
			case "html":
				out = bundle.HTML
			case "md", "markdown":
				out = bundle.Markdown
			case "term":
				if out, err = renderTerminal(bundle.Markdown); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown format %q (want html, md or term)", format)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "html", "output format: html, md or term")
	return cmd
}

// renderTerminal styles the Markdown rendition for a terminal preview.
func renderTerminal(md []byte) ([]byte, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dracula"),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	out, err := r.RenderBytes(md)
	if err != nil {
		return nil, fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}
