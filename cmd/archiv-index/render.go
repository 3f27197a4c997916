package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/brabenetz/archiv-index/internal/config"
	"github.com/brabenetz/archiv-index/internal/render"
)

func newRenderCmd() *cobra.Command {
	var (
		out      string
		fragment bool
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the version list once and write the page",
		Long: "Render fetches the archive listing once and writes the host document with the\n" +
			"version list filled in. A failed fetch still writes the page with the current link.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			doc, err := newHost(cfg).Load()
			if err != nil {
				return err
			}
			page, err := render.NewPage(doc, cfg.Page.TargetID, render.NewRenderer(newGitHubClient(cfg)))
			if err != nil {
				return err
			}
			links, err := page.Ready(cmd.Context())
			if err != nil {
				log.Printf("render: continuing with %d link(s)", len(links))
			}

			var w io.Writer = cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create %s: %w", out, err)
				}
				defer func() { _ = f.Close() }()
				w = f
			}

			if fragment {
				err = page.List().Render(w)
			} else {
				err = page.Document().Render(w)
			}
			if err != nil {
				return fmt.Errorf("write page: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to file instead of stdout")
	cmd.Flags().BoolVar(&fragment, "fragment", false, "write only the list element")
	return cmd
}
