package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/headless/internal/errors"
	"github.com/vango-dev/headless/internal/gallery"
	"github.com/vango-dev/headless/pkg/render"
	"github.com/vango-dev/headless/pkg/vtest"
)

func renderCmd(a *app) *cobra.Command {
	var (
		pretty bool
		page   bool
	)

	cmd := &cobra.Command{
		Use:   "render <story>",
		Short: "Print a story's initial HTML",
		Long: `Mount a story and print its initial tree as HTML.

Examples:
  headless render picker--single-selection-button
  headless render visibility--standard --pretty
  headless render visibility--standard --page > standard.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.story(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			r := render.NewRenderer(render.RendererConfig{Pretty: pretty})

			if page {
				if err := gallery.WriteStory(w, r, st, false); err != nil {
					return errors.New("E302").WithDetail(st.ID).Wrap(err)
				}
				return nil
			}

			comp, _ := st.Mount(a.logger(cmd.ErrOrStderr()))
			screen := vtest.Mount(comp)
			defer screen.Unmount()

			html, err := r.RenderToString(screen.Tree())
			if err != nil {
				return errors.New("E302").WithDetail(st.ID).Wrap(err)
			}
			fmt.Fprintln(w, html)
			return nil
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the HTML")
	cmd.Flags().BoolVar(&page, "page", false, "Print a complete static page")

	return cmd
}
